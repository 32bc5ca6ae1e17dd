// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/H0llyW00dzZ/x509-der-inspector/src/internal/report"
)

// ConfigFileEnv names the environment variable consulted when no --config flag is given.
const ConfigFileEnv = "X509_DER_CONFIG_FILE"

// Configuration defaults.
const (
	DefaultFormat     = report.FormatTable
	DefaultTimeLayout = time.RFC3339
	DefaultMaxBytes   = 1 << 20
)

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// Config represents the inspector configuration file.
//
// Supported file extensions: .json, .yaml, .yml. Missing or invalid values fall
// back to the defaults above.
type Config struct {
	Output struct {
		// Format: table, json, yaml, or cbor
		Format string `json:"format" yaml:"format"`
		// TimeLayout: Go reference-time layout for validity dates
		TimeLayout string `json:"timeLayout" yaml:"timeLayout"`
	} `json:"output" yaml:"output"`

	Input struct {
		// MaxBytes: largest input file accepted, in bytes
		MaxBytes int64 `json:"maxBytes" yaml:"maxBytes"`
	} `json:"input" yaml:"input"`
}

// detectConfigFormat determines the configuration file format based on file extension.
func detectConfigFormat(configPath string) configFormat {
	ext := strings.ToLower(filepath.Ext(configPath))
	switch ext {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// unmarshalConfig unmarshals configuration data based on the specified format.
func unmarshalConfig(data []byte, config *Config, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// LoadConfig loads the configuration from a JSON or YAML file or applies defaults.
//
// Configuration Priority:
//  1. Default values are set
//  2. The X509_DER_CONFIG_FILE environment variable is checked if configPath is empty
//  3. Config file values override defaults (if a path is known)
//
// Command line flags are applied on top by the caller.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	config.Output.Format = string(DefaultFormat)
	config.Output.TimeLayout = DefaultTimeLayout
	config.Input.MaxBytes = DefaultMaxBytes

	if configPath == "" {
		configPath = os.Getenv(ConfigFileEnv)
	}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := unmarshalConfig(data, config, detectConfigFormat(configPath)); err != nil {
			return nil, err
		}

		// Reset invalid values to defaults
		if _, err := report.ParseFormat(config.Output.Format); err != nil {
			config.Output.Format = string(DefaultFormat)
		}
		if strings.TrimSpace(config.Output.TimeLayout) == "" {
			config.Output.TimeLayout = DefaultTimeLayout
		}
		if config.Input.MaxBytes <= 0 {
			config.Input.MaxBytes = DefaultMaxBytes
		}
	}

	return config, nil
}
