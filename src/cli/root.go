// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/x509-der-inspector/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/x509-der-inspector/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/x509-der-inspector/src/internal/report"
	x509certs "github.com/H0llyW00dzZ/x509-der-inspector/src/internal/x509/certs"
	"github.com/H0llyW00dzZ/x509-der-inspector/src/logger"
)

// stdinName is the INPUT_FILE argument that reads from standard input.
const stdinName = "-"

var (
	// ErrInputFileRequired is returned when no INPUT_FILE argument is given.
	ErrInputFileRequired = errors.New("cli: at least one input file is required")

	// ErrInvalidCertificates is returned after the report is written when some
	// certificates failed to decode.
	ErrInvalidCertificates = errors.New("cli: one or more certificates failed to decode")
)

var (
	// OperationPerformed reports whether an inspection ran to the point of writing a report.
	OperationPerformed bool

	// OperationPerformedSuccessfully reports whether every input certificate decoded.
	OperationPerformedSuccessfully bool
)

// options holds the values of the command line flags.
type options struct {
	format     string
	outputFile string
	configFile string
	logJSON    bool
}

// Execute runs the root command with the process arguments.
//
// The context is checked between input files, so a cancelled run stops before
// reading the next one.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	OperationPerformed = false
	OperationPerformedSuccessfully = false

	return newRootCmd(version, log).ExecuteContext(ctx)
}

func newRootCmd(version string, log logger.Logger) *cobra.Command {
	opts := &options{}

	exeName := posix.GetExecutableName()

	rootCmd := &cobra.Command{
		Use:   exeName + " [INPUT_FILE...]",
		Short: "Strict DER inspector for X.509 certificates",
		Long: `Decode X.509 certificates with a strict DER reader and report their names,
validity, serial number, and extensions. Inputs may be PEM files, DER files,
or PKCS7 bundles; "-" reads standard input.`,
		Example: fmt.Sprintf(`  %[1]s leaf.pem
  %[1]s -f json -o report.json bundle.p7b
  cat chain.pem | %[1]s -f yaml -`, exeName),
		Version: version,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return ErrInputFileRequired
			}
			return nil
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return execCli(cmd, args, opts, log)
		},
	}

	rootCmd.Flags().StringVarP(&opts.format, "format", "f", "", "report format: table, json, yaml, or cbor (default from config, else table)")
	rootCmd.Flags().StringVarP(&opts.outputFile, "output", "o", "", "output to OUTPUT_FILE (default: stdout)")
	rootCmd.Flags().StringVarP(&opts.configFile, "config", "c", "", "path to a JSON or YAML config file (env "+ConfigFileEnv+")")
	rootCmd.Flags().BoolVar(&opts.logJSON, "log-json", false, "write diagnostics as JSON lines")

	return rootCmd
}

// execCli reads every input, decodes its certificates, and writes one report.
// Certificates that fail to decode are logged and left out of the report.
func execCli(cmd *cobra.Command, args []string, opts *options, log logger.Logger) error {
	ctx := cmd.Context()

	config, err := LoadConfig(opts.configFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("format") {
		config.Output.Format = opts.format
	}
	format, err := report.ParseFormat(config.Output.Format)
	if err != nil {
		return err
	}

	if opts.logJSON {
		log = logger.NewJSONLogger(cmd.ErrOrStderr(), false)
	}

	decoder := x509certs.New()

	var (
		summaries []*x509certs.Summary
		total     int
		failed    int
	)
	for _, name := range args {
		if err := ctx.Err(); err != nil {
			return err
		}

		data, err := readInput(cmd, name, config.Input.MaxBytes)
		if err != nil {
			return fmt.Errorf("error reading input %s: %w", name, err)
		}

		certs, err := decoder.DecodeMultiple(data)
		if err != nil {
			// An input that yields no certificate still counts as one.
			log.Printf("%s: %v", name, err)
			total++
			failed++
			continue
		}

		for i, raw := range certs {
			total++
			s, err := x509certs.Parse(raw)
			if err != nil {
				log.Printf("%s: certificate %d: %v", name, i+1, err)
				failed++
				continue
			}
			summaries = append(summaries, s)
		}
	}

	if err := writeReport(cmd, opts.outputFile, format, summaries, config.Output.TimeLayout); err != nil {
		return err
	}
	OperationPerformed = true

	log.Printf("Decoded %d of %d certificate(s).", len(summaries), total)
	if failed > 0 {
		return fmt.Errorf("%w: %d failure(s)", ErrInvalidCertificates, failed)
	}

	OperationPerformedSuccessfully = true
	return nil
}

// readInput reads one INPUT_FILE, or standard input for "-", up to maxBytes.
func readInput(cmd *cobra.Command, name string, maxBytes int64) ([]byte, error) {
	if name == stdinName {
		return gc.ReadAll(cmd.InOrStdin(), maxBytes)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return gc.ReadAll(f, maxBytes)
}

func writeReport(cmd *cobra.Command, outputFile string, format report.Format, summaries []*x509certs.Summary, timeLayout string) (err error) {
	var w io.Writer = cmd.OutOrStdout()

	if outputFile != "" {
		f, createErr := os.Create(outputFile)
		if createErr != nil {
			return fmt.Errorf("error creating output file: %w", createErr)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("error closing output file: %w", closeErr)
			}
		}()
		w = f
	}

	if err := report.Render(w, format, summaries, timeLayout); err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}
	return nil
}
