// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// x509-der-inspector decodes X.509 certificates with a strict DER reader and
// reports their names, validity window, serial number, and extensions.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/x509-der-inspector/cmd/x509-der-inspector@latest
//
// # Usage
//
//	x509-der-inspector [FLAGS] INPUT_FILE...
//
// Each INPUT_FILE may hold PEM CERTIFICATE blocks, one or more concatenated DER
// certificates, or a PKCS7 bundle. Use "-" to read standard input.
//
// # Flags
//
//	-f, --format    Report format: table, json, yaml, or cbor
//	-o, --output    Write the report to a file instead of stdout
//	-c, --config    Path to a configuration file (JSON or YAML)
//	    --log-json  Write diagnostics as JSON lines on stderr
//	    --version   Show version information
//
// # Environment Variables
//
//	X509_DER_CONFIG_FILE  Path to configuration file (alternative to --config flag)
//
// # Configuration
//
//	output:
//	  format: table          # table, json, yaml, or cbor
//	  timeLayout: "2006-01-02T15:04:05Z07:00"
//	input:
//	  maxBytes: 1048576      # largest accepted input file
//
// # Exit Status
//
// The command exits with status 1 when an input cannot be read or any certificate
// fails to decode. Certificates that did decode are still reported.
package main
