// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for the X.509 DER inspector.
// It implements a Cobra-based CLI that reads PEM, DER, or PKCS7 inputs, decodes
// every certificate with the strict DER reader, and renders a table, JSON,
// YAML, or CBOR report. Settings come from an optional JSON or YAML config file, with
// flags taking precedence.
package cli
