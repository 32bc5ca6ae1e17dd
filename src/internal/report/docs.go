// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package report renders decoded certificate summaries as a markdown table or as
// a JSON, YAML, or CBOR document.
package report
