// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/H0llyW00dzZ/x509-der-inspector/src/internal/der"
	"github.com/H0llyW00dzZ/x509-der-inspector/src/internal/helper/gc"
	x509certs "github.com/H0llyW00dzZ/x509-der-inspector/src/internal/x509/certs"
)

// Format selects the report encoding.
type Format string

// Supported report formats.
const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatCBOR  Format = "cbor"
)

// ErrUnknownFormat is returned for a format other than table, json, yaml, or cbor.
var ErrUnknownFormat = errors.New("report: unknown output format")

// absent is printed in table cells for fields the certificate does not carry.
const absent = "-"

// ParseFormat maps a case-insensitive format name to a [Format].
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatJSON, FormatYAML, FormatCBOR:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Render writes summaries to w in the given format. Times are formatted with
// timeLayout, or RFC 3339 when it is empty.
func Render(w io.Writer, format Format, summaries []*x509certs.Summary, timeLayout string) error {
	if timeLayout == "" {
		timeLayout = time.RFC3339
	}

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	var err error
	switch format {
	case FormatTable:
		err = renderTable(buf, summaries, timeLayout)
	case FormatJSON:
		enc := json.NewEncoder(buf)
		enc.SetIndent("", "  ")
		err = enc.Encode(newDocument(summaries, timeLayout))
	case FormatYAML:
		enc := yaml.NewEncoder(buf)
		enc.SetIndent(2)
		if err = enc.Encode(newDocument(summaries, timeLayout)); err == nil {
			err = enc.Close()
		}
	case FormatCBOR:
		// Field names follow the json tags.
		err = cbor.NewEncoder(buf).Encode(newDocument(summaries, timeLayout))
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return fmt.Errorf("report: render %s: %w", format, err)
	}

	_, err = buf.WriteTo(w)
	return err
}

// renderTable writes one markdown field/value table per certificate.
func renderTable(w io.Writer, summaries []*x509certs.Summary, timeLayout string) error {
	if len(summaries) == 0 {
		_, err := io.WriteString(w, "No certificates to display\n")
		return err
	}

	title := cases.Title(language.English)

	for i, s := range summaries {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "### Certificate %d\n\n", i+1); err != nil {
			return err
		}

		table := tablewriter.NewTable(w,
			tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
		)
		table.Header([]string{"Field", "Value"})

		var rows [][]string
		for _, f := range fields(s, timeLayout) {
			rows = append(rows, []string{title.String(f.label), f.value})
		}

		if err := table.Bulk(rows); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
	}
	return nil
}

type field struct{ label, value string }

func fields(s *x509certs.Summary, timeLayout string) []field {
	return []field{
		{"version", "v" + strconv.Itoa(int(s.Version)+1)},
		{"serial", s.Serial},
		{"signature algorithm", s.SignatureAlgorithm},
		{"issuer", nameCell(s.Issuer)},
		{"subject", nameCell(s.Subject)},
		{"not before", s.NotBefore.Format(timeLayout)},
		{"not after", s.NotAfter.Format(timeLayout)},
		{"public key algorithm", s.PublicKeyAlgorithm},
		{"public key bytes", strconv.Itoa(s.PublicKeyBytes)},
		{"subject alt names", listCell(s.SubjectAltNames)},
		{"basic constraints", basicConstraintsCell(s.BasicConstraints)},
		{"extensions", extensionsCell(s.Extensions)},
		{"signature bytes", strconv.Itoa(s.SignatureBytes)},
	}
}

func nameCell(n der.Name) string {
	if n.IsEmpty() {
		return absent
	}
	return n.String()
}

func listCell(v []string) string {
	if len(v) == 0 {
		return absent
	}
	return strings.Join(v, ", ")
}

func basicConstraintsCell(bc *x509certs.BasicConstraints) string {
	if bc == nil {
		return absent
	}
	cell := "CA:" + strings.ToUpper(strconv.FormatBool(bc.IsCA))
	if bc.PathLen != nil {
		cell += ", pathlen:" + strconv.Itoa(int(*bc.PathLen))
	}
	return cell
}

func extensionsCell(exts []x509certs.Extension) string {
	if len(exts) == 0 {
		return absent
	}
	parts := make([]string, 0, len(exts))
	for _, e := range exts {
		if e.Critical {
			parts = append(parts, e.OID+" (critical)")
		} else {
			parts = append(parts, e.OID)
		}
	}
	return strings.Join(parts, ", ")
}

// document is the JSON and YAML shape of a report.
type document struct {
	Certificates []certificate `json:"certificates" yaml:"certificates"`
}

// certificate mirrors [x509certs.Summary] with times preformatted.
type certificate struct {
	Index              int                         `json:"index" yaml:"index"`
	Version            uint8                       `json:"version" yaml:"version"`
	Serial             string                      `json:"serial" yaml:"serial"`
	SignatureAlgorithm string                      `json:"signatureAlgorithm" yaml:"signatureAlgorithm"`
	Issuer             der.Name                    `json:"issuer" yaml:"issuer"`
	Subject            der.Name                    `json:"subject" yaml:"subject"`
	NotBefore          string                      `json:"notBefore" yaml:"notBefore"`
	NotAfter           string                      `json:"notAfter" yaml:"notAfter"`
	PublicKeyAlgorithm string                      `json:"publicKeyAlgorithm" yaml:"publicKeyAlgorithm"`
	PublicKeyBytes     int                         `json:"publicKeyBytes" yaml:"publicKeyBytes"`
	Extensions         []x509certs.Extension       `json:"extensions,omitempty" yaml:"extensions,omitempty"`
	SubjectAltNames    []string                    `json:"subjectAltNames,omitempty" yaml:"subjectAltNames,omitempty"`
	BasicConstraints   *x509certs.BasicConstraints `json:"basicConstraints,omitempty" yaml:"basicConstraints,omitempty"`
	SignatureBytes     int                         `json:"signatureBytes" yaml:"signatureBytes"`
}

func newDocument(summaries []*x509certs.Summary, timeLayout string) document {
	doc := document{Certificates: make([]certificate, 0, len(summaries))}
	for i, s := range summaries {
		doc.Certificates = append(doc.Certificates, certificate{
			Index:              i + 1,
			Version:            s.Version,
			Serial:             s.Serial,
			SignatureAlgorithm: s.SignatureAlgorithm,
			Issuer:             s.Issuer,
			Subject:            s.Subject,
			NotBefore:          s.NotBefore.Format(timeLayout),
			NotAfter:           s.NotAfter.Format(timeLayout),
			PublicKeyAlgorithm: s.PublicKeyAlgorithm,
			PublicKeyBytes:     s.PublicKeyBytes,
			Extensions:         s.Extensions,
			SubjectAltNames:    s.SubjectAltNames,
			BasicConstraints:   s.BasicConstraints,
			SignatureBytes:     s.SignatureBytes,
		})
	}
	return doc
}
