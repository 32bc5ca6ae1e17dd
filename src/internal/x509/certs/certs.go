// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"encoding/pem"
	"errors"
	"fmt"

	"github.com/cloudflare/cfssl/crypto/pkcs7"

	"github.com/H0llyW00dzZ/x509-der-inspector/src/internal/der"
)

var (
	// ErrInvalidBlockType indicates that a PEM block is not of the expected certificate type.
	ErrInvalidBlockType = errors.New("x509certs: invalid block type")

	// ErrNoCertificates indicates that the input did not contain any certificate.
	ErrNoCertificates = errors.New("x509certs: no certificates found")

	// ErrParsePKCS7 indicates that the input was neither a certificate nor a PKCS7 bundle.
	ErrParsePKCS7 = errors.New("x509certs: failed to parse PKCS7 data")
)

// Certificate loads raw DER certificates from PEM, DER, or [PKCS7] input so that they
// can be walked by [Parse].
//
// [PKCS7]: https://grokipedia.com/page/PKCS_7
type Certificate struct {
	certBlockType string
}

// New creates a new Certificate with default settings.
func New() *Certificate {
	return &Certificate{
		certBlockType: "CERTIFICATE",
	}
}

// IsPEM checks if the data is in PEM format.
func (c *Certificate) IsPEM(data []byte) bool {
	block, _ := pem.Decode(data)
	return block != nil
}

// DecodeMultiple returns the DER encoding of every certificate in data.
//
// PEM input may hold any number of CERTIFICATE blocks. Binary input is either a PKCS7
// bundle or one or more concatenated DER certificates. Only the outer framing is
// checked here; [Parse] validates each certificate.
//
// PKCS7 bundles are unpacked by cfssl, which runs [crypto/x509] over the embedded
// certificates. One certificate that [crypto/x509] rejects therefore fails the whole
// bundle with [ErrParsePKCS7], not with a per-certificate [der] error.
func (c *Certificate) DecodeMultiple(data []byte) ([][]byte, error) {
	if c.IsPEM(data) {
		var certs [][]byte

		for len(data) > 0 {
			block, rest := pem.Decode(data)
			if block == nil {
				break
			}
			if block.Type != c.certBlockType {
				return nil, ErrInvalidBlockType
			}

			certs = append(certs, block.Bytes)
			data = rest
		}

		if len(certs) == 0 {
			return nil, ErrNoCertificates
		}
		return certs, nil
	}

	if !isPKCS7(data) {
		return splitDER(data)
	}

	// Attempt to parse as PKCS7 using Cloudflare's library
	p, err := pkcs7.ParsePKCS7(data)
	if err != nil {
		return nil, ErrParsePKCS7
	}
	if p.ContentInfo != "SignedData" || len(p.Content.SignedData.Certificates) == 0 {
		return nil, ErrNoCertificates
	}

	certs := make([][]byte, 0, len(p.Content.SignedData.Certificates))
	for _, cert := range p.Content.SignedData.Certificates {
		certs = append(certs, cert.Raw)
	}
	return certs, nil
}

// Decode returns the DER encoding of the first certificate in data.
func (c *Certificate) Decode(data []byte) ([]byte, error) {
	certs, err := c.DecodeMultiple(data)
	if err != nil {
		return nil, err
	}
	return certs[0], nil
}

// EncodePEM wraps a DER certificate in a PEM block.
func (c *Certificate) EncodePEM(raw []byte) []byte {
	block := pem.Block{
		Type:  c.certBlockType,
		Bytes: raw,
	}
	return pem.EncodeToMemory(&block)
}

// isPKCS7 reports whether data starts with a ContentInfo, whose first element is the
// content type OID. A Certificate starts with its TBSCertificate SEQUENCE instead.
func isPKCS7(data []byte) bool {
	value, err := der.ExpectTagAndGetValue(der.NewReader(der.Input(data)), der.Sequence)
	if err != nil {
		return false
	}
	return der.NewReader(value).Peek(der.OID)
}

// splitDER cuts concatenated DER certificates into one slice per top-level SEQUENCE.
func splitDER(data []byte) ([][]byte, error) {
	var certs [][]byte

	rest := der.Input(data)
	for rest.Len() > 0 {
		r := der.NewReader(rest)
		if _, err := der.ExpectTagAndGetValue(r, der.Sequence); err != nil {
			return nil, fmt.Errorf("x509certs: certificate %d: %w", len(certs)+1, err)
		}
		remaining := r.SkipToEnd()
		certs = append(certs, []byte(rest[:rest.Len()-remaining.Len()]))
		rest = remaining
	}

	if len(certs) == 0 {
		return nil, ErrNoCertificates
	}
	return certs, nil
}
