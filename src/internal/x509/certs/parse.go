// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/H0llyW00dzZ/x509-der-inspector/src/internal/der"
)

// Extension OIDs whose values are decoded by [Parse].
const (
	OIDSubjectAltName   = "2.5.29.17"
	OIDBasicConstraints = "2.5.29.19"
)

// ErrMalformedCertificate wraps the DER error kind of a certificate that failed to decode.
var ErrMalformedCertificate = errors.New("x509certs: malformed certificate")

// Summary holds the fields decoded from one certificate.
type Summary struct {
	Version            uint8             `json:"version" yaml:"version"` // 0 for v1, 2 for v3
	Serial             string            `json:"serial" yaml:"serial"`   // hex, without sign padding
	SignatureAlgorithm string            `json:"signatureAlgorithm" yaml:"signatureAlgorithm"`
	Issuer             der.Name          `json:"issuer" yaml:"issuer"`
	NotBefore          time.Time         `json:"notBefore" yaml:"notBefore"`
	NotAfter           time.Time         `json:"notAfter" yaml:"notAfter"`
	Subject            der.Name          `json:"subject" yaml:"subject"`
	PublicKeyAlgorithm string            `json:"publicKeyAlgorithm" yaml:"publicKeyAlgorithm"`
	PublicKeyBytes     int               `json:"publicKeyBytes" yaml:"publicKeyBytes"`
	Extensions         []Extension       `json:"extensions,omitempty" yaml:"extensions,omitempty"`
	SubjectAltNames    []string          `json:"subjectAltNames,omitempty" yaml:"subjectAltNames,omitempty"`
	BasicConstraints   *BasicConstraints `json:"basicConstraints,omitempty" yaml:"basicConstraints,omitempty"`
	SignatureBytes     int               `json:"signatureBytes" yaml:"signatureBytes"`
}

// Extension identifies one certificate extension.
type Extension struct {
	OID      string `json:"oid" yaml:"oid"`
	Critical bool   `json:"critical" yaml:"critical"`
}

// BasicConstraints is the decoded basicConstraints extension.
type BasicConstraints struct {
	IsCA    bool   `json:"isCA" yaml:"isCA"`
	PathLen *uint8 `json:"pathLen,omitempty" yaml:"pathLen,omitempty"`
}

// Parse decodes a DER certificate. Any deviation from the Certificate grammar
// returns an error wrapping both [ErrMalformedCertificate] and the [der.ErrorKind]
// that caused it.
func Parse(raw []byte) (*Summary, error) {
	s, err := der.ReadAll(der.Input(raw), der.ErrBadDER, func(r der.Reader) (*Summary, error) {
		return der.Nested(r, der.Sequence, der.ErrBadDER, parseCertificate)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedCertificate, err)
	}
	return s, nil
}

// parseCertificate decodes
//
//	Certificate ::= SEQUENCE {
//	     tbsCertificate       TBSCertificate,
//	     signatureAlgorithm   AlgorithmIdentifier,
//	     signatureValue       BIT STRING }
func parseCertificate(r der.Reader) (*Summary, error) {
	s, err := der.Nested(r, der.Sequence, der.ErrBadDER, parseTBSCertificate)
	if err != nil {
		return nil, err
	}
	if _, err := der.Nested(r, der.Sequence, der.ErrBadDER, parseAlgorithmIdentifier); err != nil {
		return nil, err
	}
	sig, err := der.BitStringWithNoUnusedBits(r)
	if err != nil {
		return nil, err
	}
	s.SignatureBytes = sig.Len()
	return s, nil
}

func parseTBSCertificate(r der.Reader) (*Summary, error) {
	s := &Summary{}

	if r.Peek(der.ContextSpecificConstructed0) {
		version, err := der.Nested(r, der.ContextSpecificConstructed0, der.ErrBadDER, der.SmallNonNegativeInteger)
		if err != nil {
			return nil, err
		}
		if version > 2 {
			return nil, der.ErrBadDER
		}
		s.Version = version
	}

	serial, err := der.PositiveInteger(r)
	if err != nil {
		return nil, err
	}
	s.Serial = hex.EncodeToString(serial)

	if s.SignatureAlgorithm, err = der.Nested(r, der.Sequence, der.ErrBadDER, parseAlgorithmIdentifier); err != nil {
		return nil, err
	}
	if s.Issuer, err = der.Nested(r, der.Sequence, der.ErrBadDER, parseName); err != nil {
		return nil, err
	}

	validity, err := der.Nested(r, der.Sequence, der.ErrBadDER, parseValidity)
	if err != nil {
		return nil, err
	}
	s.NotBefore, s.NotAfter = validity[0], validity[1]

	if s.Subject, err = der.Nested(r, der.Sequence, der.ErrBadDER, parseName); err != nil {
		return nil, err
	}

	spki, err := der.Nested(r, der.Sequence, der.ErrBadDER, parseSubjectPublicKeyInfo)
	if err != nil {
		return nil, err
	}
	s.PublicKeyAlgorithm, s.PublicKeyBytes = spki.algorithm, spki.keyBytes

	// issuerUniqueID [1] and subjectUniqueID [2], primitive or constructed.
	for _, tag := range []der.Tag{0x81, der.ContextSpecificConstructed1, 0x82, der.ContextSpecificConstructed2} {
		if r.Peek(tag) {
			if _, err := der.ExpectTagAndGetValue(r, tag); err != nil {
				return nil, err
			}
		}
	}

	if r.Peek(der.ContextSpecificConstructed3) {
		if _, err := der.Nested(r, der.ContextSpecificConstructed3, der.ErrBadDER, func(r der.Reader) (struct{}, error) {
			return struct{}{}, der.NestedOf(r, der.Sequence, der.Sequence, der.ErrBadDER, func(ext der.Reader) error {
				return parseExtension(ext, s)
			})
		}); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// parseAlgorithmIdentifier returns the algorithm OID and skips any parameters.
func parseAlgorithmIdentifier(r der.Reader) (string, error) {
	algorithm, err := der.ParseOID(r)
	if err != nil {
		return "", err
	}
	if !r.AtEnd() {
		if _, _, err := der.ReadTagAndGetValue(r); err != nil {
			return "", err
		}
	}
	return algorithm, nil
}

func parseName(r der.Reader) (der.Name, error) { return der.ParseName(r), nil }

func parseValidity(r der.Reader) ([2]time.Time, error) {
	notBefore, err := der.TimeChoice(r)
	if err != nil {
		return [2]time.Time{}, err
	}
	notAfter, err := der.TimeChoice(r)
	if err != nil {
		return [2]time.Time{}, err
	}
	return [2]time.Time{notBefore, notAfter}, nil
}

type subjectPublicKeyInfo struct {
	algorithm string
	keyBytes  int
}

func parseSubjectPublicKeyInfo(r der.Reader) (subjectPublicKeyInfo, error) {
	algorithm, err := der.Nested(r, der.Sequence, der.ErrBadDER, parseAlgorithmIdentifier)
	if err != nil {
		return subjectPublicKeyInfo{}, err
	}
	key, err := der.BitStringWithNoUnusedBits(r)
	if err != nil {
		return subjectPublicKeyInfo{}, err
	}
	return subjectPublicKeyInfo{algorithm: algorithm, keyBytes: key.Len()}, nil
}

// parseExtension decodes
//
//	Extension ::= SEQUENCE {
//	     extnID      OBJECT IDENTIFIER,
//	     critical    BOOLEAN DEFAULT FALSE,
//	     extnValue   OCTET STRING }
//
// and the values of the extensions listed in this file's OID constants.
func parseExtension(r der.Reader, s *Summary) error {
	id, err := der.ParseOID(r)
	if err != nil {
		return err
	}
	critical, err := der.OptionalBoolean(r)
	if err != nil {
		return err
	}
	value, err := der.ExpectTagAndGetValue(r, der.OctetString)
	if err != nil {
		return err
	}

	s.Extensions = append(s.Extensions, Extension{OID: id, Critical: critical})

	switch id {
	case OIDSubjectAltName:
		s.SubjectAltNames, err = der.ReadAll(value, der.ErrBadDER, func(r der.Reader) ([]string, error) {
			return der.Nested(r, der.Sequence, der.ErrBadDER, der.ParseAltNames)
		})
	case OIDBasicConstraints:
		s.BasicConstraints, err = der.ReadAll(value, der.ErrBadDER, func(r der.Reader) (*BasicConstraints, error) {
			return der.Nested(r, der.Sequence, der.ErrBadDER, parseBasicConstraints)
		})
	}
	return err
}

// parseBasicConstraints decodes
//
//	BasicConstraints ::= SEQUENCE {
//	     cA                      BOOLEAN DEFAULT FALSE,
//	     pathLenConstraint       INTEGER (0..MAX) OPTIONAL }
func parseBasicConstraints(r der.Reader) (*BasicConstraints, error) {
	isCA, err := der.OptionalBoolean(r)
	if err != nil {
		return nil, err
	}
	bc := &BasicConstraints{IsCA: isCA}
	if !r.AtEnd() {
		pathLen, err := der.SmallNonNegativeInteger(r)
		if err != nil {
			return nil, err
		}
		bc.PathLen = &pathLen
	}
	return bc, nil
}
