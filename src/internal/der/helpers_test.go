// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package der_test

import (
	"encoding/asn1"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"

	"github.com/H0llyW00dzZ/x509-der-inspector/src/internal/der"
)

// tlv encodes one DER value with the given tag around the concatenated contents.
func tlv(tag der.Tag, contents ...[]byte) []byte {
	var b cryptobyte.Builder
	b.AddASN1(cbasn1.Tag(tag), func(b *cryptobyte.Builder) {
		for _, c := range contents {
			b.AddBytes(c)
		}
	})
	return b.BytesOrPanic()
}

// oid encodes a complete OBJECT IDENTIFIER value.
func oid(arcs ...int) []byte {
	encoded, err := asn1.Marshal(asn1.ObjectIdentifier(arcs))
	if err != nil {
		panic(err)
	}
	return encoded
}

// rdn encodes a single-valued RDN SET { SEQUENCE { type, PrintableString value } }.
func rdn(attrType []byte, value string) []byte {
	return tlv(der.Set, tlv(der.Sequence, attrType, tlv(der.PrintableString, []byte(value))))
}

func join(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func newReader(b []byte) der.Reader { return der.NewReader(der.Input(b)) }

func ptr(s string) *string { return &s }
