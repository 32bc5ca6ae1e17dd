// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package der_test

import (
	"testing"

	"github.com/H0llyW00dzZ/x509-der-inspector/src/internal/der"
)

// FuzzDecoders checks that no decoder panics on arbitrary input and that each
// returns (terminates) on it.
func FuzzDecoders(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x01, 0x01, 0xFF})
	f.Add([]byte{0x02, 0x02, 0x00, 0x80})
	f.Add([]byte{0x03, 0x03, 0x00, 0xAB, 0xCD})
	f.Add([]byte{0x06, 0x09, 0x2A, 0x86, 0x48, 0x86, 0xF7, 0x0D, 0x01, 0x01, 0x0B})
	f.Add([]byte("\x17\x0d991231235959Z"))
	f.Add([]byte("\x18\x0f20000229000000Z"))
	f.Add(rdn(oidCN, "example.com"))
	f.Add(tlv(der.Sequence, tlv(der.Tag(0x82), []byte("www.example.com"))))
	f.Add([]byte{0x30, 0x82, 0xFF, 0xFF})
	f.Add([]byte{0x30, 0x80, 0x00, 0x00})

	f.Fuzz(func(t *testing.T, data []byte) {
		in := der.Input(data)

		_, _, _ = der.ReadTagAndGetValue(der.NewReader(in))
		_, _ = der.OptionalBoolean(der.NewReader(in))
		_, _ = der.PositiveInteger(der.NewReader(in))
		_, _ = der.SmallNonNegativeInteger(der.NewReader(in))
		_, _ = der.BitStringWithNoUnusedBits(der.NewReader(in))
		_, _ = der.TimeChoice(der.NewReader(in))
		_, _ = der.ParseOID(der.NewReader(in))
		_, _ = der.ParseDirectoryString(der.NewReader(in))
		_ = der.ParseName(der.NewReader(in))
		_, _ = der.ParseAltNames(der.NewReader(in))
		_ = der.NestedOf(der.NewReader(in), der.Sequence, der.Set, der.ErrBadDER, func(r der.Reader) error {
			der.ParseName(r)
			return nil
		})

		if _, err := der.TimeChoice(der.NewReader(in)); err != nil && err != der.ErrBadDERTime {
			t.Fatalf("TimeChoice returned %v, want %v", err, der.ErrBadDERTime)
		}
		if _, err := der.ParseOID(der.NewReader(in)); err != nil && err != der.ErrBadDER {
			t.Fatalf("ParseOID returned %v, want %v", err, der.ErrBadDER)
		}
	})
}
