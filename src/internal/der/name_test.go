// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package der_test

import (
	"crypto/x509/pkix"
	"encoding/asn1"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"

	"github.com/H0llyW00dzZ/x509-der-inspector/src/internal/der"
)

var (
	oidCN     = oid(2, 5, 4, 3)
	oidC      = oid(2, 5, 4, 6)
	oidL      = oid(2, 5, 4, 7)
	oidST     = oid(2, 5, 4, 8)
	oidO      = oid(2, 5, 4, 10)
	oidOU     = oid(2, 5, 4, 11)
	oidEmail  = oid(1, 2, 840, 113549, 1, 9, 1)
	oidSerial = oid(2, 5, 4, 5)
)

func TestParseDirectoryString(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		want    string
		wantErr bool
	}{
		{name: "PrintableString", input: tlv(der.PrintableString, []byte("Google Trust Services")), want: "Google Trust Services"},
		{name: "UTF8String", input: tlv(der.UTF8String, []byte("Zürich")), want: "Zürich"},
		{name: "Any tag accepted", input: tlv(der.OctetString, []byte("plain")), want: "plain"},
		{name: "Empty string", input: tlv(der.IA5String, nil), want: ""},
		{name: "Invalid UTF-8", input: tlv(der.UTF8String, []byte{0xC0, 0xAF}), wantErr: true},
		{name: "Truncated", input: []byte{0x13, 0x05, 'a'}, wantErr: true},
		{name: "Empty input", input: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := der.ParseDirectoryString(newReader(tt.input))
			if tt.wantErr {
				assert.ErrorIs(t, err, der.ErrBadDER)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseName(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  der.Name
	}{
		{
			name:  "Common name only",
			input: rdn(oidCN, "example.com"),
			want:  der.Name{CommonName: ptr("example.com")},
		},
		{
			name: "All canonical attributes",
			input: join(
				rdn(oidC, "US"),
				rdn(oidST, "California"),
				rdn(oidL, "Mountain View"),
				rdn(oidO, "Example Inc"),
				rdn(oidOU, "Security"),
				rdn(oidCN, "example.com"),
			),
			want: der.Name{
				Country:            ptr("US"),
				StateOrProvince:    ptr("California"),
				Locality:           ptr("Mountain View"),
				Organization:       ptr("Example Inc"),
				OrganizationalUnit: ptr("Security"),
				CommonName:         ptr("example.com"),
			},
		},
		{
			name:  "Unrecognized attribute sets extra",
			input: join(rdn(oidCN, "example.com"), rdn(oidEmail, "admin@example.com")),
			want:  der.Name{CommonName: ptr("example.com"), Extra: ptr("1.2.840.113549.1.9.1")},
		},
		{
			name:  "Last unrecognized attribute wins",
			input: join(rdn(oidEmail, "admin@example.com"), rdn(oidSerial, "42")),
			want:  der.Name{Extra: ptr("2.5.4.5")},
		},
		{
			name:  "Repeated attribute keeps last value",
			input: join(rdn(oidOU, "first"), rdn(oidOU, "second")),
			want:  der.Name{OrganizationalUnit: ptr("second")},
		},
		{
			name: "Multi-valued RDN",
			input: tlv(der.Set,
				tlv(der.Sequence, oidCN, tlv(der.PrintableString, []byte("host"))),
				tlv(der.Sequence, oidO, tlv(der.PrintableString, []byte("Org"))),
			),
			want: der.Name{CommonName: ptr("host"), Organization: ptr("Org")},
		},
		{
			name:  "Empty input",
			input: nil,
			want:  der.Name{},
		},
		{
			name:  "Stops at RDN with extra element",
			input: join(rdn(oidC, "US"), tlv(der.Set, tlv(der.Sequence, oidCN, tlv(der.PrintableString, []byte("x")), []byte{0x05, 0x00}))),
			want:  der.Name{Country: ptr("US")},
		},
		{
			name:  "Stops at RDN missing value",
			input: join(tlv(der.Set, tlv(der.Sequence, oidCN)), rdn(oidC, "US")),
			want:  der.Name{},
		},
		{
			name:  "Stops at invalid UTF-8 value",
			input: join(rdn(oidC, "US"), tlv(der.Set, tlv(der.Sequence, oidCN, tlv(der.UTF8String, []byte{0xFF}))), rdn(oidO, "Org")),
			want:  der.Name{Country: ptr("US")},
		},
		{
			name: "Multi-valued RDN last value wins",
			input: tlv(der.Set,
				tlv(der.Sequence, oidCN, tlv(der.PrintableString, []byte("a"))),
				tlv(der.Sequence, oidCN, tlv(der.PrintableString, []byte("b"))),
			),
			want: der.Name{CommonName: ptr("b")},
		},
		{
			name:  "Multi-valued RDN with trailing junk dropped whole",
			input: tlv(der.Set, tlv(der.Sequence, oidCN, tlv(der.PrintableString, []byte("a"))), []byte{0x05, 0x00}),
			want:  der.Name{},
		},
		{
			name:  "Multi-valued RDN applied atomically",
			input: tlv(der.Set, tlv(der.Sequence, oidCN, tlv(der.PrintableString, []byte("host"))), tlv(der.Sequence, oidO)),
			want:  der.Name{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, der.ParseName(newReader(tt.input)))
		})
	}
}

func TestParseNameStopsAtNonSet(t *testing.T) {
	r := newReader(join(rdn(oidCN, "example.com"), []byte{0x02, 0x01, 0x01}))

	got := der.ParseName(r)
	assert.Equal(t, der.Name{CommonName: ptr("example.com")}, got)
	assert.True(t, r.Peek(der.Integer), "non-SET value must be left unconsumed")
}

func TestParseNameUnderNested(t *testing.T) {
	parse := func(r der.Reader) (der.Name, error) { return der.ParseName(r), nil }

	t.Run("pkix encoded name", func(t *testing.T) {
		subject := pkix.Name{
			Country:            []string{"US"},
			Organization:       []string{"Google Trust Services"},
			OrganizationalUnit: []string{"Certificates"},
			Locality:           []string{"Mountain View"},
			Province:           []string{"California"},
			CommonName:         "WR2",
		}
		encoded, err := asn1.Marshal(subject.ToRDNSequence())
		require.NoError(t, err)

		got, err := der.Nested(newReader(encoded), der.Sequence, der.ErrBadDER, parse)
		require.NoError(t, err)
		assert.Equal(t, der.Name{
			Country:            ptr("US"),
			Organization:       ptr("Google Trust Services"),
			OrganizationalUnit: ptr("Certificates"),
			Locality:           ptr("Mountain View"),
			StateOrProvince:    ptr("California"),
			CommonName:         ptr("WR2"),
		}, got)
		assert.Equal(t, "C=US, ST=California, L=Mountain View, O=Google Trust Services, OU=Certificates, CN=WR2", got.String())
	})

	t.Run("Early stop leaves bytes for read-all check", func(t *testing.T) {
		encoded := tlv(der.Sequence, rdn(oidCN, "example.com"), []byte{0x02, 0x01, 0x01})
		_, err := der.Nested(newReader(encoded), der.Sequence, der.ErrBadDER, parse)
		assert.ErrorIs(t, err, der.ErrBadDER)
	})

	t.Run("Truncated trailing SET fails read-all", func(t *testing.T) {
		encoded := tlv(der.Sequence, rdn(oidCN, "example.com"), []byte{0x31, 0x7F})
		_, err := der.Nested(newReader(encoded), der.Sequence, der.ErrBadDER, parse)
		assert.ErrorIs(t, err, der.ErrBadDER)
	})

	t.Run("Empty RDNSequence", func(t *testing.T) {
		got, err := der.Nested(newReader([]byte{0x30, 0x00}), der.Sequence, der.ErrBadDER, parse)
		require.NoError(t, err)
		assert.True(t, got.IsEmpty())
		assert.Empty(t, got.String())
	})
}

// Nesting of the input does not drive recursion: ParseName looks at most three
// levels deep however deeply the SETs are nested.
func TestParseNameDeeplyNestedInput(t *testing.T) {
	var build func(b *cryptobyte.Builder, depth int)
	build = func(b *cryptobyte.Builder, depth int) {
		if depth == 0 {
			b.AddBytes(rdn(oidCN, "leaf"))
			return
		}
		b.AddASN1(cbasn1.SET, func(b *cryptobyte.Builder) { build(b, depth-1) })
	}

	var b cryptobyte.Builder
	build(&b, 2000)
	input := b.BytesOrPanic()

	r := newReader(input)
	got := der.ParseName(r)
	assert.True(t, got.IsEmpty())
}

func TestParseAltNames(t *testing.T) {
	parse := func(input []byte) ([]string, error) {
		return der.Nested(newReader(input), der.Sequence, der.ErrBadDER, der.ParseAltNames)
	}

	t.Run("Empty sequence", func(t *testing.T) {
		got, err := parse([]byte{0x30, 0x00})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("Encounter order without dedup", func(t *testing.T) {
		input := tlv(der.Sequence,
			tlv(der.Tag(0x82), []byte("www.example.com")),
			tlv(der.Tag(0x86), []byte("https://example.com/")),
			tlv(der.Tag(0x81), []byte("admin@example.com")),
			tlv(der.Tag(0x82), []byte("www.example.com")),
		)
		got, err := parse(input)
		require.NoError(t, err)
		assert.Equal(t, []string{"www.example.com", "https://example.com/", "admin@example.com", "www.example.com"}, got)
	})

	t.Run("Last element not UTF-8", func(t *testing.T) {
		input := tlv(der.Sequence,
			tlv(der.Tag(0x82), []byte("www.example.com")),
			tlv(der.Tag(0x87), []byte{0xC0, 0xA8, 0x01, 0xFF}),
		)
		got, err := parse(input)
		assert.ErrorIs(t, err, der.ErrBadDER)
		assert.Nil(t, got)
	})

	t.Run("Unframeable tail ends the loop", func(t *testing.T) {
		r := newReader(join(tlv(der.Tag(0x82), []byte("a.example")), []byte{0x82, 0x05}))
		got, err := der.ParseAltNames(r)
		require.NoError(t, err)
		assert.Equal(t, []string{"a.example"}, got)
		assert.Equal(t, der.Input{0x82, 0x05}, r.SkipToEnd())
	})

	t.Run("Unframeable tail fails read-all", func(t *testing.T) {
		_, err := parse(tlv(der.Sequence, tlv(der.Tag(0x82), []byte("a.example")), []byte{0x82, 0x05}))
		assert.ErrorIs(t, err, der.ErrBadDER)
	})
}
