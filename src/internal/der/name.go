// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package der

import (
	"strings"
	"unicode/utf8"
)

// Attribute type OIDs recognized by [ParseName].
const (
	OIDCommonName         = "2.5.4.3"
	OIDCountry            = "2.5.4.6"
	OIDLocality           = "2.5.4.7"
	OIDStateOrProvince    = "2.5.4.8"
	OIDOrganization       = "2.5.4.10"
	OIDOrganizationalUnit = "2.5.4.11"
)

// Name is the decoded form of an X.509 distinguished name. Each canonical attribute is
// nil when absent. Extra holds the attribute type OID of the last unrecognized
// attribute; earlier unrecognized attributes are dropped.
type Name struct {
	CommonName         *string `json:"commonName,omitempty" yaml:"commonName,omitempty"`
	Country            *string `json:"country,omitempty" yaml:"country,omitempty"`
	Locality           *string `json:"locality,omitempty" yaml:"locality,omitempty"`
	StateOrProvince    *string `json:"stateOrProvince,omitempty" yaml:"stateOrProvince,omitempty"`
	Organization       *string `json:"organization,omitempty" yaml:"organization,omitempty"`
	OrganizationalUnit *string `json:"organizationalUnit,omitempty" yaml:"organizationalUnit,omitempty"`
	Extra              *string `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// attribute is one AttributeTypeAndValue of an RDN.
type attribute struct{ oid, value string }

func (n *Name) set(a attribute) {
	value := a.value
	switch a.oid {
	case OIDCommonName:
		n.CommonName = &value
	case OIDCountry:
		n.Country = &value
	case OIDLocality:
		n.Locality = &value
	case OIDStateOrProvince:
		n.StateOrProvince = &value
	case OIDOrganization:
		n.Organization = &value
	case OIDOrganizationalUnit:
		n.OrganizationalUnit = &value
	default:
		oid := a.oid
		n.Extra = &oid
	}
}

// IsEmpty reports whether no attribute was decoded.
func (n Name) IsEmpty() bool { return n == Name{} }

// String formats the canonical attributes in the familiar C, ST, L, O, OU, CN order,
// e.g. "C=US, O=Google Trust Services, CN=WR2".
func (n Name) String() string {
	var parts []string
	add := func(key string, v *string) {
		if v != nil {
			parts = append(parts, key+"="+*v)
		}
	}
	add("C", n.Country)
	add("ST", n.StateOrProvince)
	add("L", n.Locality)
	add("O", n.Organization)
	add("OU", n.OrganizationalUnit)
	add("CN", n.CommonName)
	return strings.Join(parts, ", ")
}

// ParseDirectoryString reads one value of any tag and returns its content as text.
// The content must be valid UTF-8. The specific string type (PrintableString,
// UTF8String, TeletexString and so on) is not checked.
func ParseDirectoryString(r Reader) (string, error) {
	_, value, err := ReadTagAndGetValue(r)
	if err != nil {
		return "", ErrBadDER
	}
	if !utf8.Valid(value) {
		return "", ErrBadDER
	}
	return string(value), nil
}

// ParseName decodes the RDNSequence content of a Name. It consumes RDNs while the next
// value is a SET and stops, without error, at the end of input, at a value that is not
// a SET, or at the first RDN that does not decode. Callers that require the whole
// sequence to be valid should run ParseName under [Nested], whose read-all check then
// rejects whatever was left unconsumed. A SET that cannot be framed is left
// unconsumed; a framed RDN whose content does not decode is consumed and dropped.
//
// Every AttributeTypeAndValue of a multi-valued RDN is applied. An RDN is applied
// only once all of its attributes decoded.
func ParseName(r Reader) Name {
	var name Name
	for r.Peek(Set) {
		attrs, err := parseRDN(r)
		if err != nil {
			break
		}
		for _, a := range attrs {
			name.set(a)
		}
	}
	return name
}

// parseRDN decodes one SET OF SEQUENCE { type OID, value DirectoryString }.
func parseRDN(r Reader) ([]attribute, error) {
	var attrs []attribute
	err := NestedOf(r, Set, Sequence, ErrBadDER, func(atv Reader) error {
		oid, err := ParseOID(atv)
		if err != nil {
			return err
		}
		value, err := ParseDirectoryString(atv)
		if err != nil {
			return err
		}
		attrs = append(attrs, attribute{oid: oid, value: value})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return attrs, nil
}

// ParseAltNames decodes the content of a GeneralNames sequence into UTF-8 strings in
// encounter order, without deduplication. The tag of each entry is not interpreted.
// Decoding stops at the first value that cannot be framed, which includes the end of
// input, and leaves that value unconsumed; an entry that is not valid UTF-8 fails the whole decode with [ErrBadDER].
func ParseAltNames(r Reader) ([]string, error) {
	names := []string{}
	for {
		_, value, err := ReadTagAndGetValue(r)
		if err != nil {
			break
		}
		if !utf8.Valid(value) {
			return nil, ErrBadDER
		}
		names = append(names, string(value))
	}
	return names, nil
}
