// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package der

// Tag is the identifier octet of a DER value. Only the universal and context-specific
// tags listed below are decoded by this package; any other tag met where a specific
// one is expected is an [ErrBadDER].
type Tag byte

const (
	// Constructed is the bit set on tags whose content is itself a series of DER values.
	Constructed Tag = 0x20
	// ContextSpecific is the class bit of context-specific tags such as [0] or [3].
	ContextSpecific Tag = 0x80
)

const (
	Boolean         Tag = 0x01
	Integer         Tag = 0x02
	BitString       Tag = 0x03
	OctetString     Tag = 0x04
	Null            Tag = 0x05
	OID             Tag = 0x06
	UTF8String      Tag = 0x0C
	PrintableString Tag = 0x13
	TeletexString   Tag = 0x14
	IA5String       Tag = 0x16
	UTCTime         Tag = 0x17
	GeneralizedTime Tag = 0x18
	UniversalString Tag = 0x1C
	BMPString       Tag = 0x1E
	Sequence        Tag = Constructed | 0x10
	Set             Tag = Constructed | 0x11

	ContextSpecificConstructed0 Tag = ContextSpecific | Constructed | 0
	ContextSpecificConstructed1 Tag = ContextSpecific | Constructed | 1
	ContextSpecificConstructed2 Tag = ContextSpecific | Constructed | 2
	ContextSpecificConstructed3 Tag = ContextSpecific | Constructed | 3
)

// highTagNumber marks the multi-octet tag form, which this package does not decode.
const highTagNumber = 0x1F

// IsConstructed reports whether t carries the constructed bit.
func (t Tag) IsConstructed() bool { return t&Constructed != 0 }
