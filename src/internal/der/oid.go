// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package der

import (
	"math"
	"strconv"
)

// ParseOID decodes an OBJECT IDENTIFIER into its dotted-decimal form, for example
// "1.2.840.113549.1.1.11".
//
// The first content byte carries the first two arcs as first/40 and first%40. Each
// following arc is a base-128 number, most significant group first, where a set high
// bit marks a continuation byte. An arc that does not fit in 64 bits, an arc starting
// with a redundant 0x80 byte, or content ending in the middle of an arc is [ErrBadDER].
func ParseOID(r Reader) (string, error) {
	value, err := ExpectTagAndGetValue(r, OID)
	if err != nil {
		return "", err
	}

	return ReadAll(value, ErrBadDER, func(data Reader) (string, error) {
		first, err := data.ReadByte()
		if err != nil {
			return "", ErrBadDER
		}

		buf := make([]byte, 0, 3*value.Len()+4)
		buf = strconv.AppendUint(buf, uint64(first/40), 10)
		buf = append(buf, '.')
		buf = strconv.AppendUint(buf, uint64(first%40), 10)

		for !data.AtEnd() {
			arc, err := readArc(data)
			if err != nil {
				return "", err
			}
			buf = append(buf, '.')
			buf = strconv.AppendUint(buf, arc, 10)
		}
		return string(buf), nil
	})
}

func readArc(r Reader) (uint64, error) {
	var arc uint64
	for i := 0; ; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return 0, ErrBadDER // truncated
		}
		if i == 0 && b == 0x80 {
			return 0, ErrBadDER
		}
		if arc > math.MaxUint64>>7 {
			return 0, ErrBadDER
		}
		arc = arc<<7 | uint64(b&0x7F)
		if b&0x80 == 0 {
			return arc, nil
		}
	}
}
