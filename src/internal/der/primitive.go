// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package der

// OptionalBoolean decodes a BOOLEAN with DEFAULT FALSE. When the next value is not a
// BOOLEAN nothing is consumed and false is returned.
//
// An explicitly encoded FALSE is accepted even though DER requires it to be omitted,
// for compatibility with certificates found in the wild. Only 0x00 and 0xFF are valid
// contents.
func OptionalBoolean(r Reader) (bool, error) {
	if !r.Peek(Boolean) {
		return false, nil
	}
	return Nested(r, Boolean, ErrBadDER, func(r Reader) (bool, error) {
		b, err := r.ReadByte()
		if err != nil {
			return false, ErrBadDER
		}
		switch b {
		case 0xFF:
			return true, nil
		case 0x00:
			return false, nil
		default:
			return false, ErrBadDER
		}
	})
}

// PositiveInteger decodes an INTEGER that must be greater than zero and returns its
// big-endian magnitude without the sign padding byte.
func PositiveInteger(r Reader) (Input, error) { return nonNegativeInteger(r, 1) }

// NonNegativeInteger decodes an INTEGER that must not be negative and returns its
// big-endian magnitude without the sign padding byte. Zero is returned as a single
// 0x00 byte.
func NonNegativeInteger(r Reader) (Input, error) { return nonNegativeInteger(r, 0) }

// SmallNonNegativeInteger decodes an INTEGER in the range 0 to 255, as used by
// version fields and path length constraints.
func SmallNonNegativeInteger(r Reader) (uint8, error) {
	value, err := NonNegativeInteger(r)
	if err != nil {
		return 0, err
	}
	return ReadAll(value, ErrBadDER, func(r Reader) (uint8, error) {
		return r.ReadByte()
	})
}

// nonNegativeInteger enforces the minimal two's complement encoding of DER: no
// redundant leading zero, no negative value, and at least one content byte.
func nonNegativeInteger(r Reader, minValue byte) (Input, error) {
	value, err := ExpectTagAndGetValue(r, Integer)
	if err != nil {
		return nil, err
	}

	return ReadAll(value, ErrBadDER, func(r Reader) (Input, error) {
		first, err := r.ReadByte()
		if err != nil {
			return nil, ErrBadDER
		}

		if first == 0 {
			if r.AtEnd() {
				if minValue > 0 {
					return nil, ErrBadDER
				}
				return value, nil
			}

			magnitude := r.SkipToEnd()
			second, err := NewReader(magnitude).ReadByte()
			if err != nil || second&0x80 == 0 {
				return nil, ErrBadDER // leading zero not needed for the sign
			}
			return magnitude, nil
		}

		if first&0x80 != 0 {
			return nil, ErrBadDER // negative
		}
		r.SkipToEnd()
		return value, nil
	})
}

// BitStringWithNoUnusedBits decodes a BIT STRING whose unused-bits count is zero and
// returns its payload bytes.
func BitStringWithNoUnusedBits(r Reader) (Input, error) {
	return Nested(r, BitString, ErrBadDER, func(r Reader) (Input, error) {
		unused, err := r.ReadByte()
		if err != nil {
			return nil, ErrBadDER
		}
		if unused != 0 {
			return nil, ErrBadDER
		}
		return r.SkipToEnd(), nil
	})
}
