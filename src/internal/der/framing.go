// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package der

// ReadTagAndGetValue consumes one tag octet and a DER length, and returns the
// observed tag together with a view of exactly that many following bytes.
//
// Lengths are accepted in short form and in the minimal long forms 0x81 and 0x82,
// which bound a single value to 65535 bytes. The indefinite form, longer length
// forms and multi-octet tags are [ErrBadDER], as is a length larger than what is
// left in r. A failed read leaves r where it was, so the bytes remain for the
// read-all check of an enclosing [Nested] or [ReadAll].
func ReadTagAndGetValue(r Reader) (Tag, Input, error) { return r.ReadTLV() }

// readTLV does the framing for [Reader.ReadTLV]. It may leave r partly consumed on
// failure; the caller discards r in that case.
func readTLV(r Reader) (Tag, Input, error) {
	tag, err := r.ReadByte()
	if err != nil {
		return 0, nil, ErrBadDER
	}
	if tag&highTagNumber == highTagNumber {
		return 0, nil, ErrBadDER
	}

	length, err := readLength(r)
	if err != nil {
		return 0, nil, err
	}

	value, err := r.ReadBytes(length)
	if err != nil {
		return 0, nil, ErrBadDER
	}
	return Tag(tag), value, nil
}

// readLength decodes a DER length, rejecting every non-minimal encoding.
func readLength(r Reader) (int, error) {
	first, err := r.ReadByte()
	if err != nil {
		return 0, ErrBadDER
	}

	switch {
	case first < 0x80:
		return int(first), nil
	case first == 0x81:
		n, err := r.ReadByte()
		if err != nil {
			return 0, ErrBadDER
		}
		if n < 0x80 {
			return 0, ErrBadDER // short form required
		}
		return int(n), nil
	case first == 0x82:
		hi, err := r.ReadByte()
		if err != nil {
			return 0, ErrBadDER
		}
		lo, err := r.ReadByte()
		if err != nil {
			return 0, ErrBadDER
		}
		n := int(hi)<<8 | int(lo)
		if n < 0x100 {
			return 0, ErrBadDER // 0x81 form required
		}
		return n, nil
	default:
		// 0x80 is the BER indefinite form.
		return 0, ErrBadDER
	}
}

// ExpectTagAndGetValue is [ReadTagAndGetValue] that additionally requires the tag
// to equal tag. A tag mismatch consumes nothing.
func ExpectTagAndGetValue(r Reader, tag Tag) (Input, error) {
	if !r.Peek(tag) {
		return nil, ErrBadDER
	}
	actual, value, err := ReadTagAndGetValue(r)
	if err != nil {
		return nil, err
	}
	if actual != tag {
		return nil, ErrBadDER
	}
	return value, nil
}

// ReadAll runs decode over a fresh [Reader] on in and requires decode to consume in
// entirely. Errors returned by decode pass through unchanged; unconsumed bytes are
// reported as kind.
func ReadAll[T any](in Input, kind ErrorKind, decode func(Reader) (T, error)) (T, error) {
	var zero T

	r := NewReader(in)
	v, err := decode(r)
	if err != nil {
		return zero, err
	}
	if !r.AtEnd() {
		return zero, kind
	}
	return v, nil
}

// Nested frames a value tagged tag and decodes its content with decode under the
// read-all discipline of [ReadAll]. Framing failures are reported as kind.
func Nested[T any](r Reader, tag Tag, kind ErrorKind, decode func(Reader) (T, error)) (T, error) {
	value, err := ExpectTagAndGetValue(r, tag)
	if err != nil {
		var zero T
		return zero, kind
	}
	return ReadAll(value, kind, decode)
}

// NestedOf frames a value tagged outer whose content is one or more values tagged
// inner, and calls decode on the content of each inner value in order. An outer value
// with no inner element is an error; grammars allowing zero elements must check for
// that before calling NestedOf.
func NestedOf(r Reader, outer, inner Tag, kind ErrorKind, decode func(Reader) error) error {
	element := func(r Reader) (struct{}, error) { return struct{}{}, decode(r) }

	_, err := Nested(r, outer, kind, func(content Reader) (struct{}, error) {
		for {
			if _, err := Nested(content, inner, kind, element); err != nil {
				return struct{}{}, err
			}
			if content.AtEnd() {
				return struct{}{}, nil
			}
		}
	})
	return err
}
