// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package der

import (
	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// Input is a read-only view into a DER buffer owned by the caller. Decoders slice it
// but never write through it, so a single Input may be shared for reading.
type Input []byte

// Len returns the number of bytes in the view.
func (in Input) Len() int { return len(in) }

// Reader is the cursor capability every decoder depends on. A Reader carries the
// position within one Input and only ever moves forward. It must not be used by more
// than one goroutine at a time.
type Reader interface {
	// Peek reports whether the next byte equals tag, without consuming it.
	Peek(tag Tag) bool
	// ReadByte consumes one byte.
	ReadByte() (byte, error)
	// ReadBytes consumes exactly n bytes and returns them as a view.
	ReadBytes(n int) (Input, error)
	// ReadTLV consumes one whole tag, length and value. On failure nothing is
	// consumed.
	ReadTLV() (Tag, Input, error)
	// SkipToEnd consumes and returns everything left.
	SkipToEnd() Input
	// AtEnd reports whether all input has been consumed.
	AtEnd() bool
}

// cursor implements [Reader] over [cryptobyte.String], which performs all bounds checks.
type cursor struct{ s cryptobyte.String }

// NewReader returns a [Reader] positioned at the start of in.
func NewReader(in Input) Reader { return &cursor{s: cryptobyte.String(in)} }

func (c *cursor) Peek(tag Tag) bool { return c.s.PeekASN1Tag(cbasn1.Tag(tag)) }

func (c *cursor) ReadByte() (byte, error) {
	var b uint8
	if !c.s.ReadUint8(&b) {
		return 0, ErrBadDER
	}
	return b, nil
}

func (c *cursor) ReadBytes(n int) (Input, error) {
	if n == 0 {
		return Input{}, nil
	}
	var out []byte
	if !c.s.ReadBytes(&out, n) {
		return nil, ErrBadDER
	}
	return Input(out), nil
}

func (c *cursor) ReadTLV() (Tag, Input, error) {
	next := &cursor{s: c.s}
	tag, value, err := readTLV(next)
	if err != nil {
		return 0, nil, err
	}
	c.s = next.s
	return tag, value, nil
}

func (c *cursor) SkipToEnd() Input {
	rest := Input(c.s)
	c.s.Skip(len(c.s))
	return rest
}

func (c *cursor) AtEnd() bool { return c.s.Empty() }
