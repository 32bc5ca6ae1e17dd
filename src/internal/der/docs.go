// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package der decodes the DER (Distinguished Encoding Rules) subset of ASN.1 used by
// [X.509] certificate fields. Every decoder consumes a [Reader] over untrusted bytes and
// either returns a fully validated value or one of two error kinds, [ErrBadDER] or
// [ErrBadDERTime]. Decoders never panic and never read past the bounds of their input.
//
// Nested values follow a read-all discipline: the content of a constructed value must
// be consumed exactly, any trailing byte is an error. Recursion depth is fixed by the
// grammar (at most Name, Set, Sequence, value), never by the input.
//
// One relaxation is accepted on purpose: [OptionalBoolean] tolerates an explicit
// encoding of the DEFAULT FALSE value, as real-world encoders emit it.
//
// [X.509]: https://grokipedia.com/page/X.509
package der
