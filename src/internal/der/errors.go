// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package der

// ErrorKind is the closed set of failures a decoder in this package can report.
// Values compare with == and work with [errors.Is].
type ErrorKind uint8

const (
	// ErrBadDER reports a structural violation: wrong tag, bad length, trailing or
	// missing bytes, invalid character data, an out-of-range field or a malformed OID.
	ErrBadDER ErrorKind = iota + 1

	// ErrBadDERTime reports a violation of the UTCTime or GeneralizedTime grammar,
	// including calendar-impossible dates and a missing 'Z' suffix.
	ErrBadDERTime
)

func (e ErrorKind) Error() string {
	switch e {
	case ErrBadDER:
		return "der: malformed DER encoding"
	case ErrBadDERTime:
		return "der: malformed DER time"
	default:
		return "der: unknown error"
	}
}
