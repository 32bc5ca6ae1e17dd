// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package der

import (
	"time"

	"github.com/H0llyW00dzZ/x509-der-inspector/src/internal/calendar"
)

// TimeChoice decodes a Time ::= CHOICE { UTCTime, GeneralizedTime } value in the form
// YYMMDDHHMMSSZ or YYYYMMDDHHMMSSZ. Fractional seconds and zone offsets are not
// allowed. A two-digit year of 50 or more is 19YY, otherwise 20YY.
//
// All failures, including framing ones, are [ErrBadDERTime].
func TimeChoice(r Reader) (time.Time, error) {
	isUTCTime := r.Peek(UTCTime)
	tag := GeneralizedTime
	if isUTCTime {
		tag = UTCTime
	}

	return Nested(r, tag, ErrBadDERTime, func(value Reader) (time.Time, error) {
		var year uint64
		if isUTCTime {
			lo, err := readTwoDigits(value, 0, 99)
			if err != nil {
				return time.Time{}, err
			}
			hi := uint64(20)
			if lo >= 50 {
				hi = 19
			}
			year = hi*100 + lo
		} else {
			hi, err := readTwoDigits(value, 0, 99)
			if err != nil {
				return time.Time{}, err
			}
			lo, err := readTwoDigits(value, 0, 99)
			if err != nil {
				return time.Time{}, err
			}
			year = hi*100 + lo
		}

		month, err := readTwoDigits(value, 1, 12)
		if err != nil {
			return time.Time{}, err
		}
		day, err := readTwoDigits(value, 1, calendar.DaysInMonth(year, month))
		if err != nil {
			return time.Time{}, err
		}
		hours, err := readTwoDigits(value, 0, 23)
		if err != nil {
			return time.Time{}, err
		}
		minutes, err := readTwoDigits(value, 0, 59)
		if err != nil {
			return time.Time{}, err
		}
		seconds, err := readTwoDigits(value, 0, 59)
		if err != nil {
			return time.Time{}, err
		}

		zone, err := value.ReadByte()
		if err != nil || zone != 'Z' {
			return time.Time{}, ErrBadDERTime
		}

		t, err := calendar.TimeFromYMDHMSUTC(year, month, day, hours, minutes, seconds)
		if err != nil {
			return time.Time{}, ErrBadDERTime
		}
		return t, nil
	})
}

func readDigit(r Reader) (uint64, error) {
	b, err := r.ReadByte()
	if err != nil || b < '0' || b > '9' {
		return 0, ErrBadDERTime
	}
	return uint64(b - '0'), nil
}

// readTwoDigits reads a two-digit decimal field and checks it lies in [lowest, highest].
func readTwoDigits(r Reader, lowest, highest uint64) (uint64, error) {
	hi, err := readDigit(r)
	if err != nil {
		return 0, err
	}
	lo, err := readDigit(r)
	if err != nil {
		return 0, err
	}
	value := hi*10 + lo
	if value < lowest || value > highest {
		return 0, ErrBadDERTime
	}
	return value, nil
}
