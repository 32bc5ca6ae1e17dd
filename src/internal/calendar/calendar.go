// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package calendar

import (
	"errors"
	"time"
)

// MaxYear is the largest year a four-digit GeneralizedTime can carry.
const MaxYear = 9999

// ErrInvalidDate indicates fields that do not name a real instant, such as
// February 30th or hour 24.
var ErrInvalidDate = errors.New("calendar: invalid date")

// IsLeapYear reports whether year has a February 29th.
func IsLeapYear(year uint64) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in month of year. It returns 0 for a month
// outside 1 to 12, so any day-of-month check against it fails.
func DaysInMonth(year, month uint64) uint64 {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// TimeFromYMDHMSUTC returns the UTC instant for the given fields. Every field is
// checked against its calendar range, so time.Date never gets to normalize an
// overflowing value into a different date.
func TimeFromYMDHMSUTC(year, month, day, hours, minutes, seconds uint64) (time.Time, error) {
	if year > MaxYear {
		return time.Time{}, ErrInvalidDate
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return time.Time{}, ErrInvalidDate
	}
	if hours > 23 || minutes > 59 || seconds > 59 {
		return time.Time{}, ErrInvalidDate
	}
	return time.Date(int(year), time.Month(month), int(day), int(hours), int(minutes), int(seconds), 0, time.UTC), nil
}
