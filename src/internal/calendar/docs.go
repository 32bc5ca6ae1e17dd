// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package calendar provides the Gregorian calendar arithmetic used when decoding
// certificate validity times: month lengths with leap years, and construction of a UTC
// instant from its broken-down fields with full range validation.
package calendar
