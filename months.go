// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datecalc

import "time"

// BeginningOfMonth returns the first day of date's month.
func BeginningOfMonth(date time.Time) (time.Time, error) {
	return ymd(date.Year(), date.Month(), 1, date.Location())
}

// EndOfMonth returns the last day of date's month, Feb 29 in leap years.
func EndOfMonth(date time.Time) (time.Time, error) {
	year, month := date.Year(), date.Month()
	return ymd(year, month, DaysInMonth(year, month), date.Location())
}

// NextMonth returns the first day of the month after date's month.
// December carries into January 1 of the following year.
func NextMonth(date time.Time) (time.Time, error) {
	if date.Month() == time.December {
		return ymd(date.Year()+1, time.January, 1, date.Location())
	}
	return ymd(date.Year(), date.Month()+1, 1, date.Location())
}

// PreviousMonth returns the first day of the month before date's month.
// January carries into December 1 of the preceding year.
func PreviousMonth(date time.Time) (time.Time, error) {
	if date.Month() == time.January {
		return ymd(date.Year()-1, time.December, 1, date.Location())
	}
	return ymd(date.Year(), date.Month()-1, 1, date.Location())
}
