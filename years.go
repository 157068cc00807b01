// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datecalc

import "time"

// BeginningOfYear returns January 1 of date's year.
func BeginningOfYear(date time.Time) (time.Time, error) {
	return ymd(date.Year(), time.January, 1, date.Location())
}

// EndOfYear returns December 31 of date's year.
func EndOfYear(date time.Time) (time.Time, error) {
	return ymd(date.Year(), time.December, 31, date.Location())
}

// NextYear returns January 1 of the year after date's year.
func NextYear(date time.Time) (time.Time, error) {
	return ymd(date.Year()+1, time.January, 1, date.Location())
}

// PreviousYear returns January 1 of the year before date's year.
func PreviousYear(date time.Time) (time.Time, error) {
	return ymd(date.Year()-1, time.January, 1, date.Location())
}
