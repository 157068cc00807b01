// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datecalc

import "time"

// quarterStartMonth returns the first month of the quarter containing
// month, one of January, April, July or October.
func quarterStartMonth(month time.Month) time.Month {
	return time.Month(1 + 3*((int(month)-1)/3))
}

// BeginningOfQuarter returns the first day of date's quarter.
func BeginningOfQuarter(date time.Time) (time.Time, error) {
	return ymd(date.Year(), quarterStartMonth(date.Month()), 1, date.Location())
}

// EndOfQuarter returns the last day of date's quarter, one of Mar 31,
// Jun 30, Sep 30 or Dec 31.
func EndOfQuarter(date time.Time) (time.Time, error) {
	last := quarterStartMonth(date.Month()) + 2
	return ymd(date.Year(), last, DaysInMonth(date.Year(), last), date.Location())
}

// NextQuarter returns the first day of the quarter after date's quarter.
// Stepping forward from Oct-Dec carries into January 1 of the following
// year.
func NextQuarter(date time.Time) (time.Time, error) {
	if date.Month() >= time.October {
		return ymd(date.Year()+1, time.January, 1, date.Location())
	}
	return ymd(date.Year(), quarterStartMonth(date.Month())+3, 1, date.Location())
}

// PreviousQuarter returns the first day of the quarter before date's
// quarter. Stepping backward from Jan-Mar carries into October 1 of the
// preceding year.
func PreviousQuarter(date time.Time) (time.Time, error) {
	if date.Month() < time.April {
		return ymd(date.Year()-1, time.October, 1, date.Location())
	}
	return ymd(date.Year(), quarterStartMonth(date.Month())-3, 1, date.Location())
}
