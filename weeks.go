// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datecalc

import "time"

// Weeks run Sunday through Saturday.

// BeginningOfWeek returns the Sunday on or before date.
func BeginningOfWeek(date time.Time) (time.Time, error) {
	day := midnight(date)
	return checkRange(day.AddDate(0, 0, -int(day.Weekday())))
}

// EndOfWeek returns the Saturday on or after date.
func EndOfWeek(date time.Time) (time.Time, error) {
	day := midnight(date)
	return checkRange(day.AddDate(0, 0, int(time.Saturday-day.Weekday())))
}

// NextWeek returns the Sunday that starts the week after date's week.
func NextWeek(date time.Time) (time.Time, error) {
	day := midnight(date)
	return checkRange(day.AddDate(0, 0, 7-int(day.Weekday())))
}

// PreviousWeek returns the Sunday that starts the week before date's week.
func PreviousWeek(date time.Time) (time.Time, error) {
	day := midnight(date)
	return checkRange(day.AddDate(0, 0, -7-int(day.Weekday())))
}
