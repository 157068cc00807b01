// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datecalc

import "time"

// Days in each month of a non-leap year, indexed by time.Month - 1.
var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeap returns true if the given year is a leap year in the proleptic
// Gregorian calendar.
func IsLeap(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// DaysInFeb returns the number of days in February for the given year.
func DaysInFeb(year int) int {
	if IsLeap(year) {
		return 29
	}
	return 28
}

// DaysInMonth returns the number of days in the given month for the given
// year.
func DaysInMonth(year int, month time.Month) int {
	if month == time.February {
		return DaysInFeb(year)
	}
	return daysInMonth[month-1]
}

// Quarter returns the calendar quarter that date falls in, in the range
// 1-4. Quarters are the fixed spans Jan-Mar, Apr-Jun, Jul-Sep and Oct-Dec.
func Quarter(date time.Time) int {
	return (int(date.Month())-1)/3 + 1
}
