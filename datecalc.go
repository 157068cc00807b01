// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package datecalc provides transitions between adjacent calendar periods
// over Gregorian dates: the beginning, end, next and previous instance of
// a week, month, quarter or year relative to an input date. Dates are
// represented as time.Time values; every transition returns midnight on
// the result day in the input's location, discarding the input's
// time of day.
package datecalc

import (
	"errors"
	"math"
	"time"
)

// MinYear and MaxYear bound the years for which transitions are defined.
// time.Time can represent years well beyond these bounds but wraps
// silently at its internal limits rather than failing; restricting results
// to this range keeps every transition exact.
const (
	MinYear = math.MinInt32
	MaxYear = math.MaxInt32
)

// ErrOutOfRange is returned when the year of a transition's result falls
// outside [MinYear, MaxYear].
var ErrOutOfRange = errors.New("year out of range")

// midnight returns 00:00:00 on date's day in date's location.
func midnight(date time.Time) time.Time {
	year, month, day := date.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, date.Location())
}

// ymd returns midnight on the given day in loc, or ErrOutOfRange if year
// is out of bounds.
func ymd(year int, month time.Month, day int, loc *time.Location) (time.Time, error) {
	if year < MinYear || year > MaxYear {
		return time.Time{}, ErrOutOfRange
	}
	return time.Date(year, month, day, 0, 0, 0, 0, loc), nil
}

func checkRange(date time.Time) (time.Time, error) {
	if year := date.Year(); year < MinYear || year > MaxYear {
		return time.Time{}, ErrOutOfRange
	}
	return date, nil
}
