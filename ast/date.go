package ast

import (
	"fmt"
	"time"
)

// Date represents a calendar date with day granularity. The components are
// kept as parsed; range validation (month 1-12, day 1-31) happens in the
// parser and is not calendar-aware beyond that.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the date for the given components, unnormalized.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf truncates a time to its calendar date.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Time returns the canonical representation of the day, midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// String formats the date in ISO-8601 form.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// IsZero returns true for the zero value.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Before reports whether d is before x.
func (d Date) Before(x Date) bool { return d.Time().Before(x.Time()) }

// After reports whether d is after x.
func (d Date) After(x Date) bool { return d.Time().After(x.Time()) }

// AddDays returns the date i days later, normalized.
func (d Date) AddDays(i int) Date {
	return DateOf(d.Time().AddDate(0, 0, i))
}

// AddMonths returns the date i months later, normalized.
func (d Date) AddMonths(i int) Date {
	return DateOf(d.Time().AddDate(0, i, 0))
}

// AddYears returns the date i years later, normalized.
func (d Date) AddYears(i int) Date {
	return DateOf(d.Time().AddDate(i, 0, 0))
}

// StartOfWeek returns the Monday on or before d.
func (d Date) StartOfWeek() Date {
	offset := int(d.Time().Weekday() - time.Monday)
	if offset < 0 {
		offset += 7
	}
	return d.AddDays(-offset)
}

// StartOfMonth returns the first day of d's month.
func (d Date) StartOfMonth() Date {
	return Date{Year: d.Year, Month: d.Month, Day: 1}
}

// StartOfQuarter returns the first day of d's quarter.
func (d Date) StartOfQuarter() Date {
	q := (int(d.Month) - 1) / 3
	return Date{Year: d.Year, Month: time.Month(q*3 + 1), Day: 1}
}

// StartOfYear returns January 1 of d's year.
func (d Date) StartOfYear() Date {
	return Date{Year: d.Year, Month: time.January, Day: 1}
}
