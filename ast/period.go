package ast

import (
	"fmt"
	"strings"
	"time"
)

// IntervalUnit discriminates the recurrence interval variants.
type IntervalUnit uint8

const (
	IntervalNone IntervalUnit = iota
	NthDay
	NthWeek
	NthMonth
	NthQuarter
	NthYear
	EveryWeekday
)

// Interval is a recurrence rule: every Nth day/week/month/quarter/year, or a
// fixed weekday.
type Interval struct {
	Unit    IntervalUnit
	N       int
	Weekday time.Weekday // Set only for EveryWeekday.
}

func (i Interval) String() string {
	switch i.Unit {
	case NthDay:
		return fmt.Sprintf("every %d days", i.N)
	case NthWeek:
		return fmt.Sprintf("every %d weeks", i.N)
	case NthMonth:
		return fmt.Sprintf("every %d months", i.N)
	case NthQuarter:
		return fmt.Sprintf("every %d quarters", i.N)
	case NthYear:
		return fmt.Sprintf("every %d years", i.N)
	case EveryWeekday:
		return "every " + strings.ToLower(i.Weekday.String())
	default:
		return ""
	}
}

// Period is a half-open date range [Begin, End) with an optional recurrence
// interval. Any of the three parts may be absent.
type Period struct {
	Interval *Interval
	Begin    *Date
	End      *Date
}

// Contains reports whether d falls inside the period's date range. An absent
// bound is unbounded on that side.
func (p Period) Contains(d Date) bool {
	if p.Begin != nil && d.Before(*p.Begin) {
		return false
	}
	if p.End != nil && !d.Before(*p.End) {
		return false
	}
	return true
}

func (p Period) String() string {
	var parts []string
	if p.Interval != nil {
		parts = append(parts, p.Interval.String())
	}
	switch {
	case p.Begin != nil && p.End != nil:
		parts = append(parts, fmt.Sprintf("from %s to %s", p.Begin, p.End))
	case p.Begin != nil:
		parts = append(parts, fmt.Sprintf("from %s", p.Begin))
	case p.End != nil:
		parts = append(parts, fmt.Sprintf("to %s", p.End))
	}
	return strings.Join(parts, " in ")
}
