package ast

import (
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
)

func TestPeriodContains(t *testing.T) {
	begin := NewDate(2024, time.January, 1)
	end := NewDate(2024, time.February, 1)

	bounded := Period{Begin: &begin, End: &end}
	assert.True(t, bounded.Contains(begin))
	assert.True(t, bounded.Contains(NewDate(2024, time.January, 31)))
	assert.False(t, bounded.Contains(end), "the range is half-open; End is excluded")
	assert.False(t, bounded.Contains(NewDate(2023, time.December, 31)))

	open := Period{Begin: &begin}
	assert.True(t, open.Contains(NewDate(2030, time.June, 15)))
	assert.False(t, open.Contains(NewDate(2023, time.December, 31)))

	unbounded := Period{}
	assert.True(t, unbounded.Contains(NewDate(1970, time.January, 1)))
}

func TestPeriodString(t *testing.T) {
	begin := NewDate(2024, time.January, 1)
	end := NewDate(2024, time.February, 1)

	assert.Equal(t, "every 2 weeks", Period{Interval: &Interval{Unit: NthWeek, N: 2}}.String())
	assert.Equal(t, "every tuesday", Period{Interval: &Interval{Unit: EveryWeekday, Weekday: time.Tuesday}}.String())
	assert.Equal(t, "from 2024-01-01 to 2024-02-01", Period{Begin: &begin, End: &end}.String())
	assert.Equal(t, "every 1 months in from 2024-01-01", Period{
		Interval: &Interval{Unit: NthMonth, N: 1},
		Begin:    &begin,
	}.String())
}

func TestDateStartOf(t *testing.T) {
	// 2024-05-15 is a Wednesday.
	d := NewDate(2024, time.May, 15)

	assert.Equal(t, NewDate(2024, time.May, 13), d.StartOfWeek())
	assert.Equal(t, NewDate(2024, time.May, 1), d.StartOfMonth())
	assert.Equal(t, NewDate(2024, time.April, 1), d.StartOfQuarter())
	assert.Equal(t, NewDate(2024, time.January, 1), d.StartOfYear())

	// Weeks start on Monday; a Sunday rewinds six days.
	assert.Equal(t, NewDate(2024, time.May, 13), NewDate(2024, time.May, 19).StartOfWeek())
}
