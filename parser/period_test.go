package parser

import (
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"

	"github.com/journalhq/journal/ast"
)

func TestParsePeriod(t *testing.T) {
	today := ast.NewDate(2024, time.May, 15)

	dp := func(y int, m time.Month, d int) *ast.Date {
		x := ast.NewDate(y, m, d)
		return &x
	}
	iv := func(unit ast.IntervalUnit, n int) *ast.Interval {
		return &ast.Interval{Unit: unit, N: n}
	}

	tests := []struct {
		name     string
		input    string
		expected ast.Period
		fail     string
	}{
		{name: "Daily", input: "daily", expected: ast.Period{Interval: iv(ast.NthDay, 1)}},
		{name: "Weekly", input: "weekly", expected: ast.Period{Interval: iv(ast.NthWeek, 1)}},
		{name: "Biweekly", input: "biweekly", expected: ast.Period{Interval: iv(ast.NthWeek, 2)}},
		{name: "Fortnightly", input: "fortnightly", expected: ast.Period{Interval: iv(ast.NthWeek, 2)}},
		{name: "Monthly", input: "monthly", expected: ast.Period{Interval: iv(ast.NthMonth, 1)}},
		{name: "Bimonthly", input: "bimonthly", expected: ast.Period{Interval: iv(ast.NthMonth, 2)}},
		{name: "Quarterly", input: "quarterly", expected: ast.Period{Interval: iv(ast.NthQuarter, 1)}},
		{name: "Yearly", input: "yearly", expected: ast.Period{Interval: iv(ast.NthQuarter, 1)}},
		{name: "EveryNDays", input: "every 3 days", expected: ast.Period{Interval: iv(ast.NthDay, 3)}},
		{name: "EveryNWeeks", input: "every 2 weeks", expected: ast.Period{Interval: iv(ast.NthWeek, 2)}},
		{
			name:     "EveryWeekday",
			input:    "every tue",
			expected: ast.Period{Interval: &ast.Interval{Unit: ast.EveryWeekday, Weekday: time.Tuesday}},
		},
		{
			name:     "EveryWeekdayFull",
			input:    "every Friday",
			expected: ast.Period{Interval: &ast.Interval{Unit: ast.EveryWeekday, Weekday: time.Friday}},
		},

		{name: "Quarter", input: "q2", expected: ast.Period{Begin: dp(2024, time.April, 1), End: dp(2024, time.July, 1)}},
		{name: "YearQuarter", input: "2023q4", expected: ast.Period{Begin: dp(2023, time.October, 1), End: dp(2024, time.January, 1)}},
		{
			name:     "FromTo",
			input:    "from 2024/01/01 to 2024/06/30",
			expected: ast.Period{Begin: dp(2024, time.January, 1), End: dp(2024, time.June, 30)},
		},
		{
			name:     "FromDotDot",
			input:    "from 2024/01/01..2024/06/30",
			expected: ast.Period{Begin: dp(2024, time.January, 1), End: dp(2024, time.June, 30)},
		},
		{
			name:     "FromDash",
			input:    "from jan-july",
			expected: ast.Period{Begin: dp(2024, time.January, 1), End: dp(2024, time.July, 1)},
		},
		{
			// A single dot is not a range separator; the phrase falls back
			// to a plain "from <date>" range.
			name:     "FromWithHalfDotSeparator",
			input:    "from 2024/01/01 .-2024/06/30",
			expected: ast.Period{Begin: dp(2024, time.January, 1)},
		},
		{name: "To", input: "to 2024/03/01", expected: ast.Period{End: dp(2024, time.March, 1)}},
		{name: "From", input: "from 2024/03/01", expected: ast.Period{Begin: dp(2024, time.March, 1)}},
		{name: "Since", input: "since last month", expected: ast.Period{Begin: dp(2024, time.April, 1)}},
		{name: "SingleDay", input: "2024/05/02", expected: ast.Period{Begin: dp(2024, time.May, 2), End: dp(2024, time.May, 3)}},
		{name: "SingleMonth", input: "2024/05", expected: ast.Period{Begin: dp(2024, time.May, 1), End: dp(2024, time.June, 1)}},
		{name: "SingleYear", input: "2024", expected: ast.Period{Begin: dp(2024, time.January, 1), End: dp(2025, time.January, 1)}},

		{
			name:  "IntervalWithRange",
			input: "monthly in 2024",
			expected: ast.Period{
				Interval: iv(ast.NthMonth, 1),
				Begin:    dp(2024, time.January, 1),
				End:      dp(2025, time.January, 1),
			},
		},
		{
			name:  "EveryClauseWithQuarter",
			input: "every 2 weeks in q3",
			expected: ast.Period{
				Interval: iv(ast.NthWeek, 2),
				Begin:    dp(2024, time.July, 1),
				End:      dp(2024, time.October, 1),
			},
		},

		{name: "Garbage", input: "banana", fail: "1:1: expected a period expression"},
		{name: "BadRangeAfterIn", input: "daily in banana", fail: "1:10: expected a date range"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p := New([]byte(test.input), WithToday(today))
			got, perr := p.parsePeriod()
			if test.fail != "" {
				assert.True(t, perr != nil, "expected a parse error")
				assert.Equal(t, test.fail, perr.Error())
				return
			}
			assert.True(t, perr == nil, "unexpected error: %v", perr)
			assert.Equal(t, test.expected, got)
		})
	}
}
