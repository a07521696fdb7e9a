package parser

import (
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"

	"github.com/journalhq/journal/ast"
)

func TestParseSmartDate(t *testing.T) {
	// A Wednesday, so week arithmetic is observable.
	today := ast.NewDate(2024, time.May, 15)

	tests := []struct {
		name     string
		input    string
		expected ast.Date
		fail     string
	}{
		{name: "Today", input: "today", expected: ast.NewDate(2024, time.May, 15)},
		{name: "Tomorrow", input: "tomorrow", expected: ast.NewDate(2024, time.May, 16)},
		{name: "Yesterday", input: "yesterday", expected: ast.NewDate(2024, time.May, 14)},

		{name: "DaysAhead", input: "5 days ahead", expected: ast.NewDate(2024, time.May, 20)},
		{name: "WeeksAgo", input: "2 weeks ago", expected: ast.NewDate(2024, time.May, 1)},
		{name: "MonthsAgo", input: "2 months ago", expected: ast.NewDate(2024, time.March, 15)},
		{name: "InDays", input: "in 3 days", expected: ast.NewDate(2024, time.May, 18)},
		{name: "InQuarters", input: "in 1 quarter", expected: ast.NewDate(2024, time.August, 15)},
		{name: "YearsAhead", input: "1 year ahead", expected: ast.NewDate(2025, time.May, 15)},

		{name: "LastWeek", input: "last week", expected: ast.NewDate(2024, time.May, 6)},
		{name: "ThisWeek", input: "this week", expected: ast.NewDate(2024, time.May, 13)},
		{name: "NextWeek", input: "next week", expected: ast.NewDate(2024, time.May, 20)},
		{name: "LastMonth", input: "last month", expected: ast.NewDate(2024, time.April, 1)},
		{name: "NextQuarter", input: "next quarter", expected: ast.NewDate(2024, time.July, 1)},
		{name: "ThisYear", input: "this year", expected: ast.NewDate(2024, time.January, 1)},
		{name: "LastDay", input: "last day", expected: ast.NewDate(2024, time.May, 14)},

		{name: "MonthDay", input: "1/31", expected: ast.NewDate(2024, time.January, 31)},
		{name: "YearMonthDay", input: "2023/11/30", expected: ast.NewDate(2023, time.November, 30)},
		{name: "YearMonth", input: "2023/11", expected: ast.NewDate(2023, time.November, 1)},
		{name: "EightDigits", input: "20231130", expected: ast.NewDate(2023, time.November, 30)},
		{name: "SixDigits", input: "202311", expected: ast.NewDate(2023, time.November, 1)},
		{name: "FourDigits", input: "2023", expected: ast.NewDate(2023, time.January, 1)},
		{name: "BareDay", input: "7", expected: ast.NewDate(2024, time.May, 7)},
		{name: "MonthName", input: "july", expected: ast.NewDate(2024, time.July, 1)},
		{name: "MonthAbbreviation", input: "nov", expected: ast.NewDate(2024, time.November, 1)},
		{name: "MonthNameCased", input: "July", expected: ast.NewDate(2024, time.July, 1)},

		{name: "NotADate", input: "banana", fail: "1:1: expected a date"},
		{name: "BadEightDigits", input: "20231399", fail: "1:1: expected a date"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p := New([]byte(test.input), WithToday(today))
			got, perr := p.parseSmartDate()
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
