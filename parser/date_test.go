package parser

import (
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"

	"github.com/journalhq/journal/ast"
)

func TestParseSimpleDate(t *testing.T) {
	today := ast.NewDate(2011, time.June, 15)

	tests := []struct {
		name     string
		input    string
		expected ast.Date
		fail     string
	}{
		{name: "Dashes", input: "2008-01-02", expected: ast.NewDate(2008, time.January, 2)},
		{name: "Slashes", input: "2008/01/02", expected: ast.NewDate(2008, time.January, 2)},
		{name: "Dots", input: "2008.01.02", expected: ast.NewDate(2008, time.January, 2)},
		{name: "SingleDigitComponents", input: "2008/1/2", expected: ast.NewDate(2008, time.January, 2)},
		{name: "MissingYearSlash", input: "01/31", expected: ast.NewDate(2011, time.January, 31)},
		{name: "MissingYearDash", input: "1-31", expected: ast.NewDate(2011, time.January, 31)},
		{name: "NotADate", input: "x", fail: "1:1: expected a date"},
		{name: "MissingSeparator", input: "2008", fail: "1:5: expected a date separator"},
		{name: "MixedSeparators", input: "2008-01/02", fail: "1:1: month out of range"},
		{name: "MissingDay", input: "2008-01-", fail: "1:9: expected a day"},
		{name: "MonthOutOfRange", input: "2008-13-01", fail: "1:1: month out of range"},
		{name: "DayOutOfRange", input: "2008-01-32", fail: "1:1: day out of range"},
		{name: "ZeroMonth", input: "2008-00-01", fail: "1:1: month out of range"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p := New([]byte(test.input), WithToday(today))
			got, perr := p.parseSimpleDate()
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
