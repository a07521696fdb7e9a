package parser

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/journalhq/journal/ast"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		mantissa int64
		scale    int32
		fail     string
	}{
		{name: "Integer", input: "1", mantissa: 1, scale: 0},
		{name: "Decimal", input: "1.5", mantissa: 15, scale: 1},
		{name: "TwoFractionalDigits", input: "123.45", mantissa: 12345, scale: 2},
		{name: "CommaDecimal", input: "1,5", mantissa: 15, scale: 1},
		{name: "ThreeDigitGroupIsGrouping", input: "1.234", mantissa: 1234, scale: 0},
		{name: "CommaThreeDigitGroupIsGrouping", input: "1,234", mantissa: 1234, scale: 0},
		{name: "FourFractionalDigits", input: "1.2345", mantissa: 12345, scale: 4},
		{name: "TrailingSeparator", input: "123.", mantissa: 123, scale: 0},
		{name: "GroupedTrailingSeparator", input: "12,345,678.", mantissa: 12345678, scale: 0},
		{name: "ThousandsAndDecimal", input: "12,345.67", mantissa: 1234567, scale: 2},
		{name: "DotThousandsCommaDecimal", input: "12.345,67", mantissa: 1234567, scale: 2},
		{name: "RepeatedSeparatorFlips", input: "1.234.567", mantissa: 1234567, scale: 0},
		{name: "RepeatedCommaFlips", input: "1,234,567", mantissa: 1234567, scale: 0},
		{name: "MixedSeparators", input: "1.234,567.89", fail: `1:1: inconsistent digit group separator '.'`},
		{name: "NotANumber", input: "x", fail: `1:1: expected a quantity, found "x"`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p := New([]byte(test.input))
			got, perr := p.parseQuantity()
			if test.fail != "" {
				assert.True(t, perr != nil, "expected a parse error")
				assert.Equal(t, test.fail, perr.Error())
				return
			}
			assert.True(t, perr == nil, "unexpected error: %v", perr)

			want := ast.NewQuantity(test.mantissa, test.scale)
			assert.True(t, got.Decimal.Equal(want.Decimal), "got %s, want %s", got, want)
			assert.Equal(t, test.scale, got.Scale())
		})
	}
}
