package parser

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/journalhq/journal/ast"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *ast.Amount
		fail     string
	}{
		{
			name:     "SignQuantityCommodity",
			input:    "-1 USD",
			expected: &ast.Amount{Quantity: ast.NewQuantity(-1, 0), Commodity: "USD"},
		},
		{
			name:     "QuantitySignCommodity",
			input:    "1- USD",
			expected: &ast.Amount{Quantity: ast.NewQuantity(-1, 0), Commodity: "USD"},
		},
		{
			name:     "SignCommodityQuantity",
			input:    "-$1",
			expected: &ast.Amount{Quantity: ast.NewQuantity(-1, 0), Commodity: "$"},
		},
		{
			name:     "CommoditySignQuantity",
			input:    "$-1",
			expected: &ast.Amount{Quantity: ast.NewQuantity(-1, 0), Commodity: "$"},
		},
		{
			name:     "QuantityCommodity",
			input:    "1.50 USD",
			expected: &ast.Amount{Quantity: ast.NewQuantity(150, 2), Commodity: "USD"},
		},
		{
			name:     "CommodityQuantity",
			input:    "$1.50",
			expected: &ast.Amount{Quantity: ast.NewQuantity(150, 2), Commodity: "$"},
		},
		{
			name:     "QuantityOnly",
			input:    "42",
			expected: &ast.Amount{Quantity: ast.NewQuantity(42, 0)},
		},
		{
			name:     "NegativeQuantityOnly",
			input:    "-42.5",
			expected: &ast.Amount{Quantity: ast.NewQuantity(-425, 1)},
		},
		{
			name:     "PositiveSignIsDropped",
			input:    "+3 EUR",
			expected: &ast.Amount{Quantity: ast.NewQuantity(3, 0), Commodity: "EUR"},
		},
		{
			name:     "EuroSymbol",
			input:    "€9,99",
			expected: &ast.Amount{Quantity: ast.NewQuantity(999, 2), Commodity: "€"},
		},
		{
			name:     "QuotedCommodity",
			input:    `2 "AAPL 2024"`,
			expected: &ast.Amount{Quantity: ast.NewQuantity(2, 0), Commodity: "AAPL 2024"},
		},
		{
			name:     "GroupedQuantity",
			input:    "$1,234,567.89",
			expected: &ast.Amount{Quantity: ast.NewQuantity(123456789, 2), Commodity: "$"},
		},
		{
			name:  "UnitPrice",
			input: "10 GBP @ 1.20 USD",
			expected: &ast.Amount{
				Quantity:  ast.NewQuantity(10, 0),
				Commodity: "GBP",
				Price: &ast.AmountPrice{
					Amount: ast.Amount{Quantity: ast.NewQuantity(120, 2), Commodity: "USD"},
				},
			},
		},
		{
			name:  "TotalPrice",
			input: "10 GBP @@ 12.00 USD",
			expected: &ast.Amount{
				Quantity:  ast.NewQuantity(10, 0),
				Commodity: "GBP",
				Price: &ast.AmountPrice{
					Total:  true,
					Amount: ast.Amount{Quantity: ast.NewQuantity(1200, 2), Commodity: "USD"},
				},
			},
		},
		{
			name:  "NegativePricedAmount",
			input: "-2 AAPL @ $150",
			expected: &ast.Amount{
				Quantity:  ast.NewQuantity(-2, 0),
				Commodity: "AAPL",
				Price: &ast.AmountPrice{
					Amount: ast.Amount{Quantity: ast.NewQuantity(150, 0), Commodity: "$"},
				},
			},
		},
		{name: "NotAnAmount", input: "@", fail: "1:1: expected a sign"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p := New([]byte(test.input))
			got, perr := p.parseAmountWithPrice()
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
