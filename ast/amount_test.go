package ast

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestAmountCost(t *testing.T) {
	usd := func(mantissa int64, scale int32) Amount {
		return Amount{Quantity: NewQuantity(mantissa, scale), Commodity: "USD"}
	}

	tests := []struct {
		name     string
		amount   Amount
		expected Amount
	}{
		{
			name:     "NoPriceCostsItself",
			amount:   Amount{Quantity: NewQuantity(10, 0), Commodity: "GBP"},
			expected: Amount{Quantity: NewQuantity(10, 0), Commodity: "GBP"},
		},
		{
			name: "UnitPriceMultiplies",
			amount: Amount{
				Quantity:  NewQuantity(10, 0),
				Commodity: "GBP",
				Price:     &AmountPrice{Amount: usd(120, 2)},
			},
			expected: usd(1200, 2),
		},
		{
			name: "UnitPriceKeepsNegativeSign",
			amount: Amount{
				Quantity:  NewQuantity(-2, 0),
				Commodity: "AAPL",
				Price:     &AmountPrice{Amount: usd(150, 0)},
			},
			expected: usd(-300, 0),
		},
		{
			name: "TotalPriceIsThePriceAmount",
			amount: Amount{
				Quantity:  NewQuantity(10, 0),
				Commodity: "GBP",
				Price:     &AmountPrice{Total: true, Amount: usd(1200, 2)},
			},
			expected: usd(1200, 2),
		},
		{
			name: "TotalPriceSignFollowsQuantity",
			amount: Amount{
				Quantity:  NewQuantity(-10, 0),
				Commodity: "GBP",
				Price:     &AmountPrice{Total: true, Amount: usd(1200, 2)},
			},
			expected: usd(-1200, 2),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := test.amount.Cost()
			assert.Equal(t, test.expected.Commodity, got.Commodity)
			assert.True(t, got.Quantity.Equal(test.expected.Quantity.Decimal),
				"got %s, want %s", got.Quantity, test.expected.Quantity)
		})
	}
}

func TestAmountString(t *testing.T) {
	tests := []struct {
		name     string
		amount   Amount
		expected string
	}{
		{
			name:     "SymbolCommodityLeft",
			amount:   Amount{Quantity: NewQuantity(-125, 2), Commodity: "$"},
			expected: "$-1.25",
		},
		{
			name:     "WordCommodityRight",
			amount:   Amount{Quantity: NewQuantity(-125, 2), Commodity: "USD"},
			expected: "-1.25 USD",
		},
		{
			name:     "Unitless",
			amount:   Amount{Quantity: NewQuantity(42, 0)},
			expected: "42",
		},
		{
			name: "UnitPrice",
			amount: Amount{
				Quantity:  NewQuantity(10, 0),
				Commodity: "GBP",
				Price:     &AmountPrice{Amount: Amount{Quantity: NewQuantity(120, 2), Commodity: "USD"}},
			},
			expected: "10 GBP @ 1.20 USD",
		},
		{
			name: "TotalPrice",
			amount: Amount{
				Quantity:  NewQuantity(10, 0),
				Commodity: "GBP",
				Price:     &AmountPrice{Total: true, Amount: Amount{Quantity: NewQuantity(12, 0), Commodity: "$"}},
			},
			expected: "10 GBP @@ $12",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.amount.String())
		})
	}
}
