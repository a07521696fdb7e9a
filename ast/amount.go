package ast

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Quantity is an exact decimal value: a signed integer mantissa plus a
// non-negative scale (the count of fractional digits). Ledger amounts never
// touch binary floating point.
type Quantity struct {
	decimal.Decimal
}

// NewQuantity builds a quantity from a mantissa and scale,
// e.g. NewQuantity(12345, 2) == 123.45.
func NewQuantity(mantissa int64, scale int32) Quantity {
	return Quantity{decimal.New(mantissa, -scale)}
}

// Scale returns the number of fractional digits.
func (q Quantity) Scale() int32 {
	if q.Exponent() > 0 {
		return 0
	}
	return -q.Exponent()
}

// Neg returns the negated quantity.
func (q Quantity) Neg() Quantity {
	return Quantity{q.Decimal.Neg()}
}

// Mul returns the product of two quantities.
func (q Quantity) Mul(o Quantity) Quantity {
	return Quantity{q.Decimal.Mul(o.Decimal)}
}

// Amount is a quantity with an optional commodity and an optional price.
// The commodity is empty for unitless amounts. A price amount never carries a
// further price of its own.
type Amount struct {
	Quantity  Quantity
	Commodity string
	Price     *AmountPrice
}

// AmountPrice is a price attached to an amount: either a unit price
// ("@ 1.20 USD", per unit) or a total price ("@@ 12.00 USD", for the lot).
type AmountPrice struct {
	Total  bool
	Amount Amount
}

// Cost derives the cost-basis amount of a priced amount. For a total price it
// is the price amount with its sign matching the original quantity's sign.
// For a unit price it is price.quantity * quantity in the price's commodity.
// Amounts without a price cost themselves.
func (a Amount) Cost() Amount {
	if a.Price == nil {
		return a
	}
	price := a.Price.Amount
	if a.Price.Total {
		q := price.Quantity
		if a.Quantity.IsNegative() != q.IsNegative() {
			q = q.Neg()
		}
		return Amount{Quantity: q, Commodity: price.Commodity}
	}
	return Amount{
		Quantity:  price.Quantity.Mul(a.Quantity),
		Commodity: price.Commodity,
	}
}

// String renders the amount in commodity-left journal style, e.g. "$-1.25"
// for symbol commodities and "-1.25 USD" for word commodities.
func (a Amount) String() string {
	var b strings.Builder
	if a.Commodity != "" && !isWordCommodity(a.Commodity) {
		b.WriteString(a.Commodity)
		b.WriteString(a.Quantity.String())
	} else {
		b.WriteString(a.Quantity.String())
		if a.Commodity != "" {
			b.WriteByte(' ')
			b.WriteString(a.Commodity)
		}
	}
	if a.Price != nil {
		if a.Price.Total {
			b.WriteString(" @@ ")
		} else {
			b.WriteString(" @ ")
		}
		b.WriteString(a.Price.Amount.String())
	}
	return b.String()
}

// isWordCommodity reports whether the commodity is spelled with letters
// (USD, hours) rather than a currency symbol ($, €).
func isWordCommodity(c string) bool {
	for _, r := range c {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
