package parser

import "github.com/journalhq/journal/ast"

// Amount grammar. An amount combines a quantity, an optional commodity and
// an optional leading sign in six token orders, tried in this exact order:
//
//	sign quantity commodity   -1 USD
//	quantity sign commodity    1- USD
//	sign commodity quantity   -$1
//	commodity sign quantity   $-1
//	quantity commodity         1 USD
//	commodity quantity        $1
//
// plus a bare quantity. The first order that matches the full amount region
// wins; an order that leaves unconsumed amount text is rejected and the next
// is tried.

// amountOrder enumerates the token orders.
type amountOrder uint8

const (
	orderSignQtyCom amountOrder = iota
	orderQtySignCom
	orderSignComQty
	orderComSignQty
	orderQtyCom
	orderComQty
	orderQtyOnly
)

var amountOrders = []amountOrder{
	orderSignQtyCom,
	orderQtySignCom,
	orderSignComQty,
	orderComSignQty,
	orderQtyCom,
	orderComQty,
	orderQtyOnly,
}

// parseAmount parses an amount without a price suffix.
func (p *Parser) parseAmount() (*ast.Amount, *ParseError) {
	m := p.mark()

	var firstErr *ParseError
	for _, order := range amountOrders {
		amt, perr := p.tryAmountOrder(order)
		if perr == nil && p.atAmountBoundary() {
			return amt, nil
		}
		if perr != nil && firstErr == nil {
			firstErr = perr
		}
		p.reset(m)
	}

	if firstErr != nil {
		return nil, firstErr
	}
	return nil, p.errorAt(m, "expected an amount")
}

// parseAmountWithPrice parses an amount followed by an optional "@" (unit)
// or "@@" (total) price. Price amounts never carry a further price.
func (p *Parser) parseAmountWithPrice() (*ast.Amount, *ParseError) {
	amt, perr := p.parseAmount()
	if perr != nil {
		return nil, perr
	}

	m := p.mark()
	p.skipInlineSpace()
	if !p.matchByte('@') {
		p.reset(m)
		return amt, nil
	}
	total := p.matchByte('@')

	p.skipInlineSpace()
	price, perr := p.parseAmount()
	if perr != nil {
		return nil, perr
	}

	amt.Price = &ast.AmountPrice{Total: total, Amount: *price}
	return amt, nil
}

// tryAmountOrder attempts one token order at the cursor. Inline whitespace
// is allowed between tokens.
func (p *Parser) tryAmountOrder(order amountOrder) (*ast.Amount, *ParseError) {
	switch order {
	case orderSignQtyCom:
		neg, ok := p.parseSign()
		if !ok {
			return nil, p.errorAt(p.mark(), "expected a sign")
		}
		qty, perr := p.parseQuantity()
		if perr != nil {
			return nil, perr
		}
		p.skipInlineSpace()
		com, ok := p.parseCommodity()
		if !ok {
			return nil, p.errorAt(p.mark(), "expected a commodity")
		}
		return newAmount(qty, neg, com), nil

	case orderQtySignCom:
		qty, perr := p.parseQuantity()
		if perr != nil {
			return nil, perr
		}
		p.skipInlineSpace()
		neg, ok := p.parseSign()
		if !ok {
			return nil, p.errorAt(p.mark(), "expected a sign")
		}
		p.skipInlineSpace()
		com, ok := p.parseCommodity()
		if !ok {
			return nil, p.errorAt(p.mark(), "expected a commodity")
		}
		return newAmount(qty, neg, com), nil

	case orderSignComQty:
		neg, ok := p.parseSign()
		if !ok {
			return nil, p.errorAt(p.mark(), "expected a sign")
		}
		p.skipInlineSpace()
		com, ok := p.parseCommodity()
		if !ok {
			return nil, p.errorAt(p.mark(), "expected a commodity")
		}
		p.skipInlineSpace()
		qty, perr := p.parseQuantity()
		if perr != nil {
			return nil, perr
		}
		return newAmount(qty, neg, com), nil

	case orderComSignQty:
		com, ok := p.parseCommodity()
		if !ok {
			return nil, p.errorAt(p.mark(), "expected a commodity")
		}
		p.skipInlineSpace()
		neg, ok := p.parseSign()
		if !ok {
			return nil, p.errorAt(p.mark(), "expected a sign")
		}
		p.skipInlineSpace()
		qty, perr := p.parseQuantity()
		if perr != nil {
			return nil, perr
		}
		return newAmount(qty, neg, com), nil

	case orderQtyCom:
		qty, perr := p.parseQuantity()
		if perr != nil {
			return nil, perr
		}
		p.skipInlineSpace()
		com, ok := p.parseCommodity()
		if !ok {
			return nil, p.errorAt(p.mark(), "expected a commodity")
		}
		return newAmount(qty, false, com), nil

	case orderComQty:
		com, ok := p.parseCommodity()
		if !ok {
			return nil, p.errorAt(p.mark(), "expected a commodity")
		}
		p.skipInlineSpace()
		qty, perr := p.parseQuantity()
		if perr != nil {
			return nil, perr
		}
		return newAmount(qty, false, com), nil

	default: // orderQtyOnly
		neg, _ := p.parseSign()
		qty, perr := p.parseQuantity()
		if perr != nil {
			return nil, perr
		}
		return newAmount(qty, neg, ""), nil
	}
}

// parseSign consumes a leading "-" or "+".
func (p *Parser) parseSign() (neg, ok bool) {
	switch p.peek() {
	case '-':
		p.advance()
		return true, true
	case '+':
		p.advance()
		return false, true
	default:
		return false, false
	}
}

// atAmountBoundary reports whether the cursor sits at the end of an amount
// region: end of line, a price marker, an assertion, a comment, a closing
// paren, or a hard separator.
func (p *Parser) atAmountBoundary() bool {
	m := p.mark()
	defer p.reset(m)
	if p.atHardSeparator() {
		return true
	}
	p.skipInlineSpace()
	switch {
	case p.atEOL():
		return true
	}
	switch p.peek() {
	case ';', '@', '=', ')':
		return true
	}
	return false
}

func newAmount(qty ast.Quantity, neg bool, commodity string) *ast.Amount {
	if neg {
		qty = qty.Neg()
	}
	return &ast.Amount{Quantity: qty, Commodity: commodity}
}
