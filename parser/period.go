package parser

import (
	"strings"
	"time"

	"github.com/journalhq/journal/ast"
)

// Period grammar. A period expression is either an interval phrase
// ("monthly", "every 2 weeks", "every tue") optionally followed by
// "in <range>", or a bare range phrase. Range phrases are tried in order:
//
//	qN              quarter of the current year
//	YYYYqN
//	from <date> [to|..|-] <date>
//	to <date>
//	from|since <date>
//	YYYY/MM/DD      single day
//	YYYY/MM         one month
//	YYYY            one year

// parsePeriod parses a period expression at the cursor.
func (p *Parser) parsePeriod() (ast.Period, *ParseError) {
	m := p.mark()

	if interval, ok := p.parseInterval(); ok {
		period := ast.Period{Interval: interval}
		after := p.mark()
		p.skipInlineSpace()
		if p.matchWord("in") && p.skipInlineSpace() > 0 {
			begin, end, ok := p.parseDateRange()
			if !ok {
				return ast.Period{}, p.errorAt(p.mark(), "expected a date range")
			}
			period.Begin, period.End = begin, end
		} else {
			p.reset(after)
		}
		return period, nil
	}
	p.reset(m)

	if begin, end, ok := p.parseDateRange(); ok {
		return ast.Period{Begin: begin, End: end}, nil
	}
	p.reset(m)
	return ast.Period{}, p.errorAt(m, "expected a period expression")
}

// parseInterval matches an interval phrase, or nothing.
func (p *Parser) parseInterval() (*ast.Interval, bool) {
	switch {
	case p.matchWord("daily"):
		return &ast.Interval{Unit: ast.NthDay, N: 1}, true
	case p.matchWord("weekly"):
		return &ast.Interval{Unit: ast.NthWeek, N: 1}, true
	case p.matchWord("biweekly"), p.matchWord("fortnightly"):
		return &ast.Interval{Unit: ast.NthWeek, N: 2}, true
	case p.matchWord("monthly"):
		return &ast.Interval{Unit: ast.NthMonth, N: 1}, true
	case p.matchWord("bimonthly"):
		return &ast.Interval{Unit: ast.NthMonth, N: 2}, true
	case p.matchWord("quarterly"), p.matchWord("yearly"):
		return &ast.Interval{Unit: ast.NthQuarter, N: 1}, true
	case p.matchWord("every"):
		if p.skipInlineSpace() == 0 {
			return nil, false
		}
		return p.parseEveryClause()
	}
	return nil, false
}

// parseEveryClause matches the tail of "every N <unit>s" or
// "every <weekday>".
func (p *Parser) parseEveryClause() (*ast.Interval, bool) {
	m := p.mark()

	if digits := p.scanDigits(); digits != "" {
		if p.skipInlineSpace() == 0 {
			p.reset(m)
			return nil, false
		}
		unit, ok := p.scanPeriodWord()
		if !ok {
			p.reset(m)
			return nil, false
		}
		return &ast.Interval{Unit: intervalUnit(unit), N: atoi(digits)}, true
	}

	word := p.scanWord()
	if weekday, ok := weekdayNames[strings.ToLower(word)]; ok {
		return &ast.Interval{Unit: ast.EveryWeekday, Weekday: weekday}, true
	}
	p.reset(m)
	return nil, false
}

// parseDateRange matches a range phrase and returns its half-open bounds.
func (p *Parser) parseDateRange() (begin, end *ast.Date, ok bool) {
	m := p.mark()

	type alternative func() (*ast.Date, *ast.Date, bool)
	for _, alt := range []alternative{
		p.rangeQuarter,
		p.rangeYearQuarter,
		p.rangeFromTo,
		p.rangeTo,
		p.rangeFrom,
		p.rangeSingleDay,
		p.rangeSingleMonth,
		p.rangeSingleYear,
	} {
		if begin, end, ok := alt(); ok {
			return begin, end, true
		}
		p.reset(m)
	}
	return nil, nil, false
}

// rangeQuarter matches qN, a quarter of the current year.
func (p *Parser) rangeQuarter() (*ast.Date, *ast.Date, bool) {
	if !p.matchByte('q') && !p.matchByte('Q') {
		return nil, nil, false
	}
	return p.quarterBounds(p.today.Year)
}

// rangeYearQuarter matches YYYYqN.
func (p *Parser) rangeYearQuarter() (*ast.Date, *ast.Date, bool) {
	year, ok := p.scanYear()
	if !ok {
		return nil, nil, false
	}
	if !p.matchByte('q') && !p.matchByte('Q') {
		return nil, nil, false
	}
	return p.quarterBounds(year)
}

func (p *Parser) quarterBounds(year int) (*ast.Date, *ast.Date, bool) {
	digits := p.scanDigits()
	if len(digits) != 1 {
		return nil, nil, false
	}
	q := atoi(digits)
	if q < 1 || q > 4 {
		return nil, nil, false
	}
	begin := ast.Date{Year: year, Month: time.Month((q-1)*3 + 1), Day: 1}
	end := begin.AddMonths(3)
	return &begin, &end, true
}

// rangeFromTo matches "from <date> [to|..|-] <date>".
func (p *Parser) rangeFromTo() (*ast.Date, *ast.Date, bool) {
	if !p.matchWord("from") || p.skipInlineSpace() == 0 {
		return nil, nil, false
	}
	begin, perr := p.parseSmartDate()
	if perr != nil {
		return nil, nil, false
	}
	p.skipInlineSpace()
	switch {
	case p.matchWord("to"):
		p.skipInlineSpace()
	case p.peek() == '.' && p.peekAt(1) == '.':
		p.advance()
		p.advance()
		p.skipInlineSpace()
	case p.matchByte('-'):
		p.skipInlineSpace()
	default:
		return nil, nil, false
	}
	end, perr := p.parseSmartDate()
	if perr != nil {
		return nil, nil, false
	}
	return &begin, &end, true
}

// rangeTo matches "to <date>".
func (p *Parser) rangeTo() (*ast.Date, *ast.Date, bool) {
	if !p.matchWord("to") || p.skipInlineSpace() == 0 {
		return nil, nil, false
	}
	end, perr := p.parseSmartDate()
	if perr != nil {
		return nil, nil, false
	}
	return nil, &end, true
}

// rangeFrom matches "from <date>" or "since <date>".
func (p *Parser) rangeFrom() (*ast.Date, *ast.Date, bool) {
	if !p.matchWord("from") && !p.matchWord("since") {
		return nil, nil, false
	}
	if p.skipInlineSpace() == 0 {
		return nil, nil, false
	}
	begin, perr := p.parseSmartDate()
	if perr != nil {
		return nil, nil, false
	}
	return &begin, nil, true
}

// rangeSingleDay matches YYYY/MM/DD, the half-open single day.
func (p *Parser) rangeSingleDay() (*ast.Date, *ast.Date, bool) {
	begin, ok := p.smartYearMonthDay()
	if !ok {
		return nil, nil, false
	}
	end := begin.AddDays(1)
	return &begin, &end, true
}

// rangeSingleMonth matches YYYY/MM, the whole month.
func (p *Parser) rangeSingleMonth() (*ast.Date, *ast.Date, bool) {
	begin, ok := p.smartYearMonth()
	if !ok {
		return nil, nil, false
	}
	end := begin.AddMonths(1)
	return &begin, &end, true
}

// rangeSingleYear matches YYYY, the whole year.
func (p *Parser) rangeSingleYear() (*ast.Date, *ast.Date, bool) {
	year, ok := p.scanYear()
	if !ok {
		return nil, nil, false
	}
	begin := ast.Date{Year: year, Month: time.January, Day: 1}
	end := begin.AddYears(1)
	return &begin, &end, true
}

var weekdayNames = map[string]time.Weekday{
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
	"sunday": time.Sunday, "sun": time.Sunday,
}

func intervalUnit(unit smartPeriod) ast.IntervalUnit {
	switch unit {
	case periodDay:
		return ast.NthDay
	case periodWeek:
		return ast.NthWeek
	case periodMonth:
		return ast.NthMonth
	case periodQuarter:
		return ast.NthQuarter
	default:
		return ast.NthYear
	}
}
