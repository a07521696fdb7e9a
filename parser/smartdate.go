package parser

import (
	"strings"
	"time"

	"github.com/journalhq/journal/ast"
)

// Smart dates are shorthand and relative date expressions resolved against
// the parser's notion of "today". The alternatives are tried in a fixed
// priority order; the first full match wins:
//
//	N periods ahead
//	N periods ago
//	in N periods
//	last|this|next period
//	yesterday|today|tomorrow
//	MM/DD                 current year
//	YYYY/MM/DD
//	YYYY/MM               start of month
//	YYYYMMDD              8 digits
//	YYYYMM                6 digits
//	YYYY                  January 1
//	DD                    1-2 digits, current month
//	month name            full or 3-letter, 1st of month, current year

// smartPeriod is the unit word in relative expressions, optionally plural.
type smartPeriod uint8

const (
	periodDay smartPeriod = iota
	periodWeek
	periodMonth
	periodQuarter
	periodYear
)

// parseSmartDate parses one smart date expression at the cursor.
func (p *Parser) parseSmartDate() (ast.Date, *ParseError) {
	m := p.mark()

	type alternative func() (ast.Date, bool)
	for _, alt := range []alternative{
		p.smartPeriodsAhead,
		p.smartPeriodsAgo,
		p.smartInPeriods,
		p.smartLastThisNext,
		p.smartDayWords,
		p.smartMonthDay,
		p.smartYearMonthDay,
		p.smartYearMonth,
		p.smartDigitRun,
		p.smartBareDay,
		p.smartMonthName,
	} {
		if d, ok := alt(); ok {
			return d, nil
		}
		p.reset(m)
	}
	return ast.Date{}, p.errorAt(m, "expected a date")
}

// smartPeriodsAhead matches "N periods ahead".
func (p *Parser) smartPeriodsAhead() (ast.Date, bool) {
	n, unit, ok := p.scanCountAndPeriod()
	if !ok || p.skipInlineSpace() == 0 || !p.matchWord("ahead") {
		return ast.Date{}, false
	}
	return shiftDate(p.today, unit, n), true
}

// smartPeriodsAgo matches "N periods ago".
func (p *Parser) smartPeriodsAgo() (ast.Date, bool) {
	n, unit, ok := p.scanCountAndPeriod()
	if !ok || p.skipInlineSpace() == 0 || !p.matchWord("ago") {
		return ast.Date{}, false
	}
	return shiftDate(p.today, unit, -n), true
}

// smartInPeriods matches "in N periods".
func (p *Parser) smartInPeriods() (ast.Date, bool) {
	if !p.matchWord("in") || p.skipInlineSpace() == 0 {
		return ast.Date{}, false
	}
	n, unit, ok := p.scanCountAndPeriod()
	if !ok {
		return ast.Date{}, false
	}
	return shiftDate(p.today, unit, n), true
}

// smartLastThisNext matches "last|this|next period".
func (p *Parser) smartLastThisNext() (ast.Date, bool) {
	var n int
	switch {
	case p.matchWord("last"):
		n = -1
	case p.matchWord("this"):
		n = 0
	case p.matchWord("next"):
		n = 1
	default:
		return ast.Date{}, false
	}
	if p.skipInlineSpace() == 0 {
		return ast.Date{}, false
	}
	unit, ok := p.scanPeriodWord()
	if !ok {
		return ast.Date{}, false
	}
	return shiftDate(startOfPeriod(p.today, unit), unit, n), true
}

// smartDayWords matches yesterday, today and tomorrow.
func (p *Parser) smartDayWords() (ast.Date, bool) {
	switch {
	case p.matchWord("yesterday"):
		return p.today.AddDays(-1), true
	case p.matchWord("today"):
		return p.today, true
	case p.matchWord("tomorrow"):
		return p.today.AddDays(1), true
	}
	return ast.Date{}, false
}

// smartMonthDay matches MM/DD in the current year.
func (p *Parser) smartMonthDay() (ast.Date, bool) {
	month, ok := p.scanDatePart(2)
	if !ok || !p.matchByte('/') {
		return ast.Date{}, false
	}
	day, ok := p.scanDatePart(2)
	if !ok || p.peek() == '/' {
		return ast.Date{}, false
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return ast.Date{}, false
	}
	return ast.Date{Year: p.today.Year, Month: time.Month(month), Day: day}, true
}

// smartYearMonthDay matches YYYY/MM/DD.
func (p *Parser) smartYearMonthDay() (ast.Date, bool) {
	year, ok := p.scanYear()
	if !ok || !p.matchByte('/') {
		return ast.Date{}, false
	}
	month, ok := p.scanDatePart(2)
	if !ok || !p.matchByte('/') {
		return ast.Date{}, false
	}
	day, ok := p.scanDatePart(2)
	if !ok || month < 1 || month > 12 || day < 1 || day > 31 {
		return ast.Date{}, false
	}
	return ast.Date{Year: year, Month: time.Month(month), Day: day}, true
}

// smartYearMonth matches YYYY/MM, the start of that month.
func (p *Parser) smartYearMonth() (ast.Date, bool) {
	year, ok := p.scanYear()
	if !ok || !p.matchByte('/') {
		return ast.Date{}, false
	}
	month, ok := p.scanDatePart(2)
	if !ok || p.peek() == '/' || month < 1 || month > 12 {
		return ast.Date{}, false
	}
	return ast.Date{Year: year, Month: time.Month(month), Day: 1}, true
}

// smartDigitRun matches the separator-free forms YYYYMMDD, YYYYMM and YYYY.
func (p *Parser) smartDigitRun() (ast.Date, bool) {
	digits := p.scanDigits()
	switch len(digits) {
	case 8:
		month, day := atoi(digits[4:6]), atoi(digits[6:8])
		if month < 1 || month > 12 || day < 1 || day > 31 {
			return ast.Date{}, false
		}
		return ast.Date{Year: atoi(digits[:4]), Month: time.Month(month), Day: day}, true
	case 6:
		month := atoi(digits[4:6])
		if month < 1 || month > 12 {
			return ast.Date{}, false
		}
		return ast.Date{Year: atoi(digits[:4]), Month: time.Month(month), Day: 1}, true
	case 4:
		return ast.Date{Year: atoi(digits), Month: time.January, Day: 1}, true
	}
	return ast.Date{}, false
}

// smartBareDay matches a 1-2 digit day in the current month.
func (p *Parser) smartBareDay() (ast.Date, bool) {
	digits := p.scanDigits()
	if len(digits) < 1 || len(digits) > 2 {
		return ast.Date{}, false
	}
	day := atoi(digits)
	if day < 1 || day > 31 {
		return ast.Date{}, false
	}
	return ast.Date{Year: p.today.Year, Month: p.today.Month, Day: day}, true
}

// smartMonthName matches a full or 3-letter month name, the 1st of that
// month in the current year.
func (p *Parser) smartMonthName() (ast.Date, bool) {
	word := strings.ToLower(p.scanWord())
	month, ok := monthNames[word]
	if !ok {
		return ast.Date{}, false
	}
	return ast.Date{Year: p.today.Year, Month: month, Day: 1}, true
}

var monthNames = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may": time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

// scanDatePart matches a run of at most max digits.
func (p *Parser) scanDatePart(max int) (int, bool) {
	digits := p.scanDigits()
	if digits == "" || len(digits) > max {
		return 0, false
	}
	return atoi(digits), true
}

// scanYear matches exactly four digits.
func (p *Parser) scanYear() (int, bool) {
	digits := p.scanDigits()
	if len(digits) != 4 {
		return 0, false
	}
	return atoi(digits), true
}

// scanCountAndPeriod matches "N <period>" with whitespace between.
func (p *Parser) scanCountAndPeriod() (int, smartPeriod, bool) {
	digits := p.scanDigits()
	if digits == "" || p.skipInlineSpace() == 0 {
		return 0, 0, false
	}
	unit, ok := p.scanPeriodWord()
	if !ok {
		return 0, 0, false
	}
	return atoi(digits), unit, true
}

// scanPeriodWord matches a period unit word, optionally pluralized. Plural
// forms come first so word lists stay longest-match ordered, though
// matchWord's boundary check makes either order safe.
func (p *Parser) scanPeriodWord() (smartPeriod, bool) {
	for _, w := range periodWords {
		if p.matchWord(w.word) {
			return w.unit, true
		}
	}
	return 0, false
}

var periodWords = []struct {
	word string
	unit smartPeriod
}{
	{"days", periodDay}, {"day", periodDay},
	{"weeks", periodWeek}, {"week", periodWeek},
	{"months", periodMonth}, {"month", periodMonth},
	{"quarters", periodQuarter}, {"quarter", periodQuarter},
	{"years", periodYear}, {"year", periodYear},
}

// shiftDate moves a date by n units.
func shiftDate(d ast.Date, unit smartPeriod, n int) ast.Date {
	switch unit {
	case periodDay:
		return d.AddDays(n)
	case periodWeek:
		return d.AddDays(7 * n)
	case periodMonth:
		return d.AddMonths(n)
	case periodQuarter:
		return d.AddMonths(3 * n)
	default:
		return d.AddYears(n)
	}
}

// startOfPeriod truncates a date to the start of the containing unit.
func startOfPeriod(d ast.Date, unit smartPeriod) ast.Date {
	switch unit {
	case periodDay:
		return d
	case periodWeek:
		return d.StartOfWeek()
	case periodMonth:
		return d.StartOfMonth()
	case periodQuarter:
		return d.StartOfQuarter()
	default:
		return d.StartOfYear()
	}
}
