package ast

// Account declares an account name:
//
//	account assets:bank:checking
type Account struct {
	Pos  Position
	Name AccountName
}

var _ Directive = &Account{}

func (a *Account) Directive() string { return "account" }

// Commodity declares a commodity symbol:
//
//	commodity USD
type Commodity struct {
	Pos    Position
	Symbol string
}

var _ Directive = &Commodity{}

func (c *Commodity) Directive() string { return "commodity" }

// DecimalMark declares the preferred decimal mark for display:
//
//	decimal-mark .
type DecimalMark struct {
	Pos  Position
	Mark byte // '.' or ','
}

var _ Directive = &DecimalMark{}

func (d *DecimalMark) Directive() string { return "decimal-mark" }

// IncludeFormat names the file format of an include directive's target.
type IncludeFormat string

const (
	FormatUnspecified IncludeFormat = ""
	FormatJournal     IncludeFormat = "journal"
	FormatTimeclock   IncludeFormat = "timeclock"
	FormatTimedot     IncludeFormat = "timedot"
	FormatCSV         IncludeFormat = "csv"
	FormatSSV         IncludeFormat = "ssv"
	FormatTSV         IncludeFormat = "tsv"
	FormatRules       IncludeFormat = "rules"
)

// Include pulls another file into the journal. The path is a glob pattern
// resolved relative to the including file's directory:
//
//	include 2024/*.journal
//	include timedot:notes.timedot
type Include struct {
	Pos    Position
	Format IncludeFormat
	Path   string
}

var _ Directive = &Include{}

func (i *Include) Directive() string { return "include" }

// IsJournal reports whether the include participates in recursive journal
// composition (journal format or unspecified).
func (i *Include) IsJournal() bool {
	return i.Format == FormatJournal || i.Format == FormatUnspecified
}

// Payee declares a payee name:
//
//	payee Acme Corp
type Payee struct {
	Pos  Position
	Name string
}

var _ Directive = &Payee{}

func (p *Payee) Directive() string { return "payee" }

// Price declares the market price of a commodity on a date:
//
//	P 2024-01-02 USD €0.91
type Price struct {
	Pos       Position
	Date      Date
	Commodity string
	Amount    Amount
}

var _ Directive = &Price{}

func (p *Price) Directive() string { return "price" }

// Tag declares a tag name:
//
//	tag trip
type Tag struct {
	Pos  Position
	Name string
}

var _ Directive = &Tag{}

func (t *Tag) Directive() string { return "tag" }

// Year sets the parser's current year for subsequent partial dates:
//
//	Y 2011
type Year struct {
	Pos  Position
	Year int
}

var _ Directive = &Year{}

func (y *Year) Directive() string { return "year" }

// AutoPosting is one posting template inside an auto-posting rule. With
// Multiplier set, the amount multiplies the matched posting's amount instead
// of being literal.
type AutoPosting struct {
	Posting    *Posting
	Multiplier bool
}

// AutoPostingRule injects extra postings into transactions matched by its
// query:
//
//	= expenses:food
//	    (budget:food)   *-1
//	    (budget:spent)  *1
type AutoPostingRule struct {
	Pos      Position
	Query    []*Term
	Postings []*AutoPosting
}

var _ Directive = &AutoPostingRule{}

func (r *AutoPostingRule) Directive() string { return "auto posting rule" }
