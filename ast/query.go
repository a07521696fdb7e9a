package ast

// Term is one signed query condition. Not negates the condition.
type Term struct {
	Not       bool
	Condition Condition
}

// ConditionKind discriminates the condition variants.
type ConditionKind uint8

const (
	CondAccount ConditionKind = iota
	CondCode
	CondCurrency
	CondDescription
	CondPayee
	CondAmount
	CondDate
	CondStatus
)

func (k ConditionKind) String() string {
	switch k {
	case CondAccount:
		return "acct"
	case CondCode:
		return "code"
	case CondCurrency:
		return "cur"
	case CondDescription:
		return "desc"
	case CondPayee:
		return "payee"
	case CondAmount:
		return "amt"
	case CondDate:
		return "date"
	case CondStatus:
		return "status"
	default:
		return "unknown"
	}
}

// CmpOp is the comparison operator of an amount condition.
type CmpOp uint8

const (
	CmpEq CmpOp = iota
	CmpLt
	CmpLtEq
	CmpGt
	CmpGtEq
)

func (op CmpOp) String() string {
	switch op {
	case CmpLt:
		return "<"
	case CmpLtEq:
		return "<="
	case CmpGt:
		return ">"
	case CmpGtEq:
		return ">="
	default:
		return "="
	}
}

// Condition is a tagged union over the typed query conditions. Which fields
// are meaningful depends on Kind:
//
//   - CondAccount, CondCode, CondCurrency, CondDescription, CondPayee: Value
//     holds the pattern text.
//   - CondAmount: Op and Quantity hold the comparison.
//   - CondDate: Period holds the date range.
//   - CondStatus: Status holds the wanted status; nil means "no status".
type Condition struct {
	Kind     ConditionKind
	Value    string
	Op       CmpOp
	Quantity Quantity
	Period   Period
	Status   *Status
}
