package parser

import "testing"

func FuzzParser(f *testing.F) {
	seeds := []string{
		// Directives.
		"account assets:bank:checking",
		"commodity USD",
		"decimal-mark ,",
		"include 2024/*.journal",
		"include timedot:notes.timedot",
		"payee Acme Corp",
		"P 2024-01-02 USD €0.91",
		"tag trip",
		"Y 2011",

		// Transactions.
		"2008/01/01 * (123) salary | january\n    assets:bank:checking  $1\n    income:salary",
		"2024-01-05 ! groceries\n    expenses:food  35,50 EUR @@ $38.64\n    liabilities:credit card",
		"2024-03-01 reconcile\n    assets:cash  $-20 = $80",
		"~ monthly  rent\n    expenses:rent  $1,200\n    assets:bank:checking",
		"= expenses:food\n    (budget:food)  *-1\n    (budget:spent)  *1",

		// Comments and whitespace.
		"",
		"  \n\n  \n",
		"; just a comment\n",
		"comment\nanything\nend comment",

		// Malformed lines the parser must survive.
		"account",
		"2024-13-01 bad\n    assets  $1",
		"P 2024-01-02",
		"1.234,567.89 USD",
	}

	for _, seed := range seeds {
		f.Add([]byte(seed))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		// The parser must never panic; syntax errors come back as an
		// ErrorList.
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("Parse panicked on input %q: %v", data, r)
			}
		}()
		_, _ = Parse(data)
	})
}

func FuzzParseQuery(f *testing.F) {
	seeds := []string{
		"",
		"food",
		"acct:expenses:food cur:USD",
		"not:desc:salary",
		"'credit card'",
		"status:*",
		"status:",
		"amt:>=1.50",
		"amt:<=-5",
		"date:2024",
		"date:'from 2024/01/01 to 2024/06/30'",
		"cur:",
		"amt:>x",
	}

	for _, seed := range seeds {
		f.Add([]byte(seed))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("ParseQuery panicked on input %q: %v", data, r)
			}
		}()
		_, _ = ParseQuery(data)
	})
}
