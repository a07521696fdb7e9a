// Large journal file generator.
//
// Generates a large journal file for performance testing and profiling. It
// creates realistic transactions with statuses, codes, prices and virtual
// postings to stress the parser.
//
// Usage:
//
//	go run main.go > large.journal
//	go run main.go 20000000 > large.journal  # Target size in bytes
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"
)

const defaultTargetSize = 10 * 1024 * 1024 // 10MB

var (
	accounts = []string{
		"assets:bank:checking",
		"assets:bank:savings",
		"assets:brokerage:cash",
		"assets:crypto:btc",
		"liabilities:credit card:visa",
		"income:salary",
		"income:dividends",
		"expenses:food:groceries",
		"expenses:food:restaurants",
		"expenses:rent",
		"expenses:utilities",
		"expenses:travel",
	}

	payees = []string{
		"grocery store",
		"corner cafe",
		"acme corp",
		"city utilities",
		"landlord",
		"airline",
	}

	commodities = []string{"$", "USD", "EUR"}
)

func main() {
	targetSize := defaultTargetSize
	if len(os.Args) > 1 {
		if n, err := strconv.Atoi(os.Args[1]); err == nil {
			targetSize = n
		}
	}

	rng := rand.New(rand.NewSource(42))
	date := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

	written := 0
	write := func(format string, args ...interface{}) {
		n, _ := fmt.Printf(format, args...)
		written += n
	}

	write("; generated journal for performance testing\n\n")
	for _, account := range accounts {
		write("account %s\n", account)
	}
	write("\n")

	for written < targetSize {
		date = date.Add(time.Duration(rng.Intn(48)) * time.Hour)

		status := ""
		switch rng.Intn(3) {
		case 0:
			status = "* "
		case 1:
			status = "! "
		}
		code := ""
		if rng.Intn(4) == 0 {
			code = fmt.Sprintf("(%d) ", rng.Intn(10000))
		}

		payee := payees[rng.Intn(len(payees))]
		write("%s %s%s%s\n", date.Format("2006-01-02"), status, code, payee)

		debit := accounts[rng.Intn(len(accounts))]
		credit := accounts[rng.Intn(len(accounts))]
		amount := float64(rng.Intn(100000)) / 100
		commodity := commodities[rng.Intn(len(commodities))]

		if commodity == "$" {
			write("    %s    $%.2f\n", debit, amount)
		} else {
			write("    %s    %.2f %s\n", debit, amount, commodity)
		}
		write("    %s\n\n", credit)
	}
}
