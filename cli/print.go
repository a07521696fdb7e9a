package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/journalhq/journal/query"
)

type PrintCmd struct {
	File  JournalFile `help:"Journal input filename." arg:""`
	Query []string    `help:"Filter query terms, e.g. acct:expenses not:payee:rent." arg:"" optional:""`
	Tree  bool        `help:"Dump the parsed tree instead of journal text."`
}

func (cmd *PrintCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx := context.Background()

	journal, err := cmd.File.Load(runCtx)
	if err != nil {
		renderLoadError(ctx, err)
		return NewCommandError(1)
	}

	if cmd.Tree {
		repr.Println(journal)
		return nil
	}

	var filter *query.Query
	if len(cmd.Query) > 0 {
		filter, err = query.Parse(strings.Join(cmd.Query, " "))
		if err != nil {
			printError(ctx.Stderr, err.Error())
			return NewCommandError(1)
		}
	}

	first := true
	for txn := range journal.Transactions() {
		if filter != nil {
			filtered, ok := filter.Filter(txn)
			if !ok {
				continue
			}
			txn = filtered
		}
		if !first {
			_, _ = fmt.Fprintln(ctx.Stdout)
		}
		first = false
		_, _ = fmt.Fprintln(ctx.Stdout, txn.String())
	}

	return nil
}
