package cli

import (
	"context"
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/journalhq/journal/loader"
)

type IncludesCmd struct {
	File JournalFile `help:"Journal input filename." arg:""`
}

func (cmd *IncludesCmd) Run(ctx *kong.Context, globals *Globals) error {
	journal, err := cmd.File.Load(context.Background())
	if err != nil {
		renderLoadError(ctx, err)
		return NewCommandError(1)
	}

	printTree(ctx, journal, 0)
	return nil
}

func printTree(ctx *kong.Context, journal *loader.Journal, depth int) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	_, _ = fmt.Fprintf(ctx.Stdout, "%s%s (%d directives)\n",
		indent, pathStyle.Render(journal.Path), len(journal.Directives))
	for _, inc := range journal.Includes {
		printTree(ctx, inc, depth+1)
	}
}
