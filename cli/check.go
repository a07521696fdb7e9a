package cli

import (
	"context"
	stdErrors "errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/journalhq/journal/loader"
	"github.com/journalhq/journal/output"
	"github.com/journalhq/journal/telemetry"
)

type CheckCmd struct {
	File JournalFile `help:"Journal input filename." arg:""`
}

func (cmd *CheckCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx := context.Background()

	var collector telemetry.Collector
	if globals.Timings {
		collector = telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)

		timer := collector.Start(fmt.Sprintf("check %s", filepath.Base(cmd.File.Filename)))
		defer func() {
			timer.End()
			_, _ = fmt.Fprintln(ctx.Stderr)
			collector.Report(ctx.Stderr, output.NewStyles(ctx.Stderr))
		}()
	}

	journal, err := cmd.File.Load(runCtx)
	if err != nil {
		renderLoadError(ctx, err)
		return NewCommandError(1)
	}

	transactions := 0
	for range journal.Transactions() {
		transactions++
	}
	printSuccess(ctx.Stdout, fmt.Sprintf("Parsed %d directives in %d file(s), %d transaction(s)",
		journal.DirectiveCount(), len(journal.Paths()), transactions))

	return nil
}

// renderLoadError prints a load failure with source context from the file
// that actually failed, which may be deep in the include tree.
func renderLoadError(ctx *kong.Context, err error) {
	var source []byte
	var loadErr *loader.Error
	if stdErrors.As(err, &loadErr) {
		source, _ = os.ReadFile(loadErr.Path)
	}

	renderer := NewErrorRenderer(source)
	_, _ = fmt.Fprintln(ctx.Stderr, renderer.Render(err))
	_, _ = fmt.Fprintln(ctx.Stderr)
	printError(ctx.Stderr, "parse error")
}
