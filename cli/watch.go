package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fsnotify/fsnotify"

	"github.com/journalhq/journal/loader"
)

type WatchCmd struct {
	File JournalFile `help:"Journal input filename." arg:""`
}

// Run loads the journal tree once, then watches every file in it. When a
// file changes only that file's subtree is reloaded and merged back in;
// the rest of the tree is reused.
func (cmd *WatchCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	journal, err := cmd.File.Load(runCtx)
	if err != nil {
		renderLoadError(ctx, err)
		return NewCommandError(1)
	}
	reportStatus(ctx, journal)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	watched := make(map[string]bool)
	if err := syncWatches(watcher, watched, journal); err != nil {
		return err
	}
	printInfof(ctx.Stdout, "Watching %d file(s)", len(watched))

	for {
		select {
		case <-runCtx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !watched[event.Name] {
				continue
			}

			printInfof(ctx.Stdout, "Changed: %s", pathStyle.Render(event.Name))
			subtree, err := loader.Load(runCtx, event.Name)
			if err != nil {
				renderLoadError(ctx, err)
				continue
			}
			if !journal.Merge(subtree) {
				// The file left the tree since the last reload.
				continue
			}
			if err := syncWatches(watcher, watched, journal); err != nil {
				return err
			}
			reportStatus(ctx, journal)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printError(ctx.Stderr, err.Error())
		}
	}
}

// syncWatches makes the watcher's file set match the journal tree. Includes
// may appear or disappear between reloads.
func syncWatches(watcher *fsnotify.Watcher, watched map[string]bool, journal *loader.Journal) error {
	current := make(map[string]bool)
	for _, path := range journal.Paths() {
		current[path] = true
	}

	for path := range watched {
		if !current[path] {
			_ = watcher.Remove(path)
			delete(watched, path)
		}
	}
	for path := range current {
		if !watched[path] {
			if err := watcher.Add(path); err != nil {
				return fmt.Errorf("failed to watch %s: %w", path, err)
			}
			watched[path] = true
		}
	}
	return nil
}

func reportStatus(ctx *kong.Context, journal *loader.Journal) {
	transactions := 0
	for range journal.Transactions() {
		transactions++
	}
	printSuccess(ctx.Stdout, fmt.Sprintf("Parsed %d directives in %d file(s), %d transaction(s)",
		journal.DirectiveCount(), len(journal.Paths()), transactions))
}
