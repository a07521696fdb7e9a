package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
)

type InitCmd struct {
	File  string `help:"Journal filename to create." arg:"" default:"main.journal"`
	Force bool   `help:"Overwrite an existing file without confirmation." short:"f"`
}

func (cmd *InitCmd) Run(ctx *kong.Context, globals *Globals) error {
	path, err := filepath.Abs(cmd.File)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	if _, err := os.Stat(path); err == nil && !cmd.Force {
		confirmed, err := promptYesNo(ctx, fmt.Sprintf("File %q already exists. Overwrite it?", path))
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !confirmed {
			return fmt.Errorf("file already exists: %s", path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create parent directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(starterJournal()), 0600); err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Created journal file: %s", pathStyle.Render(path)))
	return nil
}

func starterJournal() string {
	today := time.Now().Format("2006-01-02")
	return fmt.Sprintf(`; Journal created by journal init.
; Declarations are optional but make typos in account names visible.

account assets:bank:checking
account income:salary
account expenses:food

%[1]s opening balances
    assets:bank:checking      $0

; %[1]s * grocery store
;     expenses:food           $42.50
;     assets:bank:checking
`, today)
}
