package cli

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines global flags available to all commands.
type Globals struct {
	Timings bool `help:"Show timing telemetry for operations."`
}

type Commands struct {
	Globals

	Check    CheckCmd    `cmd:"" help:"Parse a journal file and everything it includes, reporting syntax errors."`
	Print    PrintCmd    `cmd:"" help:"Print the transactions of a journal, optionally filtered by a query."`
	Includes IncludesCmd `cmd:"" help:"Show the include tree of a journal file."`
	Watch    WatchCmd    `cmd:"" help:"Watch a journal tree and re-check incrementally on changes."`
	Init     InitCmd     `cmd:"" help:"Create a starter journal file."`
}
