// Package cmd implements the CLI application to manage an emissions ledger.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sustena/footprint"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")

	c.Register(&addCmd{}, "entries")
	c.Register(&deleteCmd{}, "entries")
	c.Register(&entriesCmd{}, "entries")

	c.Register(&importCmd{}, "bulk")
	c.Register(&exportCmd{}, "bulk")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&trendCmd{}, "reports")
	c.Register(&queryCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// CommandNames lists all registered subcommand names, for shell completion.
func CommandNames() []string {
	return []string{
		"add", "delete", "entries",
		"import", "export",
		"summary", "trend", "query",
		"topic", "help", "flags",
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data", "", `Path to the data directory holding the emissions ledger (default $YCF_DATA_DIR or "data")`)
var plain = flag.Bool("plain", false, "Print reports as raw markdown instead of rendering them")

func defaultDataDir() string {
	if dir := os.Getenv("YCF_DATA_DIR"); dir != "" {
		return dir
	}
	return "data"
}

// Store returns the ledger store for the configured data directory. The
// environment fallback is resolved here, at use time, so a YCF_DATA_DIR
// loaded from a .env file after package initialization still takes effect.
func Store() *footprint.Store {
	dir := *dataDir
	if dir == "" {
		dir = defaultDataDir()
	}
	return footprint.NewStore(dir)
}

// LoadLedger loads the ledger from the configured data directory. A missing
// or corrupted store still yields a usable empty ledger.
func LoadLedger() (*footprint.Ledger, error) {
	return Store().Load()
}

// SaveLedger persists the ledger after a mutation. On failure the in-memory
// state is still live: the caller should report and let the user retry the
// save by re-running the command.
func SaveLedger(l *footprint.Ledger) subcommands.ExitStatus {
	if err := Store().Save(l); err != nil {
		fmt.Fprintf(os.Stderr, "Error: entry is recorded in memory but could not be saved: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
