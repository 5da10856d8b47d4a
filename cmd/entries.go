package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sustena/footprint/renderer"
)

type entriesCmd struct {
	tail int
}

func (*entriesCmd) Name() string     { return "entries" }
func (*entriesCmd) Synopsis() string { return "list ledger entries with their indices" }
func (*entriesCmd) Usage() string {
	return `ycf entries [-tail <n>]

  Lists the emission entries in the ledger. The index column is the
  position to pass to 'ycf delete'.

`
}

func (c *entriesCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.tail, "tail", 0, "Show only the last n entries (0 shows all)")
}

func (c *entriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if ledger.Len() == 0 {
		fmt.Println("No entries recorded yet.")
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.EntriesMarkdown(ledger.Snapshot(), c.tail))
	return subcommands.ExitSuccess
}
