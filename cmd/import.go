package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sustena/footprint"
)

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import emission entries from a CSV file" }
func (*importCmd) Usage() string {
	return `ycf import <file.csv>

  Reads emission entries from a CSV file and appends them to the ledger.
  The file must carry the columns date, scope, category, activity,
  quantity, unit and emission_factor; see 'ycf topic importing' for the
  full format. The import is all-or-nothing: a single bad row rejects
  the whole file.

`
}
func (*importCmd) SetFlags(f *flag.FlagSet) {}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one CSV file argument")
		return subcommands.ExitUsageError
	}
	in, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	records, err := footprint.ImportCSV(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}

	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	ledger.MergeAll(records)

	if status := SaveLedger(ledger); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Imported %d entries from %s\n", len(records), f.Arg(0))
	return subcommands.ExitSuccess
}
