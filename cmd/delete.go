package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteCmd struct{}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete an emission entry by index" }
func (*deleteCmd) Usage() string {
	return `ycf delete <index>

  Removes the entry at the given position, as shown by 'ycf entries'.
  Later entries shift down by one.

`
}
func (*deleteCmd) SetFlags(f *flag.FlagSet) {}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one index argument")
		return subcommands.ExitUsageError
	}
	var index int
	if _, err := fmt.Sscanf(f.Arg(0), "%d", &index); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid index %q\n", f.Arg(0))
		return subcommands.ExitUsageError
	}

	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	removed, err := ledger.At(index)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := ledger.DeleteAt(index); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if status := SaveLedger(ledger); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Deleted entry #%d (%s / %s, %s kgCO2e)\n", index, removed.Scope, removed.Category, removed.Emissions)
	return subcommands.ExitSuccess
}
