package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sustena/footprint"
	"github.com/sustena/footprint/renderer"
)

type trendCmd struct{}

func (*trendCmd) Name() string     { return "trend" }
func (*trendCmd) Synopsis() string { return "show monthly emissions per scope" }
func (*trendCmd) Usage() string {
	return `ycf trend

  Breaks emissions down by calendar month and scope. Entries whose
  recorded date could not be read are left out of the trend but still
  count toward the totals in 'ycf summary'.

`
}
func (*trendCmd) SetFlags(f *flag.FlagSet) {}

func (c *trendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	points := footprint.MonthlyTrend(ledger.Snapshot())
	if len(points) == 0 {
		fmt.Println("No dated entries to chart yet.")
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.TrendMarkdown(points))
	return subcommands.ExitSuccess
}
