package renderer

import (
	"fmt"
	"strings"

	"github.com/sustena/footprint"
)

// EntriesMarkdown lists the snapshot as a table, one row per entry, with
// the entry's ledger index in the first column. A positive tail limits
// the output to the last tail entries.
func EntriesMarkdown(s footprint.Snapshot, tail int) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Emission Entries\n\n")

	first := 0
	if tail > 0 && tail < len(s) {
		first = len(s) - tail
		fmt.Fprintf(&b, "Showing the last %d of %d entries.\n\n", tail, len(s))
	}

	fmt.Fprintln(&b, "| # | Date | Scope | Category | Activity | Quantity | Unit | kgCO2e |")
	fmt.Fprintln(&b, "|---:|:---|:---|:---|:---|---:|:---|---:|")
	for i := first; i < len(s); i++ {
		r := s[i]
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s | %s | %s |\n",
			i, r.Date, r.Scope, r.Category, r.Activity, r.Quantity, r.Unit, r.Emissions)
	}
	fmt.Fprintln(&b)

	return b.String()
}
