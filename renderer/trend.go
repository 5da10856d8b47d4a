package renderer

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sustena/footprint"
)

func TrendMarkdown(points []footprint.TrendPoint) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Monthly Emissions Trend\n\n")
	fmt.Fprintln(&b, "| Month | Scope | kgCO2e |")
	fmt.Fprintln(&b, "|:---|:---|---:|")

	month := ""
	monthTotal := decimal.Zero
	flush := func() {
		if month != "" {
			fmt.Fprintf(&b, "| **%s** | **Total** | **%s** |\n", month, monthTotal)
		}
	}
	for _, p := range points {
		if p.Month != month {
			flush()
			month = p.Month
			monthTotal = decimal.Zero
		}
		monthTotal = monthTotal.Add(p.Emissions)
		fmt.Fprintf(&b, "| %s | %s | %s |\n", p.Month, p.Scope, p.Emissions)
	}
	flush()
	fmt.Fprintln(&b)

	return b.String()
}
