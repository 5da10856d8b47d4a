// Package renderer turns footprint reports into markdown documents
// suitable for terminal rendering.
package renderer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sustena/footprint"
)

func SummaryMarkdown(s *footprint.Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Carbon Footprint Summary on %s\n\n", s.Date)
	fmt.Fprintf(&b, "Entries: %d\n\n", s.Records)

	fmt.Fprintln(&b, "| Metric | kgCO2e |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| **Total Emissions** | **%s** |\n", s.Total)
	for _, scope := range []footprint.Scope{footprint.Scope1, footprint.Scope2, footprint.Scope3} {
		if total, ok := s.ByScope[scope]; ok {
			fmt.Fprintf(&b, "| %s | %s |\n", scope, total)
		}
	}
	fmt.Fprintf(&b, "| Monthly Average | %s |\n", s.MonthlyAverage)
	fmt.Fprintln(&b)

	if len(s.TopCategories) > 0 {
		fmt.Fprint(&b, "## Top Categories\n\n")
		fmt.Fprintln(&b, "| Category | kgCO2e |")
		fmt.Fprintln(&b, "|:---|---:|")
		for _, c := range s.TopCategories {
			fmt.Fprintf(&b, "| %s | %s |\n", c.Category, c.Emissions)
		}
		fmt.Fprintln(&b)
	}

	fmt.Fprint(&b, "## This Month vs Last Month\n\n")
	fmt.Fprintln(&b, "| Period | kgCO2e |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Current Month | %s |\n", s.Period.Current)
	fmt.Fprintf(&b, "| Previous Month | %s |\n", s.Period.Previous)
	if s.Period.PercentChange != nil {
		fmt.Fprintf(&b, "| Change | %+.1f%% |\n", *s.Period.PercentChange)
	} else {
		fmt.Fprintln(&b, "| Change | n/a |")
	}
	fmt.Fprintln(&b)

	if len(s.Costs) > 0 {
		fmt.Fprint(&b, "## Recorded Costs\n\n")
		currencies := make([]string, 0, len(s.Costs))
		for code := range s.Costs {
			currencies = append(currencies, code)
		}
		sort.Strings(currencies)
		fmt.Fprintln(&b, "| Currency | Total |")
		fmt.Fprintln(&b, "|:---|---:|")
		for _, code := range currencies {
			fmt.Fprintf(&b, "| %s | %s |\n", code, s.Costs[code])
		}
		fmt.Fprintln(&b)
	}

	return b.String()
}
