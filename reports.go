package footprint

import (
	"sort"

	"github.com/shopspring/decimal"
)

// DefaultTopCategories bounds the width of the by-category report.
const DefaultTopCategories = 8

// TotalEmissions sums emissions_kgCO2e across all records in the snapshot.
// Every record counts; a record without a usable value contributes zero.
func TotalEmissions(s Snapshot) decimal.Decimal {
	total := decimal.Zero
	for _, r := range s {
		total = total.Add(r.Emissions)
	}
	return total
}

// ByScope group-sums emissions by scope. Keys are present only for scopes
// that appear in at least one record.
func ByScope(s Snapshot) map[Scope]decimal.Decimal {
	sums := make(map[Scope]decimal.Decimal)
	for _, r := range s {
		sums[r.Scope] = sums[r.Scope].Add(r.Emissions)
	}
	return sums
}

// CategoryTotal is one row of the by-category report.
type CategoryTotal struct {
	Category  string
	Emissions decimal.Decimal
}

// ByCategory group-sums emissions by category, sorted descending by sum
// and truncated to the top N (DefaultTopCategories when n <= 0). Ties keep
// the first-seen category order.
func ByCategory(s Snapshot, n int) []CategoryTotal {
	if n <= 0 {
		n = DefaultTopCategories
	}
	sums := make(map[string]decimal.Decimal)
	var order []string
	for _, r := range s {
		if _, seen := sums[r.Category]; !seen {
			order = append(order, r.Category)
		}
		sums[r.Category] = sums[r.Category].Add(r.Emissions)
	}

	totals := make([]CategoryTotal, 0, len(order))
	for _, category := range order {
		totals = append(totals, CategoryTotal{Category: category, Emissions: sums[category]})
	}
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Emissions.GreaterThan(totals[j].Emissions)
	})
	if len(totals) > n {
		totals = totals[:n]
	}
	return totals
}

// TrendPoint is one (month, scope) bucket of the monthly trend.
type TrendPoint struct {
	Month     string // "YYYY-MM"
	Scope     Scope
	Emissions decimal.Decimal
}

// MonthlyTrend group-sums emissions by calendar month then by scope, in
// chronological month order. Records without a parseable date are excluded
// from this view but still count in TotalEmissions.
func MonthlyTrend(s Snapshot) []TrendPoint {
	type bucket struct {
		month string
		scope Scope
	}
	sums := make(map[bucket]decimal.Decimal)
	for _, r := range s {
		if r.Date.IsZero() {
			continue
		}
		b := bucket{month: r.Date.YearMonth(), scope: r.Scope}
		sums[b] = sums[b].Add(r.Emissions)
	}

	points := make([]TrendPoint, 0, len(sums))
	for b, sum := range sums {
		points = append(points, TrendPoint{Month: b.month, Scope: b.scope, Emissions: sum})
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Month != points[j].Month {
			return points[i].Month < points[j].Month
		}
		return points[i].Scope < points[j].Scope
	})
	return points
}

// PeriodComparison compares the calendar month containing the reference
// date against the immediately preceding month. PercentChange is nil when
// the previous month's sum is zero: the percentage is undefined then.
type PeriodComparison struct {
	Current       decimal.Decimal
	Previous      decimal.Decimal
	PercentChange *float64
}

// PeriodOverPeriod sums emissions for the month containing ref and for the
// month before it.
func PeriodOverPeriod(s Snapshot, ref Date) PeriodComparison {
	currentStart := ref.StartOfMonth()
	previousStart := currentStart.AddMonth(-1)

	cmp := PeriodComparison{Current: decimal.Zero, Previous: decimal.Zero}
	for _, r := range s {
		if r.Date.IsZero() {
			continue
		}
		switch r.Date.StartOfMonth() {
		case currentStart:
			cmp.Current = cmp.Current.Add(r.Emissions)
		case previousStart:
			cmp.Previous = cmp.Previous.Add(r.Emissions)
		}
	}
	if cmp.Previous.IsPositive() {
		change, _ := cmp.Current.Sub(cmp.Previous).
			Div(cmp.Previous).Mul(decimal.NewFromInt(100)).Float64()
		cmp.PercentChange = &change
	}
	return cmp
}

// Summary provides a comprehensive, at-a-glance overview of the ledger on
// a given date.
type Summary struct {
	Date           Date
	Records        int
	Total          decimal.Decimal
	ByScope        map[Scope]decimal.Decimal
	TopCategories  []CategoryTotal
	Period         PeriodComparison
	MonthlyAverage decimal.Decimal
	Costs          map[string]Money // total recorded cost per currency
}

// NewSummary computes the full summary of a snapshot as of a given date.
func NewSummary(s Snapshot, on Date) *Summary {
	summary := &Summary{
		Date:          on,
		Records:       len(s),
		Total:         TotalEmissions(s),
		ByScope:       ByScope(s),
		TopCategories: ByCategory(s, DefaultTopCategories),
		Period:        PeriodOverPeriod(s, on),
		Costs:         make(map[string]Money),
	}

	// Mean of the monthly sums over the months that have data.
	months := make(map[string]decimal.Decimal)
	for _, r := range s {
		if r.Date.IsZero() {
			continue
		}
		m := r.Date.YearMonth()
		months[m] = months[m].Add(r.Emissions)
	}
	if len(months) > 0 {
		sum := decimal.Zero
		for _, v := range months {
			sum = sum.Add(v)
		}
		summary.MonthlyAverage = sum.Div(decimal.NewFromInt(int64(len(months))))
	}

	for _, r := range s {
		if r.Cost.IsZero() {
			continue
		}
		total, err := summary.Costs[r.Cost.CurrencyCode()].Add(r.Cost)
		if err != nil {
			continue
		}
		summary.Costs[r.Cost.CurrencyCode()] = total
	}
	return summary
}
