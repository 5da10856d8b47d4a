package footprint

import "github.com/shopspring/decimal"

// dec is a helper for tests to build decimals from constants.
func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// testRecord builds a valid record for tests, with derived emissions.
func testRecord(date string, scope Scope, category string, quantity, factor string) Record {
	r, err := NewRecord(Record{
		Date:           MustParseDate(date),
		Scope:          scope,
		Category:       category,
		Activity:       "Office Electricity",
		Quantity:       dec(quantity),
		Unit:           "kWh",
		EmissionFactor: dec(factor),
	})
	if err != nil {
		panic(err.Error())
	}
	return r
}
