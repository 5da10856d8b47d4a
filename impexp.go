package footprint

// this file contains the bulk import/export format: a tabular document with
// a header row, round-trippable through the importer.

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// requiredColumns are the columns a bulk import source must carry.
var requiredColumns = []string{
	"date", "scope", "category", "activity", "quantity", "unit", "emission_factor",
}

// exportColumns is the canonical column order of the export format.
var exportColumns = []string{
	"date", "business_unit", "project", "scope", "category", "activity",
	"country", "facility", "responsible_person", "quantity", "unit",
	"emission_factor", "emissions_kgCO2e", "data_quality",
	"verification_status", "notes", "cost", "currency",
}

// ImportCSV parses a bulk import source and returns the validated batch.
//
// The source must contain all required columns (SchemaError otherwise).
// Every row must coerce cleanly (DataTypeError otherwise); a single bad row
// rejects the whole batch, so the caller can merge the result atomically.
// A supplied emissions_kgCO2e value is trusted as-is; when the column or
// the cell is absent, emissions are computed as quantity × emission factor.
// Organizational columns missing from the source are filled with the fixed
// per-field defaults; unknown extra columns are accepted and ignored.
func ImportCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &SchemaError{Missing: requiredColumns}
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read import header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	cell := func(row []string, name string) (string, bool) {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return "", false
		}
		return strings.TrimSpace(row[i]), true
	}

	var records []Record
	for line := 1; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read import row %d: %w", line, err)
		}

		var r Record

		value, _ := cell(row, "date")
		on, err := ParseDate(value)
		if err != nil {
			return nil, &DataTypeError{Row: line, Column: "date", Value: value, Err: err}
		}
		r.Date = on

		value, _ = cell(row, "scope")
		scope, err := ParseScope(value)
		if err != nil {
			return nil, &DataTypeError{Row: line, Column: "scope", Value: value, Err: err}
		}
		r.Scope = scope

		r.Category, _ = cell(row, "category")
		r.Activity, _ = cell(row, "activity")
		r.Unit, _ = cell(row, "unit")

		r.Quantity, err = coerceAmount(row, cell, line, "quantity")
		if err != nil {
			return nil, err
		}
		r.EmissionFactor, err = coerceAmount(row, cell, line, "emission_factor")
		if err != nil {
			return nil, err
		}

		// A pre-computed value from the source is passed through unchanged.
		if value, ok := cell(row, "emissions_kgCO2e"); ok && value != "" {
			r.Emissions, err = decimal.NewFromString(value)
			if err != nil {
				return nil, &DataTypeError{Row: line, Column: "emissions_kgCO2e", Value: value, Err: err}
			}
		} else {
			r.Emissions = r.Quantity.Mul(r.EmissionFactor)
		}

		if value, ok := cell(row, "data_quality"); ok && value != "" {
			quality, err := ParseDataQuality(value)
			if err != nil {
				return nil, &DataTypeError{Row: line, Column: "data_quality", Value: value, Err: err}
			}
			r.DataQuality = quality
		}
		if value, ok := cell(row, "verification_status"); ok && value != "" {
			status, err := ParseVerificationStatus(value)
			if err != nil {
				return nil, &DataTypeError{Row: line, Column: "verification_status", Value: value, Err: err}
			}
			r.VerificationStatus = status
		}

		r.BusinessUnit, _ = cell(row, "business_unit")
		r.Project, _ = cell(row, "project")
		r.Country, _ = cell(row, "country")
		r.Facility, _ = cell(row, "facility")
		r.ResponsiblePerson, _ = cell(row, "responsible_person")
		r.Notes, _ = cell(row, "notes")

		if value, ok := cell(row, "cost"); ok && value != "" {
			amount, err := decimal.NewFromString(value)
			if err != nil {
				return nil, &DataTypeError{Row: line, Column: "cost", Value: value, Err: err}
			}
			currency, _ := cell(row, "currency")
			r.Cost = NewMoney(amount, currency)
		}

		records = append(records, r.withDefaults())
	}
	return records, nil
}

// coerceAmount coerces a non-negative numeric cell.
func coerceAmount(row []string, cell func([]string, string) (string, bool), line int, column string) (decimal.Decimal, error) {
	value, _ := cell(row, column)
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, &DataTypeError{Row: line, Column: column, Value: value, Err: err}
	}
	if d.IsNegative() {
		return decimal.Zero, &DataTypeError{Row: line, Column: column, Value: value, Err: fmt.Errorf("must not be negative")}
	}
	return d, nil
}

// ExportCSV writes the snapshot in the canonical tabular form, with every
// canonical column present, suitable for round-tripping back through the
// importer.
func ExportCSV(w io.Writer, s Snapshot) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportColumns); err != nil {
		return fmt.Errorf("cannot write export header: %w", err)
	}
	for _, r := range s {
		cost, currency := "", ""
		if !r.Cost.IsZero() {
			cost = r.Cost.Amount().String()
			currency = r.Cost.CurrencyCode()
		}
		row := []string{
			r.Date.String(),
			r.BusinessUnit,
			r.Project,
			string(r.Scope),
			r.Category,
			r.Activity,
			r.Country,
			r.Facility,
			r.ResponsiblePerson,
			r.Quantity.String(),
			r.Unit,
			r.EmissionFactor.String(),
			r.Emissions.String(),
			string(r.DataQuality),
			string(r.VerificationStatus),
			r.Notes,
			cost,
			currency,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write export row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
