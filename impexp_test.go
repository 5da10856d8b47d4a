package footprint

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

const sampleCSV = `date,business_unit,project,scope,category,activity,country,facility,responsible_person,quantity,unit,emission_factor,data_quality,verification_status,notes
2025-01-15,Corporate,Carbon Reduction Initiative,Scope 2,Electricity,Office Electricity,India,Mumbai HQ,Rahul Sharma,1000,kWh,0.82,High,Internally Verified,Monthly electricity bill
2025-01-20,Logistics,Operational,Scope 1,Mobile Combustion,Company Vehicle,United States,Chicago Distribution Center,John Smith,50,liter,2.31495,Medium,Unverified,Fleet vehicle fuel consumption
`

func TestImportCSV_endToEnd(t *testing.T) {
	records, err := ImportCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("imported %d records, want 2", len(records))
	}

	// No emissions_kgCO2e column: emissions are computed row-wise.
	if !records[0].Emissions.Equal(dec("820")) {
		t.Errorf("row 1 emissions = %s, want 820", records[0].Emissions)
	}
	if !records[1].Emissions.Equal(dec("115.7475")) {
		t.Errorf("row 2 emissions = %s, want 115.7475", records[1].Emissions)
	}

	l := NewLedger()
	l.MergeAll(records)
	if total := TotalEmissions(l.Snapshot()); !total.Equal(dec("935.7475")) {
		t.Errorf("total emissions = %s, want 935.7475", total)
	}
}

func TestImportCSV_missingColumns(t *testing.T) {
	src := "date,scope,category\n2025-01-15,Scope 2,Electricity\n"
	_, err := ImportCSV(strings.NewReader(src))
	var serr *SchemaError
	if !errors.As(err, &serr) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
	for _, want := range []string{"activity", "quantity", "unit", "emission_factor"} {
		found := false
		for _, m := range serr.Missing {
			if m == want {
				found = true
			}
		}
		if !found {
			t.Errorf("SchemaError does not name missing column %q: %v", want, serr.Missing)
		}
	}
}

func TestImportCSV_badRowRejectsWholeBatch(t *testing.T) {
	testCases := []struct {
		name       string
		row        string
		wantColumn string
	}{
		{"bad quantity", "2025-01-15,Scope 2,Electricity,Office Electricity,lots,kWh,0.82", "quantity"},
		{"negative quantity", "2025-01-15,Scope 2,Electricity,Office Electricity,-5,kWh,0.82", "quantity"},
		{"bad factor", "2025-01-15,Scope 2,Electricity,Office Electricity,10,kWh,high", "emission_factor"},
		{"bad date", "whenever,Scope 2,Electricity,Office Electricity,10,kWh,0.82", "date"},
		{"bad scope", "2025-01-15,Scope 9,Electricity,Office Electricity,10,kWh,0.82", "scope"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			src := "date,scope,category,activity,quantity,unit,emission_factor\n" +
				"2025-01-10,Scope 1,Mobile Combustion,Company Vehicle,50,liter,2.31495\n" +
				tc.row + "\n"
			records, err := ImportCSV(strings.NewReader(src))
			var derr *DataTypeError
			if !errors.As(err, &derr) {
				t.Fatalf("expected DataTypeError, got %v", err)
			}
			if derr.Column != tc.wantColumn {
				t.Errorf("Column = %q, want %q", derr.Column, tc.wantColumn)
			}
			if derr.Row != 2 {
				t.Errorf("Row = %d, want 2", derr.Row)
			}
			if records != nil {
				t.Error("a failed batch must not return partial records")
			}
		})
	}
}

func TestImportCSV_backfillsDefaults(t *testing.T) {
	src := "date,scope,category,activity,quantity,unit,emission_factor\n" +
		"2025-01-15,Scope 2,Electricity,Office Electricity,1000,kWh,0.82\n"
	records, err := ImportCSV(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	r := records[0]
	if r.BusinessUnit != "Corporate" || r.Project != "Not Applicable" || r.Country != "India" {
		t.Errorf("organizational defaults not applied: %+v", r)
	}
	if r.DataQuality != MediumQuality || r.VerificationStatus != Unverified {
		t.Errorf("quality defaults not applied: %+v", r)
	}
}

func TestImportCSV_trustsSuppliedEmissions(t *testing.T) {
	src := "date,scope,category,activity,quantity,unit,emission_factor,emissions_kgCO2e\n" +
		"2025-01-15,Scope 2,Electricity,Office Electricity,1000,kWh,0.82,999\n" +
		"2025-01-16,Scope 2,Electricity,Office Electricity,10,kWh,0.82,\n"
	records, err := ImportCSV(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	// The supplied value is passed through unchanged, even though it is not
	// quantity × factor.
	if !records[0].Emissions.Equal(dec("999")) {
		t.Errorf("supplied emissions = %s, want 999", records[0].Emissions)
	}
	// An empty cell in a present column is computed.
	if !records[1].Emissions.Equal(dec("8.2")) {
		t.Errorf("computed emissions = %s, want 8.2", records[1].Emissions)
	}
}

func TestImportCSV_ignoresUnknownColumns(t *testing.T) {
	src := "date,scope,category,activity,quantity,unit,emission_factor,favorite_color\n" +
		"2025-01-15,Scope 2,Electricity,Office Electricity,1000,kWh,0.82,green\n"
	records, err := ImportCSV(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("imported %d records, want 1", len(records))
	}
}

func TestExportCSV_roundTrip(t *testing.T) {
	l := NewLedger()
	l.Append(testRecord("2025-01-15", Scope2, "Electricity", "1000", "0.82"))
	withCost := testRecord("2025-01-20", Scope1, "Mobile Combustion", "50", "2.31495")
	withCost.Cost = M(75, "USD")
	l.Append(withCost)

	var buf bytes.Buffer
	if err := ExportCSV(&buf, l.Snapshot()); err != nil {
		t.Fatal(err)
	}

	records, err := ImportCSV(&buf)
	if err != nil {
		t.Fatalf("export is not importable: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("round-trip yields %d records, want 2", len(records))
	}
	for i, want := range l.Snapshot() {
		if !sameRecord(records[i], want) {
			t.Errorf("record %d does not round-trip:\ngot  %+v\nwant %+v", i, records[i], want)
		}
	}
}

func TestExportCSV_emitsCanonicalColumns(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportCSV(&buf, nil); err != nil {
		t.Fatal(err)
	}
	header := strings.TrimSpace(buf.String())
	for _, col := range requiredColumns {
		if !strings.Contains(header, col) {
			t.Errorf("header misses required column %q: %s", col, header)
		}
	}
	if !strings.Contains(header, "emissions_kgCO2e") {
		t.Errorf("header misses the derived column: %s", header)
	}
}
