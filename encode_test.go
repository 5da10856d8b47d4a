package footprint

import (
	"bytes"
	"strings"
	"testing"
)

// sameRecord compares two records field by field, using value equality for
// the decimal and money fields.
func sameRecord(a, b Record) bool {
	return a.Date == b.Date &&
		a.BusinessUnit == b.BusinessUnit &&
		a.Project == b.Project &&
		a.Scope == b.Scope &&
		a.Category == b.Category &&
		a.Activity == b.Activity &&
		a.Country == b.Country &&
		a.Facility == b.Facility &&
		a.ResponsiblePerson == b.ResponsiblePerson &&
		a.Quantity.Equal(b.Quantity) &&
		a.Unit == b.Unit &&
		a.EmissionFactor.Equal(b.EmissionFactor) &&
		a.Emissions.Equal(b.Emissions) &&
		a.DataQuality == b.DataQuality &&
		a.VerificationStatus == b.VerificationStatus &&
		a.Notes == b.Notes &&
		a.Cost.Equals(b.Cost)
}

func TestEncodeLedger_empty(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeLedger(&buf, NewLedger()); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Errorf("empty ledger encodes to %q, want %q", got, "[]")
	}
}

func TestEncodeLedger_roundTrip(t *testing.T) {
	l := NewLedger()
	l.Append(testRecord("2025-01-15", Scope2, "Electricity", "1000", "0.82"))
	second := testRecord("2025-01-20", Scope1, "Mobile Combustion", "50", "2.31495")
	second.Cost = M(120.50, "USD")
	second.Notes = "Fleet vehicle fuel consumption"
	l.Append(second)

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		t.Fatal(err)
	}

	got, err := DecodeLedger(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != l.Len() {
		t.Fatalf("decoded %d records, want %d", got.Len(), l.Len())
	}
	for i := range l.records {
		if !sameRecord(got.records[i], l.records[i]) {
			t.Errorf("record %d does not round-trip:\ngot  %+v\nwant %+v", i, got.records[i], l.records[i])
		}
	}
}

func TestEncodeLedger_numbersAreUnquoted(t *testing.T) {
	l := NewLedger()
	l.Append(testRecord("2025-01-20", Scope1, "Mobile Combustion", "50", "2.31495"))

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"emissions_kgCO2e": 115.7475`) {
		t.Errorf("emissions are not serialized as a plain number:\n%s", buf.String())
	}
}

func TestDecodeLedger_badDateIsKept(t *testing.T) {
	doc := `[{
		"date": "soon",
		"business_unit": "Corporate",
		"project": "Not Applicable",
		"scope": "Scope 2",
		"category": "Electricity",
		"activity": "Office Electricity",
		"country": "India",
		"facility": "",
		"responsible_person": "",
		"quantity": 10,
		"unit": "kWh",
		"emission_factor": 0.82,
		"emissions_kgCO2e": 8.2,
		"data_quality": "Medium",
		"verification_status": "Unverified",
		"notes": ""
	}]`
	l, err := DecodeLedger(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if l.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", l.Len())
	}
	r, _ := l.At(0)
	if !r.Date.IsZero() {
		t.Errorf("unparseable date should decode to the zero date, got %v", r.Date)
	}
	if !r.Emissions.Equal(dec("8.2")) {
		t.Errorf("Emissions = %s, want 8.2", r.Emissions)
	}
}

func TestDecodeLedger_rejectsGarbage(t *testing.T) {
	if _, err := DecodeLedger(strings.NewReader("this is not json")); err == nil {
		t.Error("expected an error for unparseable content")
	}
}
