package footprint

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// recordJSON is the flat key/value form of a record in the persisted
// document. Column order is not significant; presence of all canonical
// columns is. The date is kept as a raw string so a record with an
// unparseable date survives a reload instead of poisoning the whole file.
type recordJSON struct {
	Date               string           `json:"date"`
	BusinessUnit       string           `json:"business_unit"`
	Project            string           `json:"project"`
	Scope              string           `json:"scope"`
	Category           string           `json:"category"`
	Activity           string           `json:"activity"`
	Country            string           `json:"country"`
	Facility           string           `json:"facility"`
	ResponsiblePerson  string           `json:"responsible_person"`
	Quantity           decimal.Decimal  `json:"quantity"`
	Unit               string           `json:"unit"`
	EmissionFactor     decimal.Decimal  `json:"emission_factor"`
	Emissions          decimal.Decimal  `json:"emissions_kgCO2e"`
	DataQuality        string           `json:"data_quality"`
	VerificationStatus string           `json:"verification_status"`
	Notes              string           `json:"notes"`
	Cost               *decimal.Decimal `json:"cost,omitempty"`
	Currency           string           `json:"currency,omitempty"`
}

func encodeRecord(r Record) recordJSON {
	j := recordJSON{
		Date:               r.Date.String(),
		BusinessUnit:       r.BusinessUnit,
		Project:            r.Project,
		Scope:              string(r.Scope),
		Category:           r.Category,
		Activity:           r.Activity,
		Country:            r.Country,
		Facility:           r.Facility,
		ResponsiblePerson:  r.ResponsiblePerson,
		Quantity:           r.Quantity,
		Unit:               r.Unit,
		EmissionFactor:     r.EmissionFactor,
		Emissions:          r.Emissions,
		DataQuality:        string(r.DataQuality),
		VerificationStatus: string(r.VerificationStatus),
		Notes:              r.Notes,
	}
	if !r.Cost.IsZero() {
		amount := r.Cost.Amount()
		j.Cost = &amount
		j.Currency = r.Cost.CurrencyCode()
	}
	return j
}

func decodeRecord(j recordJSON) Record {
	r := Record{
		BusinessUnit:       j.BusinessUnit,
		Project:            j.Project,
		Scope:              Scope(j.Scope),
		Category:           j.Category,
		Activity:           j.Activity,
		Country:            j.Country,
		Facility:           j.Facility,
		ResponsiblePerson:  j.ResponsiblePerson,
		Quantity:           j.Quantity,
		Unit:               j.Unit,
		EmissionFactor:     j.EmissionFactor,
		Emissions:          j.Emissions,
		DataQuality:        DataQuality(j.DataQuality),
		VerificationStatus: VerificationStatus(j.VerificationStatus),
		Notes:              j.Notes,
	}
	// A date that does not parse leaves the zero Date: the record still
	// counts in totals but is excluded from time-bucketed views.
	if on, err := ParseDate(j.Date); err == nil {
		r.Date = on
	}
	if j.Cost != nil && j.Currency != "" {
		r.Cost = NewMoney(*j.Cost, j.Currency)
	}
	return r
}

// marshalRecords renders records in the persisted document form.
func marshalRecords(records []Record) ([]byte, error) {
	out := make([]recordJSON, 0, len(records))
	for _, r := range records {
		out = append(out, encodeRecord(r))
	}
	return json.MarshalIndent(out, "", "  ")
}

// EncodeLedger serializes the full ledger to w as a JSON array of flat
// records. The empty ledger serializes to the explicit empty array, never
// to an absent or truncated document.
func EncodeLedger(w io.Writer, l *Ledger) error {
	data, err := marshalRecords(l.records)
	if err != nil {
		return fmt.Errorf("cannot marshal ledger: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write ledger: %w", err)
	}
	return nil
}

// DecodeLedger reads a JSON array of flat records from r and returns the
// ledger in document order.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	var rows []recordJSON
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("cannot parse ledger document: %w", err)
	}
	ledger := NewLedger()
	for _, j := range rows {
		ledger.Append(decodeRecord(j))
	}
	return ledger, nil
}
