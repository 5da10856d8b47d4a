package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"github.com/sustena/footprint"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	date         string
	businessUnit string
	project      string
	scope        string
	category     string
	activity     string
	country      string
	facility     string
	person       string
	quantity     string
	unit         string
	factor       string
	quality      string
	verification string
	notes        string
	cost         string
	currency     string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a single emission entry" }
func (*addCmd) Usage() string {
	return `ycf add -scope <scope> -category <category> -activity <activity> -quantity <n> -unit <unit> -factor <n> [options]

  Validates one emission entry, computes its footprint as quantity × factor
  (kgCO2e), appends it to the ledger and saves.

Usage Examples:
# 1000 kWh of office electricity in India.
$ ycf add -scope "Scope 2" -category Electricity -activity "Office Electricity" -quantity 1000 -unit kWh -factor 0.82

`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "0d", "Date of the activity. See 'ycf topic dates' for supported formats.")
	f.StringVar(&c.businessUnit, "bu", "", "Business unit responsible for the emission (default Corporate).")
	f.StringVar(&c.project, "project", "", "Project or initiative associated with the emission.")
	f.StringVar(&c.scope, "scope", "", "GHG scope: 'Scope 1', 'Scope 2' or 'Scope 3'.")
	f.StringVar(&c.category, "category", "", "Emission category; any text outside the standard list is a custom category.")
	f.StringVar(&c.activity, "activity", "", "Specific activity that generated the emissions.")
	f.StringVar(&c.country, "country", "", "Country where the emission occurred (default India).")
	f.StringVar(&c.facility, "facility", "", "Facility or location, e.g. 'Mumbai HQ'.")
	f.StringVar(&c.person, "person", "", "Person responsible for this emission source.")
	f.StringVar(&c.quantity, "quantity", "", "Measured activity amount, e.g. kWh used or liters consumed.")
	f.StringVar(&c.unit, "unit", "", "Unit of measure for the quantity.")
	f.StringVar(&c.factor, "factor", "", "Emission factor in kgCO2e per unit of quantity.")
	f.StringVar(&c.quality, "quality", "", "Data quality: Low, Medium or High (default Medium).")
	f.StringVar(&c.verification, "verification", "", "Verification status (default Unverified).")
	f.StringVar(&c.notes, "notes", "", "Free-text notes: sources, methodology, assumptions.")
	f.StringVar(&c.cost, "cost", "", "Optional cost of the activity.")
	f.StringVar(&c.currency, "currency", "USD", "Currency for the cost.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := footprint.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	quantity, err := decimal.NewFromString(c.quantity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing quantity %q: %v\n", c.quantity, err)
		return subcommands.ExitUsageError
	}
	factor, err := decimal.NewFromString(c.factor)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing factor %q: %v\n", c.factor, err)
		return subcommands.ExitUsageError
	}

	draft := footprint.Record{
		Date:               on,
		BusinessUnit:       c.businessUnit,
		Project:            c.project,
		Scope:              footprint.Scope(c.scope),
		Category:           c.category,
		Activity:           c.activity,
		Country:            c.country,
		Facility:           c.facility,
		ResponsiblePerson:  c.person,
		Quantity:           quantity,
		Unit:               c.unit,
		EmissionFactor:     factor,
		DataQuality:        footprint.DataQuality(c.quality),
		VerificationStatus: footprint.VerificationStatus(c.verification),
		Notes:              c.notes,
	}
	if c.cost != "" {
		amount, err := decimal.NewFromString(c.cost)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing cost %q: %v\n", c.cost, err)
			return subcommands.ExitUsageError
		}
		draft.Cost = footprint.NewMoney(amount, c.currency)
	}

	record, err := footprint.NewRecord(draft)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	ledger.Append(record)

	if status := SaveLedger(ledger); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Added entry #%d: %s kgCO2e\n", ledger.Len()-1, record.Emissions)
	return subcommands.ExitSuccess
}
