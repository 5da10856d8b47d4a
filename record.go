package footprint

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Scope is the GHG Protocol classification of an emission source.
type Scope string

const (
	// Scope1 covers direct emissions from owned or controlled sources.
	Scope1 Scope = "Scope 1"
	// Scope2 covers indirect emissions from purchased energy.
	Scope2 Scope = "Scope 2"
	// Scope3 covers all other indirect emissions in the value chain.
	Scope3 Scope = "Scope 3"
)

// ParseScope parses a string into a Scope.
func ParseScope(s string) (Scope, error) {
	switch Scope(strings.TrimSpace(s)) {
	case Scope1:
		return Scope1, nil
	case Scope2:
		return Scope2, nil
	case Scope3:
		return Scope3, nil
	default:
		return "", fmt.Errorf("unknown scope: %q", s)
	}
}

// DataQuality is the ordered qualitative tier of a record's source data.
type DataQuality string

const (
	LowQuality    DataQuality = "Low"    // estimated or proxy data
	MediumQuality DataQuality = "Medium" // calculated from bills or invoices
	HighQuality   DataQuality = "High"   // directly measured or metered data
)

// ParseDataQuality parses a string into a DataQuality.
func ParseDataQuality(s string) (DataQuality, error) {
	switch DataQuality(strings.TrimSpace(s)) {
	case LowQuality:
		return LowQuality, nil
	case MediumQuality:
		return MediumQuality, nil
	case HighQuality:
		return HighQuality, nil
	default:
		return "", fmt.Errorf("unknown data quality: %q", s)
	}
}

// VerificationStatus tells how far a record has been audited.
type VerificationStatus string

const (
	Unverified         VerificationStatus = "Unverified"
	InternallyVerified VerificationStatus = "Internally Verified"
	ThirdPartyVerified VerificationStatus = "Third-Party Verified"
)

// ParseVerificationStatus parses a string into a VerificationStatus.
func ParseVerificationStatus(s string) (VerificationStatus, error) {
	switch VerificationStatus(strings.TrimSpace(s)) {
	case Unverified:
		return Unverified, nil
	case InternallyVerified:
		return InternallyVerified, nil
	case ThirdPartyVerified:
		return ThirdPartyVerified, nil
	default:
		return "", fmt.Errorf("unknown verification status: %q", s)
	}
}

// Organizational defaults used to fill attribution fields that are missing
// from bulk input.
const (
	DefaultBusinessUnit = "Corporate"
	DefaultProject      = "Not Applicable"
	DefaultCountry      = "India"
)

// scopeCategories maps each scope to its standard category list. "Other"
// always means a free-text override replaces the selection.
var scopeCategories = map[Scope][]string{
	Scope1: {
		"Stationary Combustion",
		"Mobile Combustion",
		"Fugitive Emissions",
		"Process Emissions",
		"Other",
	},
	Scope2: {"Electricity", "Steam", "Heating", "Cooling", "Other"},
	Scope3: {
		"Purchased Goods and Services",
		"Capital Goods",
		"Fuel- and Energy-Related Activities",
		"Upstream Transportation and Distribution",
		"Waste Generated in Operations",
		"Business Travel",
		"Employee Commuting",
		"Upstream Leased Assets",
		"Downstream Transportation and Distribution",
		"Processing of Sold Products",
		"Use of Sold Products",
		"End-of-Life Treatment of Sold Products",
		"Downstream Leased Assets",
		"Franchises",
		"Investments",
		"Other",
	},
}

// categoryActivities maps each standard category to its activity list.
var categoryActivities = map[string][]string{
	"Stationary Combustion":                      {"Boiler", "Furnace", "Generator", "Other"},
	"Mobile Combustion":                          {"Company Vehicle", "Fleet Vehicle", "Machinery", "Other"},
	"Fugitive Emissions":                         {"Refrigerant Leak", "SF6 Emissions", "Other"},
	"Process Emissions":                          {"Cement Production", "Chemical Production", "Other"},
	"Electricity":                                {"Office Electricity", "Manufacturing Electricity", "Other"},
	"Steam":                                      {"Industrial Steam", "Heating Steam", "Other"},
	"Heating":                                    {"Office Heating", "Industrial Heating", "Other"},
	"Cooling":                                    {"Office Cooling", "Industrial Cooling", "Other"},
	"Purchased Goods and Services":               {"Raw Materials", "Office Supplies", "Other"},
	"Capital Goods":                              {"Equipment Purchase", "Vehicle Purchase", "Other"},
	"Fuel- and Energy-Related Activities":        {"Upstream Fuel Production", "Transmission Losses", "Other"},
	"Upstream Transportation and Distribution":   {"Supplier Transport", "Inbound Logistics", "Other"},
	"Waste Generated in Operations":              {"Solid Waste", "Wastewater", "Other"},
	"Business Travel":                            {"Air Travel", "Ground Travel", "Hotel Stays", "Other"},
	"Employee Commuting":                         {"Private Vehicle", "Public Transport", "Other"},
	"Upstream Leased Assets":                     {"Leased Equipment", "Leased Vehicles", "Other"},
	"Downstream Transportation and Distribution": {"Outbound Logistics", "Customer Transport", "Other"},
	"Processing of Sold Products":                {"Intermediate Processing", "Final Assembly", "Other"},
	"Use of Sold Products":                       {"Product Operation", "Energy Consumption", "Other"},
	"End-of-Life Treatment of Sold Products":     {"Recycling", "Landfill", "Other"},
	"Downstream Leased Assets":                   {"Leased Equipment", "Leased Property", "Other"},
	"Franchises":                                 {"Franchise Operations", "Franchise Energy Use", "Other"},
	"Investments":                                {"Investment Emissions", "Financed Emissions", "Other"},
	"Other":                                      {"Custom Activity", "Other"},
}

// Units is the standard unit-of-measure list; any other value is a free-text override.
var Units = []string{
	"kWh", "MWh", "GJ", "liter", "gallon", "kg", "tonne",
	"km", "mile", "hour", "day", "piece", "USD", "Other",
}

// Categories returns the standard category list for a scope.
func Categories(s Scope) []string { return scopeCategories[s] }

// Activities returns the standard activity list for a category. Unknown
// (free-text) categories get the generic list.
func Activities(category string) []string {
	if list, ok := categoryActivities[category]; ok {
		return list
	}
	return categoryActivities["Other"]
}

// Record is one logged activity and its computed footprint. The column set
// is fixed: every record carries all fields, with organizational defaults
// filling gaps on bulk input.
type Record struct {
	Date               Date
	BusinessUnit       string
	Project            string
	Scope              Scope
	Category           string
	Activity           string
	Country            string
	Facility           string
	ResponsiblePerson  string
	Quantity           decimal.Decimal
	Unit               string
	EmissionFactor     decimal.Decimal
	Emissions          decimal.Decimal // kgCO2e, derived from Quantity × EmissionFactor
	DataQuality        DataQuality
	VerificationStatus VerificationStatus
	Notes              string
	Cost               Money // optional activity cost
}

// withDefaults returns a copy of r with organizational defaults filling
// empty attribution fields.
func (r Record) withDefaults() Record {
	if r.BusinessUnit == "" {
		r.BusinessUnit = DefaultBusinessUnit
	}
	if r.Project == "" {
		r.Project = DefaultProject
	}
	if r.Country == "" {
		r.Country = DefaultCountry
	}
	if r.DataQuality == "" {
		r.DataQuality = MediumQuality
	}
	if r.VerificationStatus == "" {
		r.VerificationStatus = Unverified
	}
	return r
}

// NewRecord validates a draft record, fills organizational defaults, and
// computes the derived emissions. It is a pure transformation: on failure
// the draft is rejected as a whole with a ValidationError naming the
// offending field.
func NewRecord(draft Record) (Record, error) {
	r := draft.withDefaults()

	if r.Date.IsZero() {
		return Record{}, &ValidationError{Field: "date", Reason: "a valid calendar date is required"}
	}
	if _, err := ParseScope(string(r.Scope)); err != nil {
		return Record{}, &ValidationError{Field: "scope", Reason: "must be one of Scope 1, Scope 2, Scope 3"}
	}
	if strings.TrimSpace(r.Category) == "" {
		return Record{}, &ValidationError{Field: "category", Reason: "category is required"}
	}
	r.Activity = strings.TrimSpace(r.Activity)
	if r.Activity == "" {
		return Record{}, &ValidationError{Field: "activity", Reason: "activity description is required"}
	}
	if !r.Quantity.IsPositive() {
		return Record{}, &ValidationError{Field: "quantity", Reason: "must be greater than zero"}
	}
	if !r.EmissionFactor.IsPositive() {
		return Record{}, &ValidationError{Field: "emission_factor", Reason: "must be greater than zero"}
	}
	if _, err := ParseDataQuality(string(r.DataQuality)); err != nil {
		return Record{}, &ValidationError{Field: "data_quality", Reason: "must be one of Low, Medium, High"}
	}
	if _, err := ParseVerificationStatus(string(r.VerificationStatus)); err != nil {
		return Record{}, &ValidationError{Field: "verification_status", Reason: "must be one of Unverified, Internally Verified, Third-Party Verified"}
	}

	r.Emissions = r.Quantity.Mul(r.EmissionFactor)
	return r, nil
}
