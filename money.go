package footprint

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents an optional monetary value attached to a record, such as
// the cost of the underlying activity.
type Money struct {
	value *money.Money
}

// NewMoney creates a Money from a decimal amount and an ISO-4217 currency code.
// An unknown currency yields the zero Money. Amounts finer than the
// currency's minor unit are rounded half away from zero.
func NewMoney(amount decimal.Decimal, currency string) Money {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return Money{}
	}
	factor := decimal.New(1, int32(cur.Fraction))
	return Money{money.New(amount.Mul(factor).Round(0).IntPart(), currency)}
}

// M is a shorthand to build Money from a float, mostly for tests.
func M(amount float64, currency string) Money {
	return NewMoney(decimal.NewFromFloat(amount), currency)
}

// Amount returns the monetary amount in major units as a decimal.
func (m Money) Amount() decimal.Decimal {
	if m.value == nil {
		return decimal.Zero
	}
	return decimal.New(m.value.Amount(), -int32(m.value.Currency().Fraction))
}

// CurrencyCode returns the ISO-4217 code, or "" for the zero Money.
func (m Money) CurrencyCode() string {
	if m.value == nil {
		return ""
	}
	return m.value.Currency().Code
}

// IsZero returns true for the zero Money or a zero amount.
func (m Money) IsZero() bool {
	return m.value == nil || m.value.IsZero()
}

// Add returns the sum of two amounts in the same currency. Adding to the
// zero Money returns the other operand unchanged.
func (m Money) Add(n Money) (Money, error) {
	if m.value == nil {
		return n, nil
	}
	if n.value == nil {
		return m, nil
	}
	r, err := m.value.Add(n.value)
	if err != nil {
		return Money{}, err
	}
	return Money{r}, nil
}

// Equals reports whether two Money values have the same currency and amount.
func (m Money) Equals(other Money) bool {
	if m.value == nil || other.value == nil {
		return m.IsZero() && other.IsZero()
	}
	eq, err := m.value.Equals(other.value)
	return err == nil && eq
}

// String returns the display form of the money value, e.g. "$12.50".
func (m Money) String() string {
	if m.value == nil {
		return ""
	}
	return m.value.Display()
}
