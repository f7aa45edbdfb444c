// Package money provides currency-safe display formatting using integer
// minor units and ISO-4217 currency codes. It wraps go-money and
// shopspring/decimal so renderers never format amounts by hand.
package money

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// USD is the fallback currency for unknown codes.
const USD = "USD"

// Money is a monetary value with currency, held in minor units.
type Money struct {
	m *money.Money
}

// New creates a Money value from minor units (cents) and a currency
// code. Unknown codes fall back to USD.
func New(amountMinor int64, currencyCode string) *Money {
	if money.GetCurrency(currencyCode) == nil {
		currencyCode = USD
	}
	return &Money{m: money.New(amountMinor, currencyCode)}
}

// NewFromDecimal converts a decimal amount in major units into Money,
// rounding to the currency's fraction digits.
func NewFromDecimal(amount decimal.Decimal, currencyCode string) *Money {
	currency := money.GetCurrency(currencyCode)
	if currency == nil {
		currency = money.GetCurrency(USD)
	}
	multiplier := decimal.New(1, int32(currency.Fraction))
	minor := amount.Mul(multiplier).Round(0).IntPart()
	return New(minor, currency.Code)
}

// Zero returns a zero value in the given currency.
func Zero(currencyCode string) *Money {
	return New(0, currencyCode)
}

// Amount returns the value in minor units.
func (m *Money) Amount() int64 {
	if m == nil || m.m == nil {
		return 0
	}
	return m.m.Amount()
}

// Currency returns the ISO-4217 currency code.
func (m *Money) Currency() string {
	if m == nil || m.m == nil {
		return ""
	}
	return m.m.Currency().Code
}

// IsZero reports whether the amount is zero.
func (m *Money) IsZero() bool {
	return m == nil || m.m == nil || m.m.IsZero()
}

// ToDecimal converts back to major units for precise calculations.
func (m *Money) ToDecimal() decimal.Decimal {
	if m == nil || m.m == nil {
		return decimal.Zero
	}
	divisor := decimal.New(1, int32(m.m.Currency().Fraction))
	return decimal.NewFromInt(m.m.Amount()).Div(divisor)
}

// Display returns the localized display string, e.g. "$1,234.56".
func (m *Money) Display() string {
	if m == nil || m.m == nil {
		return "$0.00"
	}
	return m.m.Display()
}

// String returns the amount as a plain decimal string, e.g. "1234.56".
func (m *Money) String() string {
	return m.ToDecimal().String()
}
