// Package purchase turns raw export rows into canonical, immutable
// Purchase entities and infers the dataset's display currency.
package purchase

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/FACorreiaa/order-insights/internal/domain/record"
)

// StatusCancelled is the raw order-status value excluded from rankings.
const StatusCancelled = "Cancelled"

// DefaultCurrency is assumed when a row carries no currency code.
const DefaultCurrency = "USD"

// Purchase is one normalized transaction. Every retained Purchase has a
// valid Date; rows whose date cannot be parsed are dropped entirely.
type Purchase struct {
	Total    decimal.Decimal
	Date     time.Time
	Product  string
	Currency string
	Year     int
	Month    int // 1-12
	Weekday  int // 0=Sunday .. 6=Saturday
	Raw      record.RawRecord
}

// Status returns the raw order status, or "" when the export has none.
func (p Purchase) Status() string {
	return p.Raw.ResolveDefault(record.FieldStatus, "")
}

// PaymentType returns the raw payment instrument type. ok is false only
// when no payment column exists in the record at all; an empty value is
// still a reportable key.
func (p Purchase) PaymentType() (string, bool) {
	return p.Raw.Resolve(record.FieldPayment)
}

// dateFormats covers the layouts seen across order-history exporters.
// American month-first forms are tried before day-first ones.
var dateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05Z",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"01/02/2006",
	"02/01/2006",
	"2006/01/02",
	"01-02-2006",
	"02-01-2006",
	"Jan 2, 2006",
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseAmount strips every rune that is not a digit, '.', or '-' and
// parses the rest as a decimal. Malformed amounts coerce to zero; the
// row is not rejected for a bad amount.
func parseAmount(raw string) decimal.Decimal {
	cleaned := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r == '.' || r == '-' {
			return r
		}
		return -1
	}, raw)
	if cleaned == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Normalize converts one raw row into a Purchase. ok is false when the
// date cannot be parsed, which is the only condition that excludes a
// row; every other malformed field degrades to a default.
func Normalize(r record.RawRecord) (Purchase, bool) {
	dateRaw, _ := r.Resolve(record.FieldOrderDate)
	date, ok := parseDate(dateRaw)
	if !ok {
		return Purchase{}, false
	}

	amountRaw, _ := r.Resolve(record.FieldTotal)
	currency := strings.TrimSpace(r.ResolveDefault(record.FieldCurrency, DefaultCurrency))
	if currency == "" {
		currency = DefaultCurrency
	}

	return Purchase{
		Total:    parseAmount(amountRaw),
		Date:     date,
		Product:  r.ResolveDefault(record.FieldProduct, ""),
		Currency: currency,
		Year:     date.Year(),
		Month:    int(date.Month()),
		Weekday:  int(date.Weekday()),
		Raw:      r,
	}, true
}

// NormalizeAll normalizes a batch, silently dropping rows with
// unparsable dates.
func NormalizeAll(rows []record.RawRecord) []Purchase {
	out := make([]Purchase, 0, len(rows))
	for _, r := range rows {
		if p, ok := Normalize(r); ok {
			out = append(out, p)
		}
	}
	return out
}
