// Package record models raw purchase-history rows and resolves logical
// fields across the inconsistent column naming of different exporters.
package record

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// RawRecord is one untyped row from the source export, keyed by the
// original column header strings. Records are never mutated after load.
type RawRecord map[string]string

// Field is a logical column together with its ordered list of exact
// header aliases. Extraction tries aliases in order and takes the first
// key present in the record; no fuzzy matching happens at extraction
// time, only at header validation.
type Field struct {
	Name    string
	Aliases []string
}

var (
	FieldOrderDate = Field{Name: "order date", Aliases: []string{"OrderDate", "Order Date"}}
	FieldTotal     = Field{Name: "total owed", Aliases: []string{"TotalOwed", "Total Owed", "Total"}}
	FieldProduct   = Field{Name: "product name", Aliases: []string{"ProductName", "Product Name", "product_name", "Product"}}
	FieldCurrency  = Field{Name: "currency", Aliases: []string{"Currency"}}
	FieldStatus    = Field{Name: "order status", Aliases: []string{"OrderStatus", "Order Status"}}
	FieldPayment   = Field{Name: "payment instrument type", Aliases: []string{"Payment Instrument Type", "PaymentInstrumentType"}}
)

// requiredFields must all be present (fuzzily) in the export headers for
// a load to be accepted.
var requiredFields = []Field{
	FieldOrderDate,
	FieldTotal,
	FieldProduct,
	FieldStatus,
	FieldCurrency,
}

// Resolve returns the value of the first alias present in the record.
// A key that exists with an empty value still counts as present.
func (r RawRecord) Resolve(f Field) (string, bool) {
	for _, alias := range f.Aliases {
		if v, ok := r[alias]; ok {
			return v, true
		}
	}
	return "", false
}

// ResolveDefault is Resolve with a fallback value.
func (r RawRecord) ResolveDefault(f Field, def string) string {
	if v, ok := r.Resolve(f); ok {
		return v
	}
	return def
}

// MissingColumnsError reports required logical columns that no actual
// header matched, with a closest-header suggestion per missing column
// when one exists.
type MissingColumnsError struct {
	Missing     []string
	Suggestions map[string]string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("required columns missing from export: %s", strings.Join(e.Missing, ", "))
}

// ValidateHeaders checks that every required logical column matches at
// least one actual header after stripping whitespace and lower-casing
// (substring match). This tolerance is deliberately looser than the
// exact-alias lookup used at extraction time.
func ValidateHeaders(headers []string) error {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = normalizeHeader(h)
	}

	var missing []string
	suggestions := make(map[string]string)
	for _, f := range requiredFields {
		want := normalizeHeader(f.Aliases[0])
		found := false
		for _, h := range normalized {
			if strings.Contains(h, want) {
				found = true
				break
			}
		}
		if found {
			continue
		}
		missing = append(missing, f.Name)
		if best := closestHeader(f.Aliases[0], headers); best != "" {
			suggestions[f.Name] = best
		}
	}

	if len(missing) > 0 {
		return &MissingColumnsError{Missing: missing, Suggestions: suggestions}
	}
	return nil
}

func normalizeHeader(h string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, h)
}

// closestHeader returns the nearest actual header to the canonical alias
// by Levenshtein distance, or "" when nothing is remotely close.
func closestHeader(alias string, headers []string) string {
	ranks := fuzzy.RankFindFold(alias, headers)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}
