// Package analytics derives grouped aggregate series and extremal
// rankings from a normalized purchase set. All functions are pure reads
// over their input; ordering of results is deterministic for identical
// input.
package analytics

import (
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/FACorreiaa/order-insights/internal/domain/purchase"
)

// IntPoint is one (key, summed value) pair of an integer-keyed series.
type IntPoint struct {
	Key   int
	Value decimal.Decimal
}

// StringPoint is one (key, summed value) pair of a string-keyed series.
type StringPoint struct {
	Key   string
	Value decimal.Decimal
}

// IntKeyFunc maps a purchase to an integer grouping key. ok=false
// excludes the purchase from the series instead of grouping it under a
// sentinel key.
type IntKeyFunc func(purchase.Purchase) (key int, ok bool)

// StringKeyFunc maps a purchase to a string grouping key.
type StringKeyFunc func(purchase.Purchase) (key string, ok bool)

// ValueFunc maps a purchase to its numeric contribution. A nil ValueFunc
// counts: every purchase contributes 1.
type ValueFunc func(purchase.Purchase) decimal.Decimal

// TotalValue sums the purchase amounts.
func TotalValue(p purchase.Purchase) decimal.Decimal { return p.Total }

// AggregateByInt groups purchases by an integer key and sums the value
// contribution per key. Keys appear once each, sorted ascending
// numerically. A key seen in the input stays in the output even when its
// sum is zero or negative.
func AggregateByInt(ps []purchase.Purchase, keyFn IntKeyFunc, valueFn ValueFunc) []IntPoint {
	sums := make(map[int]decimal.Decimal, 16)
	for _, p := range ps {
		key, ok := keyFn(p)
		if !ok {
			continue
		}
		sums[key] = sums[key].Add(contribution(p, valueFn))
	}

	out := make([]IntPoint, 0, len(sums))
	for k, v := range sums {
		out = append(out, IntPoint{Key: k, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// AggregateByString groups purchases by a string key, sorted ascending
// with locale-aware collation so chart axes come out in a stable,
// human-expected order.
func AggregateByString(ps []purchase.Purchase, keyFn StringKeyFunc, valueFn ValueFunc) []StringPoint {
	sums := make(map[string]decimal.Decimal, 16)
	for _, p := range ps {
		key, ok := keyFn(p)
		if !ok {
			continue
		}
		sums[key] = sums[key].Add(contribution(p, valueFn))
	}

	out := make([]StringPoint, 0, len(sums))
	for k, v := range sums {
		out = append(out, StringPoint{Key: k, Value: v})
	}
	c := collate.New(language.English)
	sort.Slice(out, func(i, j int) bool {
		return c.CompareString(out[i].Key, out[j].Key) < 0
	})
	return out
}

func contribution(p purchase.Purchase, valueFn ValueFunc) decimal.Decimal {
	if valueFn == nil {
		return decimal.NewFromInt(1)
	}
	return valueFn(p)
}
