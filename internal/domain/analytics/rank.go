package analytics

import (
	"sort"

	"github.com/FACorreiaa/order-insights/internal/domain/purchase"
)

// DefaultRankingSize is the ranking length when callers pass no explicit n.
const DefaultRankingSize = 5

// TopPurchases returns up to n purchases with the highest totals,
// descending. Cancelled orders are excluded; ties keep input order.
// n <= 0 returns an empty ranking.
func TopPurchases(ps []purchase.Purchase, n int) []purchase.Purchase {
	if n <= 0 {
		return nil
	}
	eligible := filterPurchases(ps, func(p purchase.Purchase) bool {
		return p.Status() != purchase.StatusCancelled
	})
	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].Total.GreaterThan(eligible[j].Total)
	})
	return truncate(eligible, n)
}

// BottomPurchases returns up to n purchases with the lowest totals,
// ascending. Cancelled orders and zero-or-negative totals are excluded.
func BottomPurchases(ps []purchase.Purchase, n int) []purchase.Purchase {
	if n <= 0 {
		return nil
	}
	eligible := filterPurchases(ps, func(p purchase.Purchase) bool {
		return p.Status() != purchase.StatusCancelled && p.Total.IsPositive()
	})
	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].Total.LessThan(eligible[j].Total)
	})
	return truncate(eligible, n)
}

func filterPurchases(ps []purchase.Purchase, keep func(purchase.Purchase) bool) []purchase.Purchase {
	out := make([]purchase.Purchase, 0, len(ps))
	for _, p := range ps {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func truncate(ps []purchase.Purchase, n int) []purchase.Purchase {
	if len(ps) > n {
		return ps[:n]
	}
	return ps
}
