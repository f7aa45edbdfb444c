package analytics

import (
	"github.com/FACorreiaa/order-insights/internal/domain/purchase"
)

// Views bundles every derived series and ranking a renderer needs for
// one purchase set. Values are plain ordered data; axis labels,
// percentage conversion and amount formatting belong to the renderer.
type Views struct {
	YearSpend    []IntPoint // summed total per year
	MonthSpend   []IntPoint // summed total per month 1-12
	WeekdayCount []IntPoint // purchase count per weekday, 0=Sunday
	PaymentSpend []StringPoint
	Top          []purchase.Purchase
	Bottom       []purchase.Purchase
}

// BuildViews derives all series and rankings from a purchase set. An
// empty input produces empty series, never an error.
func BuildViews(ps []purchase.Purchase, rankingSize int) Views {
	return Views{
		YearSpend: AggregateByInt(ps, func(p purchase.Purchase) (int, bool) {
			return p.Year, true
		}, TotalValue),
		MonthSpend: AggregateByInt(ps, func(p purchase.Purchase) (int, bool) {
			return p.Month, true
		}, TotalValue),
		WeekdayCount: AggregateByInt(ps, func(p purchase.Purchase) (int, bool) {
			return p.Weekday, true
		}, nil),
		PaymentSpend: AggregateByString(ps, func(p purchase.Purchase) (string, bool) {
			return p.PaymentType()
		}, TotalValue),
		Top:    TopPurchases(ps, rankingSize),
		Bottom: BottomPurchases(ps, rankingSize),
	}
}
