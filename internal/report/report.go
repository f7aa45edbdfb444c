// Package report renders pipeline views for humans: a tabular text
// summary and an Excel workbook. Labeling, percentage conversion and
// amount formatting all live here, never in the pipeline itself.
package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/FACorreiaa/order-insights/internal/domain/analytics"
	"github.com/FACorreiaa/order-insights/internal/domain/purchase"
	"github.com/FACorreiaa/order-insights/pkg/money"
)

var monthAbbrevs = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

var weekdayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// UnknownLabel substitutes for an empty payment-instrument key.
const UnknownLabel = "Unknown"

const dateLayout = "02 Jan 2006"

// RankingRow is one line of a top/bottom table: product, date and the
// amount formatted in the display currency.
type RankingRow struct {
	Product string
	Date    time.Time
	Amount  *money.Money
}

func rankingRows(ps []purchase.Purchase, currency string) []RankingRow {
	rows := make([]RankingRow, len(ps))
	for i, p := range ps {
		rows[i] = RankingRow{
			Product: p.Product,
			Date:    p.Date,
			Amount:  money.NewFromDecimal(p.Total, currency),
		}
	}
	return rows
}

func monthLabel(m int) string {
	if m < 1 || m > 12 {
		return ""
	}
	return monthAbbrevs[m-1]
}

func weekdayLabel(d int) string {
	if d < 0 || d > 6 {
		return ""
	}
	return weekdayNames[d]
}

func paymentLabel(key string) string {
	if key == "" {
		return UnknownLabel
	}
	return key
}

// percent formats value as a share of total with one decimal place,
// "0.0" when the total is zero.
func percent(value, total decimal.Decimal) string {
	if total.IsZero() {
		return "0.0"
	}
	return value.Div(total).Mul(decimal.NewFromInt(100)).StringFixed(1)
}

func sumInt(points []analytics.IntPoint) decimal.Decimal {
	total := decimal.Zero
	for _, pt := range points {
		total = total.Add(pt.Value)
	}
	return total
}

func sumString(points []analytics.StringPoint) decimal.Decimal {
	total := decimal.Zero
	for _, pt := range points {
		total = total.Add(pt.Value)
	}
	return total
}
