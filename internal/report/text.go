package report

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/FACorreiaa/order-insights/internal/domain/analytics"
	"github.com/FACorreiaa/order-insights/pkg/money"
)

// WriteText renders every view as aligned text tables.
func WriteText(w io.Writer, views analytics.Views, currency string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "Spend by year\t(%s)\n", currency)
	for _, pt := range views.YearSpend {
		fmt.Fprintf(tw, "%d\t%s\n", pt.Key, money.NewFromDecimal(pt.Value, currency).Display())
	}

	fmt.Fprintf(tw, "\nSpend by month\t(%s)\n", currency)
	for _, pt := range views.MonthSpend {
		fmt.Fprintf(tw, "%s\t%s\n", monthLabel(pt.Key), money.NewFromDecimal(pt.Value, currency).Display())
	}

	fmt.Fprint(tw, "\nPurchases by weekday\t(%)\n")
	weekdayTotal := sumInt(views.WeekdayCount)
	for _, pt := range views.WeekdayCount {
		fmt.Fprintf(tw, "%s\t%s%%\n", weekdayLabel(pt.Key), percent(pt.Value, weekdayTotal))
	}

	fmt.Fprint(tw, "\nSpend by payment type\t(%)\n")
	paymentTotal := sumString(views.PaymentSpend)
	for _, pt := range views.PaymentSpend {
		fmt.Fprintf(tw, "%s\t%s%%\n", paymentLabel(pt.Key), percent(pt.Value, paymentTotal))
	}

	writeRankingTable(tw, "Highest purchases", rankingRows(views.Top, currency))
	writeRankingTable(tw, "Lowest purchases", rankingRows(views.Bottom, currency))

	return tw.Flush()
}

func writeRankingTable(w io.Writer, title string, rows []RankingRow) {
	fmt.Fprintf(w, "\n%s\t(%s)\n", title, strconv.Itoa(len(rows))+" rows")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\n", row.Product, row.Date.Format(dateLayout), row.Amount.Display())
	}
}
