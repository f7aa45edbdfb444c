package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/FACorreiaa/order-insights/internal/domain/analytics"
)

// BuildWorkbook renders every view into an Excel workbook, one sheet
// per series plus a summary sheet keyed by the load ID.
func BuildWorkbook(views analytics.Views, currency string, loadID uuid.UUID) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := writeSummarySheet(f, currency, loadID); err != nil {
		return nil, err
	}
	if err := writeIntSeriesSheet(f, "Years", "Year", views.YearSpend, func(k int) any { return k }); err != nil {
		return nil, err
	}
	if err := writeIntSeriesSheet(f, "Months", "Month", views.MonthSpend, func(k int) any { return monthLabel(k) }); err != nil {
		return nil, err
	}
	if err := writeIntSeriesSheet(f, "Weekdays", "Weekday", views.WeekdayCount, func(k int) any { return weekdayLabel(k) }); err != nil {
		return nil, err
	}
	if err := writePaymentSheet(f, views.PaymentSpend); err != nil {
		return nil, err
	}
	if err := writeRankingSheet(f, "Highest Purchases", rankingRows(views.Top, currency)); err != nil {
		return nil, err
	}
	if err := writeRankingSheet(f, "Lowest Purchases", rankingRows(views.Bottom, currency)); err != nil {
		return nil, err
	}

	// Drop the default sheet so the summary comes first.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to remove default sheet: %w", err)
	}
	return f, nil
}

func writeSummarySheet(f *excelize.File, currency string, loadID uuid.UUID) error {
	const sheet = "Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}
	cells := []struct {
		cell  string
		value any
	}{
		{"A1", "Load ID"},
		{"B1", loadID.String()},
		{"A2", "Display currency"},
		{"B2", currency},
		{"A3", "Generated"},
		{"B3", time.Now().Format(time.RFC3339)},
	}
	for _, c := range cells {
		if err := f.SetCellValue(sheet, c.cell, c.value); err != nil {
			return fmt.Errorf("failed to write %s!%s: %w", sheet, c.cell, err)
		}
	}
	return nil
}

func writeIntSeriesSheet(f *excelize.File, sheet, keyHeader string, points []analytics.IntPoint, label func(int) any) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}
	if err := writeRow(f, sheet, 1, keyHeader, "Value"); err != nil {
		return err
	}
	for i, pt := range points {
		value, _ := pt.Value.Float64()
		if err := writeRow(f, sheet, i+2, label(pt.Key), value); err != nil {
			return err
		}
	}
	return nil
}

func writePaymentSheet(f *excelize.File, points []analytics.StringPoint) error {
	const sheet = "Payment Types"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}
	if err := writeRow(f, sheet, 1, "Payment Type", "Share"); err != nil {
		return err
	}
	total := sumString(points)
	for i, pt := range points {
		if err := writeRow(f, sheet, i+2, paymentLabel(pt.Key), percent(pt.Value, total)+"%"); err != nil {
			return err
		}
	}
	return nil
}

func writeRankingSheet(f *excelize.File, sheet string, rows []RankingRow) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}
	if err := writeRow(f, sheet, 1, "Product", "Date", "Amount"); err != nil {
		return err
	}
	for i, row := range rows {
		if err := writeRow(f, sheet, i+2, row.Product, row.Date.Format(dateLayout), row.Amount.Display()); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values ...any) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("failed to write %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}
