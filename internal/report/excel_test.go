package report

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/order-insights/internal/domain/analytics"
)

func TestBuildWorkbook(t *testing.T) {
	loadID := uuid.New()
	f, err := BuildWorkbook(testViews(t), "USD", loadID)
	require.NoError(t, err)
	defer f.Close()

	t.Run("one sheet per view plus summary", func(t *testing.T) {
		assert.ElementsMatch(t, []string{
			"Summary", "Years", "Months", "Weekdays",
			"Payment Types", "Highest Purchases", "Lowest Purchases",
		}, f.GetSheetList())
	})

	t.Run("summary carries the load identity", func(t *testing.T) {
		got, err := f.GetCellValue("Summary", "B1")
		require.NoError(t, err)
		assert.Equal(t, loadID.String(), got)

		got, err = f.GetCellValue("Summary", "B2")
		require.NoError(t, err)
		assert.Equal(t, "USD", got)
	})

	t.Run("years sheet has header and data rows", func(t *testing.T) {
		rows, err := f.GetRows("Years")
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, []string{"Year", "Value"}, rows[0])
		assert.Equal(t, "2022", rows[1][0])
		assert.Equal(t, "2023", rows[2][0])
	})

	t.Run("month keys render as labels", func(t *testing.T) {
		rows, err := f.GetRows("Months")
		require.NoError(t, err)
		require.Len(t, rows, 4)
		assert.Equal(t, "Jan", rows[1][0])
		assert.Equal(t, "Feb", rows[2][0])
		assert.Equal(t, "Mar", rows[3][0])
	})

	t.Run("payment shares end in a percent sign", func(t *testing.T) {
		rows, err := f.GetRows("Payment Types")
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(rows), 2)
		for _, row := range rows[1:] {
			require.Len(t, row, 2)
			assert.Regexp(t, `^\d+\.\d%$`, row[1])
		}
	})

	t.Run("rankings carry formatted amounts", func(t *testing.T) {
		rows, err := f.GetRows("Highest Purchases")
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(rows), 2)
		assert.Equal(t, []string{"Product", "Date", "Amount"}, rows[0])
		assert.Equal(t, "USB cable", rows[1][0])
		assert.Equal(t, "05 Jan 2023", rows[1][1])
		assert.Equal(t, "$10.00", rows[1][2])
	})
}

func TestBuildWorkbookEmptyViews(t *testing.T) {
	f, err := BuildWorkbook(analytics.Views{}, "EUR", uuid.Nil)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Years")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
