package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	t.Run("comma-delimited export", func(t *testing.T) {
		input := "OrderDate,TotalOwed,ProductName,OrderStatus,Currency\n" +
			"2023-01-05,$10.00,USB cable,Shipped,USD\n" +
			"2023-01-06,$5.00,Phone stand,Shipped,USD\n"

		ds, err := ReadCSV(strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, []string{"OrderDate", "TotalOwed", "ProductName", "OrderStatus", "Currency"}, ds.Headers)
		require.Len(t, ds.Records, 2)
		assert.Equal(t, "$10.00", ds.Records[0]["TotalOwed"])
		assert.Equal(t, "Phone stand", ds.Records[1]["ProductName"])
	})

	t.Run("semicolon delimiter is detected", func(t *testing.T) {
		input := "OrderDate;TotalOwed;ProductName\n2023-01-05;$10.00;USB cable\n"

		ds, err := ReadCSV(strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, []string{"OrderDate", "TotalOwed", "ProductName"}, ds.Headers)
		require.Len(t, ds.Records, 1)
		assert.Equal(t, "USB cable", ds.Records[0]["ProductName"])
	})

	t.Run("tab delimiter is detected", func(t *testing.T) {
		input := "OrderDate\tTotalOwed\n2023-01-05\t$10.00\n"

		ds, err := ReadCSV(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, ds.Records, 1)
		assert.Equal(t, "$10.00", ds.Records[0]["TotalOwed"])
	})

	t.Run("quoted fields with embedded commas", func(t *testing.T) {
		input := "OrderDate,TotalOwed,ProductName\n" +
			`2023-01-05,"$1,234.56","Cable, braided, 2m"` + "\n"

		ds, err := ReadCSV(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, ds.Records, 1)
		assert.Equal(t, "$1,234.56", ds.Records[0]["TotalOwed"])
		assert.Equal(t, "Cable, braided, 2m", ds.Records[0]["ProductName"])
	})

	t.Run("UTF-8 BOM is stripped", func(t *testing.T) {
		input := "\xEF\xBB\xBFOrderDate,TotalOwed\n2023-01-05,$10.00\n"

		ds, err := ReadCSV(strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, "OrderDate", ds.Headers[0])
		assert.Equal(t, "$10.00", ds.Records[0]["TotalOwed"])
	})

	t.Run("latin-1 content is decoded", func(t *testing.T) {
		// 0xE9 is é in Latin-1 and invalid as standalone UTF-8.
		input := "OrderDate,ProductName\n2023-01-05,Caf\xE9 grinder\n"

		ds, err := ReadCSV(strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, "Café grinder", ds.Records[0]["ProductName"])
	})

	t.Run("blank rows are skipped", func(t *testing.T) {
		input := "OrderDate,TotalOwed\n2023-01-05,$10.00\n,\n2023-01-06,$5.00\n"

		ds, err := ReadCSV(strings.NewReader(input))
		require.NoError(t, err)
		assert.Len(t, ds.Records, 2)
	})

	t.Run("header-only file yields no records", func(t *testing.T) {
		ds, err := ReadCSV(strings.NewReader("OrderDate,TotalOwed\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"OrderDate", "TotalOwed"}, ds.Headers)
		assert.Empty(t, ds.Records)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := ReadCSV(strings.NewReader(""))
		assert.ErrorIs(t, err, ErrEmptyFile)

		_, err = ReadCSV(strings.NewReader("\n\n  \n"))
		assert.ErrorIs(t, err, ErrEmptyFile)
	})

	t.Run("header whitespace is trimmed", func(t *testing.T) {
		input := " OrderDate , TotalOwed \n2023-01-05,$10.00\n"

		ds, err := ReadCSV(strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, []string{"OrderDate", "TotalOwed"}, ds.Headers)
	})
}

func TestDetectDelimiter(t *testing.T) {
	tests := []struct {
		name string
		line string
		want rune
	}{
		{"comma", "a,b,c", ','},
		{"semicolon", "a;b;c", ';'},
		{"tab", "a\tb\tc", '\t'},
		{"pipe", "a|b|c", '|'},
		{"mixed picks the most frequent", "a;b;c;d,e", ';'},
		{"no delimiter defaults to comma", "single", ','},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detectDelimiter(tt.line))
		})
	}
}
