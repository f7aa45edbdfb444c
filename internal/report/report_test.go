package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/FACorreiaa/order-insights/internal/domain/analytics"
)

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "Jan", monthLabel(1))
	assert.Equal(t, "Dec", monthLabel(12))
	assert.Equal(t, "", monthLabel(0))
	assert.Equal(t, "", monthLabel(13))
}

func TestWeekdayLabel(t *testing.T) {
	assert.Equal(t, "Sun", weekdayLabel(0))
	assert.Equal(t, "Sat", weekdayLabel(6))
	assert.Equal(t, "", weekdayLabel(-1))
	assert.Equal(t, "", weekdayLabel(7))
}

func TestPaymentLabel(t *testing.T) {
	assert.Equal(t, "Visa", paymentLabel("Visa"))
	assert.Equal(t, UnknownLabel, paymentLabel(""))
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name  string
		value string
		total string
		want  string
	}{
		{"even share", "25", "100", "25.0"},
		{"rounds to one decimal", "1", "3", "33.3"},
		{"full share", "10", "10", "100.0"},
		{"zero total", "5", "0", "0.0"},
		{"zero value", "0", "40", "0.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value := decimal.RequireFromString(tt.value)
			total := decimal.RequireFromString(tt.total)
			assert.Equal(t, tt.want, percent(value, total))
		})
	}
}

func TestSumSeries(t *testing.T) {
	ints := []analytics.IntPoint{
		{Key: 2021, Value: decimal.RequireFromString("10.5")},
		{Key: 2022, Value: decimal.RequireFromString("4.5")},
	}
	assert.True(t, sumInt(ints).Equal(decimal.RequireFromString("15")))

	strs := []analytics.StringPoint{
		{Key: "Visa", Value: decimal.RequireFromString("3")},
		{Key: "Amex", Value: decimal.RequireFromString("7")},
	}
	assert.True(t, sumString(strs).Equal(decimal.RequireFromString("10")))

	assert.True(t, sumInt(nil).IsZero())
	assert.True(t, sumString(nil).IsZero())
}
