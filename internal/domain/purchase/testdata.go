package purchase

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/FACorreiaa/order-insights/internal/domain/record"
)

// TestDataGenerator produces realistic order-history rows for tests
// using gofakeit.
type TestDataGenerator struct {
	faker *gofakeit.Faker
}

// NewTestDataGenerator creates a generator with a fixed seed so test
// runs are reproducible.
func NewTestDataGenerator(seed int64) *TestDataGenerator {
	return &TestDataGenerator{faker: gofakeit.New(seed)}
}

var testStatuses = []string{"Shipped", "Shipped", "Shipped", "Closed", StatusCancelled}

var testPaymentTypes = []string{"Visa", "Mastercard", "Amazon Gift Card", "Checking Account"}

// OrderRow generates one raw export row with a parsable date and a
// currency-formatted amount.
func (g *TestDataGenerator) OrderRow(currency string) record.RawRecord {
	date := g.faker.DateRange(
		time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
	)
	amount := g.faker.Price(0.99, 499.99)

	return record.RawRecord{
		"Order ID":                g.faker.UUID(),
		"OrderDate":               date.Format("2006-01-02T15:04:05Z"),
		"TotalOwed":               fmt.Sprintf("$%.2f", amount),
		"ProductName":             g.faker.ProductName(),
		"Currency":                currency,
		"OrderStatus":             g.faker.RandomString(testStatuses),
		"Payment Instrument Type": g.faker.RandomString(testPaymentTypes),
	}
}

// OrderRows generates n raw rows.
func (g *TestDataGenerator) OrderRows(n int, currency string) []record.RawRecord {
	rows := make([]record.RawRecord, n)
	for i := range rows {
		rows[i] = g.OrderRow(currency)
	}
	return rows
}
