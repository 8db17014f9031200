package stats

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fathurrm/tokopos/internal/model"
)

func orderAt(id string, total int64, at time.Time, items ...model.OrderItem) model.Order {
	return model.Order{
		ID:          id,
		TotalAmount: decimal.NewFromInt(total),
		CreatedAt:   at,
		Items:       items,
	}
}

func item(productID, name string, qty int) model.OrderItem {
	return model.OrderItem{ProductID: productID, ProductName: name, Quantity: qty}
}

func TestSalesForPeriod(t *testing.T) {
	orders := []model.Order{
		orderAt("o1", 100, time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)),
		orderAt("o2", 250, time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)),
	}
	ref := time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC)

	day := SalesForPeriod(orders, PeriodDay, ref)
	month := SalesForPeriod(orders, PeriodMonth, ref)
	year := SalesForPeriod(orders, PeriodYear, ref)

	assert.True(t, day.IsZero(), "day sum = %s", day)
	assert.True(t, month.Equal(decimal.NewFromInt(100)), "month sum = %s", month)
	assert.True(t, year.Equal(decimal.NewFromInt(350)), "year sum = %s", year)
}

func TestSalesForPeriodSameDay(t *testing.T) {
	at := time.Date(2024, 3, 5, 8, 30, 0, 0, time.UTC)
	orders := []model.Order{
		orderAt("o1", 40, at),
		orderAt("o2", 60, at.Add(6*time.Hour)),
	}
	ref := time.Date(2024, 3, 5, 23, 0, 0, 0, time.UTC)

	assert.True(t, SalesForPeriod(orders, PeriodDay, ref).Equal(decimal.NewFromInt(100)))
}

func TestAverageOrderValue(t *testing.T) {
	assert.True(t, AverageOrderValue(nil).IsZero())

	orders := []model.Order{
		orderAt("o1", 100, time.Now()),
		orderAt("o2", 300, time.Now()),
	}
	assert.True(t, AverageOrderValue(orders).Equal(decimal.NewFromInt(200)))
}

func TestTopProduct(t *testing.T) {
	orders := []model.Order{
		orderAt("o1", 0, time.Now(),
			item("p1", "Shirt", 2),
			item("p2", "Cap", 5),
		),
		orderAt("o2", 0, time.Now(),
			item("p1", "Shirt", 4),
		),
	}

	top, ok := TopProduct(orders)
	require.True(t, ok)
	assert.Equal(t, "p1", top.ProductID)
	assert.Equal(t, "Shirt", top.ProductName)
	assert.Equal(t, 6, top.Quantity)
}

func TestTopProductTieGoesToFirstEncountered(t *testing.T) {
	orders := []model.Order{
		orderAt("o1", 0, time.Now(),
			item("p1", "Shirt", 3),
			item("p2", "Cap", 3),
		),
	}

	top, ok := TopProduct(orders)
	require.True(t, ok)
	assert.Equal(t, "p1", top.ProductID)
}

func TestTopProductEmptyHistory(t *testing.T) {
	_, ok := TopProduct(nil)
	assert.False(t, ok)
}

func TestRecentSales(t *testing.T) {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	orders := make([]model.Order, 0, 7)
	for i := 0; i < 7; i++ {
		orders = append(orders, orderAt(
			string(rune('a'+i)),
			10,
			base.Add(time.Duration(i)*time.Hour),
			item("p1", "Shirt", 1),
			item("p2", "Cap", 2),
		))
	}

	lines := RecentSales(orders, 5)

	// 5 most recent orders, 2 items each.
	require.Len(t, lines, 10)
	assert.Equal(t, "g", lines[0].OrderID)
	assert.Equal(t, base.Add(6*time.Hour), lines[0].OrderedAt)
	assert.Equal(t, "c", lines[8].OrderID)

	// Input slice must stay untouched.
	assert.Equal(t, "a", orders[0].ID)
}

func TestRecentSalesDefaultLimit(t *testing.T) {
	orders := []model.Order{
		orderAt("o1", 10, time.Now(), item("p1", "Shirt", 1)),
	}
	lines := RecentSales(orders, 0)
	assert.Len(t, lines, 1)
}
