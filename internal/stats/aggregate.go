// Package stats derives summary metrics from the full order history.
package stats

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fathurrm/tokopos/internal/model"
)

type Period string

const (
	PeriodDay   Period = "day"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// SalesForPeriod sums total_amount over orders whose created_at falls in
// the same calendar day, month or year as the reference date, in the
// reference date's location.
func SalesForPeriod(orders []model.Order, period Period, ref time.Time) decimal.Decimal {
	sum := decimal.Zero
	for _, o := range orders {
		t := o.CreatedAt.In(ref.Location())
		match := false
		switch period {
		case PeriodDay:
			match = t.Year() == ref.Year() && t.Month() == ref.Month() && t.Day() == ref.Day()
		case PeriodMonth:
			match = t.Year() == ref.Year() && t.Month() == ref.Month()
		case PeriodYear:
			match = t.Year() == ref.Year()
		}
		if match {
			sum = sum.Add(o.TotalAmount)
		}
	}
	return sum
}

type ProductCount struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

// TopProduct returns the product with the highest summed quantity across
// all order items. Ties go to the product encountered first; the
// first-seen slice keeps iteration deterministic.
func TopProduct(orders []model.Order) (ProductCount, bool) {
	counts := map[string]*ProductCount{}
	firstSeen := []string{}

	for _, o := range orders {
		for _, item := range o.Items {
			pc, ok := counts[item.ProductID]
			if !ok {
				pc = &ProductCount{ProductID: item.ProductID, ProductName: item.ProductName}
				counts[item.ProductID] = pc
				firstSeen = append(firstSeen, item.ProductID)
			}
			pc.Quantity += item.Quantity
		}
	}

	if len(firstSeen) == 0 {
		return ProductCount{}, false
	}

	top := counts[firstSeen[0]]
	for _, id := range firstSeen[1:] {
		if counts[id].Quantity > top.Quantity {
			top = counts[id]
		}
	}
	return *top, true
}

// AverageOrderValue is zero when there are no orders.
func AverageOrderValue(orders []model.Order) decimal.Decimal {
	if len(orders) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, o := range orders {
		sum = sum.Add(o.TotalAmount)
	}
	return sum.Div(decimal.NewFromInt(int64(len(orders))))
}

// SaleLine is an order item annotated with its parent order's id and
// timestamp, for the recent-sales feed.
type SaleLine struct {
	OrderID   string          `json:"order_id"`
	OrderedAt time.Time       `json:"ordered_at"`
	Item      model.OrderItem `json:"item"`
}

// RecentSales flattens the items of the most recent orders. The limit
// applies to orders, not to the flattened item count.
func RecentSales(orders []model.Order, limit int) []SaleLine {
	if limit <= 0 {
		limit = 5
	}

	sorted := make([]model.Order, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	lines := []SaleLine{}
	for _, o := range sorted {
		for _, item := range o.Items {
			lines = append(lines, SaleLine{
				OrderID:   o.ID,
				OrderedAt: o.CreatedAt,
				Item:      item,
			})
		}
	}
	return lines
}
