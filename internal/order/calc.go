package order

import (
	"github.com/shopspring/decimal"

	"github.com/fathurrm/tokopos/internal/order/dto"
)

var hundred = decimal.NewFromInt(100)

// LineSubtotal is price multiplied by quantity, before any discount.
func LineSubtotal(l dto.CartLine) decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// LineDiscount is the discounted portion of the line subtotal.
func LineDiscount(l dto.CartLine) decimal.Decimal {
	return LineSubtotal(l).Mul(l.DiscountPercent).Div(hundred)
}

// LineTotal is the line subtotal after discount.
func LineTotal(l dto.CartLine) decimal.Decimal {
	return LineSubtotal(l).Sub(LineDiscount(l))
}

type CartTotals struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

// Totals aggregates a cart. Line order does not affect the result.
func Totals(lines []dto.CartLine) CartTotals {
	t := CartTotals{
		Subtotal: decimal.Zero,
		Discount: decimal.Zero,
		Total:    decimal.Zero,
	}
	for _, l := range lines {
		t.Subtotal = t.Subtotal.Add(LineSubtotal(l))
		t.Discount = t.Discount.Add(LineDiscount(l))
		t.Total = t.Total.Add(LineTotal(l))
	}
	return t
}
