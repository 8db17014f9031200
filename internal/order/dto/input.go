package dto

import "github.com/shopspring/decimal"

// CartLine is one transient cart entry. It only exists between the UI
// and a successful checkout.
type CartLine struct {
	ProductID       string          `json:"product_id"`
	ProductName     string          `json:"product_name"`
	Price           decimal.Decimal `json:"price"`
	Quantity        int             `json:"quantity"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
}

type CheckoutInput struct {
	CustomerName   string
	PhoneNumber    string
	PaymentMethod  string
	TenderedAmount decimal.Decimal
	Lines          []CartLine
}
