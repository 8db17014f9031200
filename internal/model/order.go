package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID             string          `db:"id" json:"id"`
	CustomerName   string          `db:"customer_name" json:"customer_name"`
	PhoneNumber    *string         `db:"phone_number" json:"phone_number"`
	SubtotalAmount decimal.Decimal `db:"subtotal_amount" json:"subtotal_amount"`
	DiscountAmount decimal.Decimal `db:"discount_amount" json:"discount_amount"`
	TotalAmount    decimal.Decimal `db:"total_amount" json:"total_amount"`
	TenderedAmount decimal.Decimal `db:"tendered_amount" json:"tendered_amount"`
	ChangeAmount   decimal.Decimal `db:"change_amount" json:"change_amount"`
	PaymentStatus  string          `db:"payment_status" json:"payment_status"`
	PaymentMethod  string          `db:"payment_method" json:"payment_method"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
	Items          []OrderItem     `db:"-" json:"items"`
}

// OrderItem is a denormalized snapshot of the product at sale time.
// Historical receipts must not change when the catalog is edited later.
type OrderItem struct {
	ID                 string          `db:"id" json:"id"`
	OrderID            string          `db:"order_id" json:"order_id"`
	ProductID          string          `db:"product_id" json:"product_id"`
	ProductName        string          `db:"product_name" json:"product_name"`
	Price              decimal.Decimal `db:"price" json:"price"`
	Quantity           int             `db:"quantity" json:"quantity"`
	DiscountPercentage decimal.Decimal `db:"discount_percentage" json:"discount_percentage"`
	Subtotal           decimal.Decimal `db:"subtotal" json:"subtotal"`
	TotalAfterDiscount decimal.Decimal `db:"total_after_discount" json:"total_after_discount"`
}
