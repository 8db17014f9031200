package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Variant is a size/price combination used by the barcode label workflow.
// It is independent of the product catalog.
type Variant struct {
	ID        string          `db:"id" json:"id"`
	Size      string          `db:"size" json:"size"`
	Price     decimal.Decimal `db:"price" json:"price"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
}
