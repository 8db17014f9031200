package model

import "github.com/shopspring/decimal"

type Product struct {
	BaseModel
	CategoryID string          `db:"category_id" json:"category_id"`
	Name       string          `db:"name" json:"name"`
	Code       string          `db:"code" json:"code"` // barcode, unique
	Price      decimal.Decimal `db:"price" json:"price"`
	Stock      int             `db:"stock" json:"stock"`
	Category   *Category       `db:"-" json:"category,omitempty"` // joined data
}
