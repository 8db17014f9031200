package dto

import "github.com/shopspring/decimal"

type CreateVariantInput struct {
	Size  string
	Price decimal.Decimal
}
