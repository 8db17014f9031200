package dto

import "github.com/shopspring/decimal"

type CreateProductInput struct {
	Name         string
	CategoryID   string
	CategoryName string // resolved to CategoryID when the id is not given
	Code         string
	Price        decimal.Decimal
	Stock        int
}

type UpdateProductInput struct {
	ID         string
	Name       string
	CategoryID string
	Code       string
	Price      decimal.Decimal
	Stock      int
}
