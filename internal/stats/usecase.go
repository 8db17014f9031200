package stats

import (
	"context"

	"github.com/shopspring/decimal"
)

type Summary struct {
	Today        decimal.Decimal `json:"today"`
	ThisMonth    decimal.Decimal `json:"this_month"`
	ThisYear     decimal.Decimal `json:"this_year"`
	AverageOrder decimal.Decimal `json:"average_order"`
	OrderCount   int             `json:"order_count"`
	TopProduct   *ProductCount   `json:"top_product"`
	RecentSales  []SaleLine      `json:"recent_sales"`
}

type UseCase interface {
	Summarize(ctx context.Context) (*Summary, error)
}
