package product

import (
	"context"

	"github.com/fathurrm/tokopos/internal/model"
	"github.com/fathurrm/tokopos/internal/product/dto"
)

type Repository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id string) (*model.Product, error)
	FindByCode(ctx context.Context, code string) (*model.Product, error)
	FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id string) error
	IsCodeUnique(ctx context.Context, code, excludeID string) (bool, error)
	DecrementStock(ctx context.Context, id string, quantity int) error
}
