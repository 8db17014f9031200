package variant

import (
	"context"

	"github.com/fathurrm/tokopos/internal/model"
)

type Repository interface {
	Create(ctx context.Context, variant *model.Variant) error
	FindByID(ctx context.Context, id string) (*model.Variant, error)
	FindAll(ctx context.Context) ([]model.Variant, error)
	Delete(ctx context.Context, id string) error
}
