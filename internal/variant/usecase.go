package variant

import (
	"context"

	"github.com/fathurrm/tokopos/internal/model"
	"github.com/fathurrm/tokopos/internal/variant/dto"
)

type UseCase interface {
	CreateVariant(ctx context.Context, input *dto.CreateVariantInput) (*model.Variant, error)
	ListVariants(ctx context.Context) ([]model.Variant, error)
	DeleteVariant(ctx context.Context, id string) error
}
