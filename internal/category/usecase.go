package category

import (
	"context"

	"github.com/fathurrm/tokopos/internal/category/dto"
	"github.com/fathurrm/tokopos/internal/model"
)

type UseCase interface {
	CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	DeleteCategory(ctx context.Context, name string) error
}
