package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fathurrm/tokopos/internal/model"
	"github.com/fathurrm/tokopos/internal/variant"
	"github.com/fathurrm/tokopos/internal/variant/dto"
	"github.com/fathurrm/tokopos/pkg/apperr"
	"github.com/fathurrm/tokopos/pkg/logger"
)

type variantUseCase struct {
	repo   variant.Repository
	logger logger.ZapLogger
}

func NewVariantUseCase(repo variant.Repository, log logger.ZapLogger) variant.UseCase {
	return &variantUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *variantUseCase) CreateVariant(ctx context.Context, input *dto.CreateVariantInput) (*model.Variant, error) {
	if strings.TrimSpace(input.Size) == "" {
		return nil, apperr.Validation("size", "size is required")
	}
	if input.Price.IsNegative() {
		return nil, apperr.Validation("price", "price must not be negative")
	}

	v := &model.Variant{
		ID:        uuid.New().String(),
		Size:      input.Size,
		Price:     input.Price,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, v); err != nil {
		return nil, apperr.Store("variant.create", err)
	}
	return v, nil
}

func (uc *variantUseCase) ListVariants(ctx context.Context) ([]model.Variant, error) {
	variants, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, apperr.Store("variant.list", err)
	}
	return variants, nil
}

func (uc *variantUseCase) DeleteVariant(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}
