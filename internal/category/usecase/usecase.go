package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fathurrm/tokopos/internal/category"
	"github.com/fathurrm/tokopos/internal/category/dto"
	"github.com/fathurrm/tokopos/internal/model"
	"github.com/fathurrm/tokopos/pkg/apperr"
	"github.com/fathurrm/tokopos/pkg/logger"
)

type categoryUseCase struct {
	repo   category.Repository
	logger logger.ZapLogger
}

func NewCategoryUseCase(repo category.Repository, log logger.ZapLogger) category.UseCase {
	return &categoryUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *categoryUseCase) CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperr.Validation("name", "name is required")
	}

	existing, err := uc.repo.FindByName(ctx, name)
	if err != nil {
		return nil, apperr.Store("category.find", err)
	}
	if existing != nil {
		return nil, apperr.Validation("name", "category already exists")
	}

	now := time.Now()
	cat := &model.Category{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name: name,
	}
	if input.Description != "" {
		cat.Description = &input.Description
	}

	if err := uc.repo.Create(ctx, cat); err != nil {
		return nil, apperr.Store("category.create", err)
	}
	return cat, nil
}

func (uc *categoryUseCase) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, apperr.Store("category.list", err)
	}
	return categories, nil
}

func (uc *categoryUseCase) DeleteCategory(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return apperr.Validation("name", "name is required")
	}
	return uc.repo.DeleteByName(ctx, name)
}
