package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fathurrm/tokopos/internal/model"
	"github.com/fathurrm/tokopos/internal/variant/dto"
	"github.com/fathurrm/tokopos/pkg/apperr"
	"github.com/fathurrm/tokopos/pkg/logger"
)

type fakeVariantRepo struct {
	Saved    *model.Variant
	Variants []model.Variant
}

func (f *fakeVariantRepo) Create(ctx context.Context, v *model.Variant) error {
	f.Saved = v
	return nil
}

func (f *fakeVariantRepo) FindByID(ctx context.Context, id string) (*model.Variant, error) {
	for i := range f.Variants {
		if f.Variants[i].ID == id {
			return &f.Variants[i], nil
		}
	}
	return nil, nil
}

func (f *fakeVariantRepo) FindAll(ctx context.Context) ([]model.Variant, error) {
	return f.Variants, nil
}

func (f *fakeVariantRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func TestCreateVariantGeneratesToken(t *testing.T) {
	repo := &fakeVariantRepo{}
	uc := NewVariantUseCase(repo, logger.NewNop())

	v, err := uc.CreateVariant(context.Background(), &dto.CreateVariantInput{
		Size:  "XL",
		Price: decimal.NewFromInt(100),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, v.ID)
	assert.False(t, v.CreatedAt.IsZero())
	require.NotNil(t, repo.Saved)
	assert.Equal(t, v.ID, repo.Saved.ID)

	w, err := uc.CreateVariant(context.Background(), &dto.CreateVariantInput{
		Size:  "XL",
		Price: decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	assert.NotEqual(t, v.ID, w.ID)
}

func TestCreateVariantValidation(t *testing.T) {
	repo := &fakeVariantRepo{}
	uc := NewVariantUseCase(repo, logger.NewNop())

	_, err := uc.CreateVariant(context.Background(), &dto.CreateVariantInput{Size: " "})
	assert.True(t, apperr.IsValidation(err))

	_, err = uc.CreateVariant(context.Background(), &dto.CreateVariantInput{
		Size:  "M",
		Price: decimal.NewFromInt(-10),
	})
	assert.True(t, apperr.IsValidation(err))

	assert.Nil(t, repo.Saved)
}
