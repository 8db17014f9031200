package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fathurrm/tokopos/internal/category/dto"
	"github.com/fathurrm/tokopos/internal/model"
	"github.com/fathurrm/tokopos/pkg/apperr"
	"github.com/fathurrm/tokopos/pkg/logger"
)

// --- Fake usecase ---

type fakeCategoryUC struct {
	Categories []model.Category
	CreateErr  error
	ListErr    error
	DeleteErr  error
	LastInput  *dto.CreateCategoryInput
}

func (f *fakeCategoryUC) CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error) {
	f.LastInput = input
	if f.CreateErr != nil {
		return nil, f.CreateErr
	}
	return &model.Category{BaseModel: model.BaseModel{ID: "cat-1"}, Name: input.Name}, nil
}

func (f *fakeCategoryUC) ListCategories(ctx context.Context) ([]model.Category, error) {
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	return f.Categories, nil
}

func (f *fakeCategoryUC) DeleteCategory(ctx context.Context, name string) error {
	return f.DeleteErr
}

func newRouter(uc *fakeCategoryUC) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewCategoryHandler(uc, logger.NewNop()).Register(router.Group("/api/v1"))
	return router
}

func TestCreateCategory(t *testing.T) {
	testCases := []struct {
		name           string
		body           string
		uc             *fakeCategoryUC
		expectedStatus int
	}{
		{
			name:           "success",
			body:           `{"name":"Drinks","description":"cold drinks"}`,
			uc:             &fakeCategoryUC{},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing name",
			body:           `{"description":"no name"}`,
			uc:             &fakeCategoryUC{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid json",
			body:           `{`,
			uc:             &fakeCategoryUC{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "duplicate name",
			body:           `{"name":"Drinks"}`,
			uc:             &fakeCategoryUC{CreateErr: apperr.Validation("name", "category already exists")},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := newRouter(tc.uc)
			req := httptest.NewRequest("POST", "/api/v1/categories", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedStatus, rec.Code)
		})
	}
}

func TestListCategories(t *testing.T) {
	uc := &fakeCategoryUC{
		Categories: []model.Category{
			{BaseModel: model.BaseModel{ID: "c1"}, Name: "Drinks"},
			{BaseModel: model.BaseModel{ID: "c2"}, Name: "Snacks"},
		},
	}
	router := newRouter(uc)

	req := httptest.NewRequest("GET", "/api/v1/categories", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []model.Category
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "Drinks", resp[0].Name)
}

func TestDeleteCategory(t *testing.T) {
	testCases := []struct {
		name           string
		uc             *fakeCategoryUC
		expectedStatus int
	}{
		{
			name:           "success",
			uc:             &fakeCategoryUC{},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "referenced by products",
			uc:             &fakeCategoryUC{DeleteErr: apperr.Conflict("category is referenced by products")},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "unknown category",
			uc:             &fakeCategoryUC{DeleteErr: apperr.ErrNotFound},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := newRouter(tc.uc)
			req := httptest.NewRequest("DELETE", "/api/v1/categories/Drinks", nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedStatus, rec.Code)
		})
	}
}
