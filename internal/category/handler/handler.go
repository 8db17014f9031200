package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fathurrm/tokopos/internal/category"
	"github.com/fathurrm/tokopos/internal/category/dto"
	"github.com/fathurrm/tokopos/internal/httpx"
	"github.com/fathurrm/tokopos/pkg/apperr"
	"github.com/fathurrm/tokopos/pkg/logger"
)

type CategoryHandler struct {
	uc     category.UseCase
	logger logger.ZapLogger
}

func NewCategoryHandler(uc category.UseCase, log logger.ZapLogger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *CategoryHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/categories", h.Create)
	rg.GET("/categories", h.List)
	rg.DELETE("/categories/:name", h.Delete)
}

type createRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, apperr.Validation("body", "invalid request body"))
		return
	}

	cat, err := h.uc.CreateCategory(c.Request.Context(), &dto.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		if !apperr.IsValidation(err) {
			h.logger.Error("failed to create category", zap.Error(err))
		}
		httpx.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, cat)
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.uc.ListCategories(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list categories", zap.Error(err))
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.uc.DeleteCategory(c.Request.Context(), c.Param("name")); err != nil {
		if !apperr.IsValidation(err) {
			h.logger.Error("failed to delete category", zap.Error(err), zap.String("name", c.Param("name")))
		}
		httpx.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
