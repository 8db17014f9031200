package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/fathurrm/tokopos/internal/httpx"
	"github.com/fathurrm/tokopos/internal/product"
	"github.com/fathurrm/tokopos/internal/product/dto"
	"github.com/fathurrm/tokopos/pkg/apperr"
	"github.com/fathurrm/tokopos/pkg/logger"
)

type ProductHandler struct {
	uc     product.UseCase
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ProductHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/products", h.Create)
	rg.GET("/products", h.List)
	rg.GET("/products/code/:code", h.GetByCode)
	rg.PUT("/products/:id", h.Update)
	rg.DELETE("/products/:id", h.Delete)
}

type createRequest struct {
	Name         string          `json:"name" binding:"required"`
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Code         string          `json:"code" binding:"required"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, apperr.Validation("body", "invalid request body"))
		return
	}

	p, err := h.uc.CreateProduct(c.Request.Context(), &dto.CreateProductInput{
		Name:         req.Name,
		CategoryID:   req.CategoryID,
		CategoryName: req.CategoryName,
		Code:         req.Code,
		Price:        req.Price,
		Stock:        req.Stock,
	})
	if err != nil {
		if !apperr.IsValidation(err) {
			h.logger.Error("failed to create product", zap.Error(err))
		}
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *ProductHandler) List(c *gin.Context) {
	filters := &dto.ProductFilters{
		CategoryID:  c.Query("category_id"),
		SearchQuery: c.Query("search"),
		Page:        queryInt(c, "page", 1),
		PageSize:    queryInt(c, "page_size", 0),
	}

	products, total, err := h.uc.ListProducts(c.Request.Context(), filters)
	if err != nil {
		h.logger.Error("failed to list products", zap.Error(err))
		httpx.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"total":    total,
	})
}

func (h *ProductHandler) GetByCode(c *gin.Context) {
	p, err := h.uc.GetProductByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

type updateRequest struct {
	Name       string          `json:"name" binding:"required"`
	CategoryID string          `json:"category_id"`
	Code       string          `json:"code" binding:"required"`
	Price      decimal.Decimal `json:"price"`
	Stock      int             `json:"stock"`
}

func (h *ProductHandler) Update(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, apperr.Validation("body", "invalid request body"))
		return
	}

	p, err := h.uc.UpdateProduct(c.Request.Context(), &dto.UpdateProductInput{
		ID:         c.Param("id"),
		Name:       req.Name,
		CategoryID: req.CategoryID,
		Code:       req.Code,
		Price:      req.Price,
		Stock:      req.Stock,
	})
	if err != nil {
		if !apperr.IsValidation(err) {
			h.logger.Error("failed to update product", zap.Error(err))
		}
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.uc.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		h.logger.Error("failed to delete product", zap.Error(err))
		httpx.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func queryInt(c *gin.Context, key string, fallback int) int {
	if v := c.Query(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i >= 0 {
			return i
		}
	}
	return fallback
}
