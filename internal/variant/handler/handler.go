package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/fathurrm/tokopos/internal/httpx"
	"github.com/fathurrm/tokopos/internal/variant"
	"github.com/fathurrm/tokopos/internal/variant/dto"
	"github.com/fathurrm/tokopos/pkg/apperr"
	"github.com/fathurrm/tokopos/pkg/logger"
)

type VariantHandler struct {
	uc     variant.UseCase
	logger logger.ZapLogger
}

func NewVariantHandler(uc variant.UseCase, log logger.ZapLogger) *VariantHandler {
	return &VariantHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *VariantHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/variants", h.Create)
	rg.GET("/variants", h.List)
	rg.DELETE("/variants/:id", h.Delete)
}

type createRequest struct {
	Size  string          `json:"size" binding:"required"`
	Price decimal.Decimal `json:"price"`
}

func (h *VariantHandler) Create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, apperr.Validation("body", "invalid request body"))
		return
	}

	v, err := h.uc.CreateVariant(c.Request.Context(), &dto.CreateVariantInput{
		Size:  req.Size,
		Price: req.Price,
	})
	if err != nil {
		if !apperr.IsValidation(err) {
			h.logger.Error("failed to create variant", zap.Error(err))
		}
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

func (h *VariantHandler) List(c *gin.Context) {
	variants, err := h.uc.ListVariants(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list variants", zap.Error(err))
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, variants)
}

func (h *VariantHandler) Delete(c *gin.Context) {
	if err := h.uc.DeleteVariant(c.Request.Context(), c.Param("id")); err != nil {
		httpx.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
