package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fathurrm/tokopos/internal/httpx"
	"github.com/fathurrm/tokopos/internal/printing"
	"github.com/fathurrm/tokopos/pkg/apperr"
	"github.com/fathurrm/tokopos/pkg/logger"
)

type PrintingHandler struct {
	uc     printing.UseCase
	logger logger.ZapLogger
}

func NewPrintingHandler(uc printing.UseCase, log logger.ZapLogger) *PrintingHandler {
	return &PrintingHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *PrintingHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/labels/print", h.PrintLabel)
	rg.GET("/labels/recent", h.RecentBarcodes)
	rg.GET("/orders/:id/receipt", h.Receipt)
}

type printLabelRequest struct {
	VariantID string `json:"variant_id" binding:"required"`
}

func (h *PrintingHandler) PrintLabel(c *gin.Context) {
	var req printLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, apperr.Validation("body", "invalid request body"))
		return
	}

	markup, barcode, err := h.uc.RecordLabelPrint(c.Request.Context(), req.VariantID)
	if err != nil {
		if !apperr.IsValidation(err) {
			h.logger.Error("failed to record label print", zap.Error(err))
		}
		httpx.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"barcode": barcode,
		"markup":  markup,
	})
}

func (h *PrintingHandler) RecentBarcodes(c *gin.Context) {
	barcodes, err := h.uc.ListRecentBarcodes(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list recent barcodes", zap.Error(err))
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, barcodes)
}

func (h *PrintingHandler) Receipt(c *gin.Context) {
	markup, err := h.uc.RenderReceipt(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.Error(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(markup))
}
