package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/fathurrm/tokopos/internal/httpx"
	"github.com/fathurrm/tokopos/internal/order"
	"github.com/fathurrm/tokopos/internal/order/dto"
	"github.com/fathurrm/tokopos/pkg/apperr"
	"github.com/fathurrm/tokopos/pkg/logger"
)

type OrderHandler struct {
	uc     order.UseCase
	logger logger.ZapLogger
}

func NewOrderHandler(uc order.UseCase, log logger.ZapLogger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *OrderHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/orders/checkout", h.Checkout)
	rg.GET("/orders", h.List)
	rg.GET("/orders/:id", h.Get)
}

type checkoutRequest struct {
	CustomerName   string          `json:"customer_name"`
	PhoneNumber    string          `json:"phone_number"`
	PaymentMethod  string          `json:"payment_method"`
	TenderedAmount decimal.Decimal `json:"tendered_amount"`
	Items          []dto.CartLine  `json:"items" binding:"required"`
}

func (h *OrderHandler) Checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, apperr.Validation("body", "invalid request body"))
		return
	}

	o, err := h.uc.Checkout(c.Request.Context(), &dto.CheckoutInput{
		CustomerName:   req.CustomerName,
		PhoneNumber:    req.PhoneNumber,
		PaymentMethod:  req.PaymentMethod,
		TenderedAmount: req.TenderedAmount,
		Lines:          req.Items,
	})
	if err != nil {
		if !apperr.IsValidation(err) {
			h.logger.Error("checkout failed", zap.Error(err))
		}
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, o)
}

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.uc.ListOrders(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list orders", zap.Error(err))
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) Get(c *gin.Context) {
	o, err := h.uc.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}
