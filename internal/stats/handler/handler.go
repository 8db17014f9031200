package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fathurrm/tokopos/internal/httpx"
	"github.com/fathurrm/tokopos/internal/stats"
	"github.com/fathurrm/tokopos/pkg/logger"
)

type StatsHandler struct {
	uc     stats.UseCase
	logger logger.ZapLogger
}

func NewStatsHandler(uc stats.UseCase, log logger.ZapLogger) *StatsHandler {
	return &StatsHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *StatsHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/stats/summary", h.Summary)
}

func (h *StatsHandler) Summary(c *gin.Context) {
	summary, err := h.uc.Summarize(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to build stats summary", zap.Error(err))
		httpx.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
