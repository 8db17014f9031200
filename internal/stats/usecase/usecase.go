package usecase

import (
	"context"
	"time"

	"github.com/fathurrm/tokopos/internal/order"
	"github.com/fathurrm/tokopos/internal/stats"
	"github.com/fathurrm/tokopos/pkg/apperr"
	"github.com/fathurrm/tokopos/pkg/logger"
)

type statsUseCase struct {
	orders order.Repository
	logger logger.ZapLogger
	now    func() time.Time
}

func NewStatsUseCase(orders order.Repository, log logger.ZapLogger) stats.UseCase {
	return &statsUseCase{
		orders: orders,
		logger: log,
		now:    time.Now,
	}
}

// Summarize folds the full order history; there is no pagination or
// windowing at this scale.
func (uc *statsUseCase) Summarize(ctx context.Context) (*stats.Summary, error) {
	history, err := uc.orders.FindAll(ctx)
	if err != nil {
		return nil, apperr.Store("stats.load_orders", err)
	}

	now := uc.now()
	summary := &stats.Summary{
		Today:        stats.SalesForPeriod(history, stats.PeriodDay, now),
		ThisMonth:    stats.SalesForPeriod(history, stats.PeriodMonth, now),
		ThisYear:     stats.SalesForPeriod(history, stats.PeriodYear, now),
		AverageOrder: stats.AverageOrderValue(history),
		OrderCount:   len(history),
		RecentSales:  stats.RecentSales(history, 5),
	}
	if top, ok := stats.TopProduct(history); ok {
		summary.TopProduct = &top
	}
	return summary, nil
}
