package listener

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/fathurrm/tokopos/internal/order"
	"github.com/fathurrm/tokopos/internal/printing"
	"github.com/fathurrm/tokopos/internal/product"
	"github.com/fathurrm/tokopos/pkg/broker"
	"github.com/fathurrm/tokopos/pkg/logger"
)

// OrderListener consumes completed-order events. It records the receipt
// printed at the register and deducts sold stock. Both actions are
// best-effort and deliberately outside the checkout transaction.
type OrderListener struct {
	consumer *broker.KafkaConsumer
	printing printing.UseCase
	products product.UseCase
	logger   logger.ZapLogger
}

func NewOrderListener(consumer *broker.KafkaConsumer, printingUC printing.UseCase, productUC product.UseCase, log logger.ZapLogger) *OrderListener {
	return &OrderListener{
		consumer: consumer,
		printing: printingUC,
		products: productUC,
		logger:   log,
	}
}

func (l *OrderListener) Start(ctx context.Context) {
	l.logger.Info("starting order event listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("stopping order event listener")
			return
		default:
			msg, err := l.consumer.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("failed to read kafka message", zap.Error(err))
				time.Sleep(1 * time.Second)
				continue
			}
			l.processMessage(ctx, msg.Value)
		}
	}
}

func (l *OrderListener) processMessage(ctx context.Context, value []byte) {
	var event order.CompletedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		l.logger.Error("failed to unmarshal order event", zap.Error(err))
		return
	}

	if event.EventType != order.EventTypeCompleted {
		return
	}

	l.logger.Info("processing order event", zap.String("order_id", event.Payload.OrderID))

	if err := l.printing.RecordReceiptPrint(ctx, event.Payload.OrderID); err != nil {
		l.logger.Error("failed to record receipt print",
			zap.String("order_id", event.Payload.OrderID),
			zap.Error(err),
		)
	}

	for _, item := range event.Payload.Items {
		if item.ProductID == "" {
			continue
		}
		if err := l.products.DeductStock(ctx, item.ProductID, item.Quantity); err != nil {
			l.logger.Error("failed to deduct stock for order item",
				zap.String("order_id", event.Payload.OrderID),
				zap.String("product_id", item.ProductID),
				zap.Error(err),
			)
		}
	}
}
