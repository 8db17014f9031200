package usecase

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/fathurrm/tokopos/internal/model"
	"github.com/fathurrm/tokopos/internal/order"
	"github.com/fathurrm/tokopos/internal/order/dto"
	"github.com/fathurrm/tokopos/pkg/apperr"
	"github.com/fathurrm/tokopos/pkg/logger"
)

const (
	defaultCustomerName  = "Cash Customer"
	defaultPaymentMethod = "cash"
)

var (
	phonePattern = regexp.MustCompile(`^[0-9+\- ]+$`)
	hundred      = decimal.NewFromInt(100)
)

type orderUseCase struct {
	repo      order.Repository
	publisher order.EventPublisher
	logger    logger.ZapLogger
}

func NewOrderUseCase(repo order.Repository, publisher order.EventPublisher, log logger.ZapLogger) order.UseCase {
	return &orderUseCase{
		repo:      repo,
		publisher: publisher,
		logger:    log,
	}
}

// Checkout validates the sale and persists the order header together with
// its denormalized item snapshots. Validation happens strictly before any
// write: a failed checkout leaves no trace in the store.
func (uc *orderUseCase) Checkout(ctx context.Context, input *dto.CheckoutInput) (*model.Order, error) {
	phone := strings.TrimSpace(input.PhoneNumber)
	if phone != "" && !phonePattern.MatchString(phone) {
		return nil, apperr.Validation("phone_number", "invalid phone format")
	}

	if len(input.Lines) == 0 {
		return nil, apperr.Validation("items", "cart is empty")
	}
	for _, l := range input.Lines {
		if l.ProductID == "" {
			return nil, apperr.Validation("items", "product_id is required")
		}
		if l.Price.IsNegative() {
			return nil, apperr.Validation("items", "price must not be negative")
		}
		if l.Quantity < 1 {
			return nil, apperr.Validation("items", "quantity must be at least 1")
		}
		if l.DiscountPercent.IsNegative() || l.DiscountPercent.GreaterThan(hundred) {
			return nil, apperr.Validation("items", "discount must be between 0 and 100")
		}
	}

	totals := order.Totals(input.Lines)
	if input.TenderedAmount.LessThan(totals.Total) {
		return nil, apperr.Validation("tendered_amount", "insufficient tender")
	}

	customerName := strings.TrimSpace(input.CustomerName)
	if customerName == "" {
		customerName = defaultCustomerName
	}
	paymentMethod := input.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = defaultPaymentMethod
	}

	o := &model.Order{
		ID:             uuid.New().String(),
		CustomerName:   customerName,
		SubtotalAmount: totals.Subtotal,
		DiscountAmount: totals.Discount,
		TotalAmount:    totals.Total,
		TenderedAmount: input.TenderedAmount,
		ChangeAmount:   input.TenderedAmount.Sub(totals.Total),
		PaymentStatus:  "completed",
		PaymentMethod:  paymentMethod,
		CreatedAt:      time.Now(),
	}
	if phone != "" {
		o.PhoneNumber = &phone
	}

	items := make([]model.OrderItem, len(input.Lines))
	for i, l := range input.Lines {
		items[i] = model.OrderItem{
			ID:                 uuid.New().String(),
			OrderID:            o.ID,
			ProductID:          l.ProductID,
			ProductName:        l.ProductName,
			Price:              l.Price,
			Quantity:           l.Quantity,
			DiscountPercentage: l.DiscountPercent,
			Subtotal:           order.LineSubtotal(l),
			TotalAfterDiscount: order.LineTotal(l),
		}
	}

	if err := uc.repo.CreateWithItems(ctx, o, items); err != nil {
		return nil, apperr.Store("order.create", err)
	}
	o.Items = items

	go uc.publishCompleted(context.Background(), o)

	return o, nil
}

func (uc *orderUseCase) publishCompleted(ctx context.Context, o *model.Order) {
	if uc.publisher == nil {
		return
	}

	event := order.CompletedEvent{
		EventID:   uuid.New().String(),
		EventType: order.EventTypeCompleted,
		Timestamp: time.Now(),
		Payload: order.CompletedPayload{
			OrderID: o.ID,
		},
	}
	for _, item := range o.Items {
		event.Payload.Items = append(event.Payload.Items, order.CompletedEventItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
		})
	}

	data, err := json.Marshal(event)
	if err != nil {
		uc.logger.Error("failed to marshal order event", zap.Error(err))
		return
	}
	if err := uc.publisher.Publish(ctx, []byte(o.ID), data); err != nil {
		uc.logger.Error("failed to publish order event", zap.Error(err), zap.String("order_id", o.ID))
	}
}

func (uc *orderUseCase) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	o, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Store("order.find", err)
	}
	if o == nil {
		return nil, apperr.ErrNotFound
	}
	return o, nil
}

func (uc *orderUseCase) ListOrders(ctx context.Context) ([]model.Order, error) {
	orders, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, apperr.Store("order.list", err)
	}
	return orders, nil
}
