package order

import (
	"context"

	"github.com/fathurrm/tokopos/internal/model"
	"github.com/fathurrm/tokopos/internal/order/dto"
)

type UseCase interface {
	Checkout(ctx context.Context, input *dto.CheckoutInput) (*model.Order, error)
	GetOrder(ctx context.Context, id string) (*model.Order, error)
	ListOrders(ctx context.Context) ([]model.Order, error)
}

// EventPublisher publishes post-checkout events. Failures are logged,
// never surfaced to the buyer.
type EventPublisher interface {
	Publish(ctx context.Context, key, value []byte) error
}
