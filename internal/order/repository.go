package order

import (
	"context"

	"github.com/fathurrm/tokopos/internal/model"
)

type Repository interface {
	// CreateWithItems persists the order header and its items in a
	// single transaction: either both land or neither does.
	CreateWithItems(ctx context.Context, order *model.Order, items []model.OrderItem) error
	FindByID(ctx context.Context, id string) (*model.Order, error)
	FindAll(ctx context.Context) ([]model.Order, error)
}
