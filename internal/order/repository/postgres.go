package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/fathurrm/tokopos/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

const insertOrder = `
    INSERT INTO orders (
        id, customer_name, phone_number, subtotal_amount, discount_amount,
        total_amount, tendered_amount, change_amount, payment_status,
        payment_method, created_at
    )
    VALUES (
        :id, :customer_name, :phone_number, :subtotal_amount, :discount_amount,
        :total_amount, :tendered_amount, :change_amount, :payment_status,
        :payment_method, :created_at
    )
`

const insertOrderItem = `
    INSERT INTO order_items (
        id, order_id, product_id, product_name, price, quantity,
        discount_percentage, subtotal, total_after_discount
    )
    VALUES (
        :id, :order_id, :product_id, :product_name, :price, :quantity,
        :discount_percentage, :subtotal, :total_after_discount
    )
`

func (r *PGRepository) CreateWithItems(ctx context.Context, o *model.Order, items []model.OrderItem) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.NamedExecContext(ctx, insertOrder, o); err != nil {
		return err
	}
	for i := range items {
		if _, err := tx.NamedExecContext(ctx, insertOrderItem, &items[i]); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Order, error) {
	var o model.Order
	err := r.DB.GetContext(ctx, &o, `SELECT * FROM orders WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	items := []model.OrderItem{}
	err = r.DB.SelectContext(ctx, &items, `SELECT * FROM order_items WHERE order_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Order, error) {
	orders := []model.Order{}
	err := r.DB.SelectContext(ctx, &orders, `SELECT * FROM orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}

	query, args, err := sqlx.In(`SELECT * FROM order_items WHERE order_id IN (?)`, ids)
	if err != nil {
		return nil, err
	}
	query = r.DB.Rebind(query)

	items := []model.OrderItem{}
	if err := r.DB.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}

	byOrder := make(map[string][]model.OrderItem, len(orders))
	for _, item := range items {
		byOrder[item.OrderID] = append(byOrder[item.OrderID], item)
	}
	for i := range orders {
		orders[i].Items = byOrder[orders[i].ID]
	}
	return orders, nil
}
