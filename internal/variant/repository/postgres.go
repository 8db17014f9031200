package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/fathurrm/tokopos/internal/model"
	"github.com/fathurrm/tokopos/pkg/apperr"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, v *model.Variant) error {
	query := `
        INSERT INTO variants (id, size, price, created_at)
        VALUES (:id, :size, :price, :created_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, v)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Variant, error) {
	var variant model.Variant
	query := `SELECT * FROM variants WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &variant, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &variant, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Variant, error) {
	variants := []model.Variant{}
	query := `SELECT * FROM variants ORDER BY created_at DESC`
	err := r.DB.SelectContext(ctx, &variants, query)
	return variants, err
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM variants WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
