package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/fathurrm/tokopos/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) AppendPrintLog(ctx context.Context, l *model.PrintLog) error {
	query := `
        INSERT INTO print_logs (id, kind, reference_id, printed_at)
        VALUES (:id, :kind, :reference_id, :printed_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, l)
	return err
}

func (r *PGRepository) AppendRecentBarcode(ctx context.Context, b *model.RecentBarcode) error {
	query := `
        INSERT INTO recent_barcodes (id, variant_id, size, price, printed_at)
        VALUES (:id, :variant_id, :size, :price, :printed_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, b)
	return err
}

func (r *PGRepository) ListRecentBarcodes(ctx context.Context, limit int) ([]model.RecentBarcode, error) {
	barcodes := []model.RecentBarcode{}
	query := `SELECT * FROM recent_barcodes ORDER BY printed_at DESC LIMIT $1`
	err := r.DB.SelectContext(ctx, &barcodes, query, limit)
	return barcodes, err
}
