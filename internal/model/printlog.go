package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PrintKindReceipt = "receipt"
	PrintKindLabel   = "label"
)

// PrintLog is an append-only record of a print event. Writes are
// best-effort and never tied to the business record they reference.
type PrintLog struct {
	ID          string    `db:"id" json:"id"`
	Kind        string    `db:"kind" json:"kind"`
	ReferenceID string    `db:"reference_id" json:"reference_id"`
	PrintedAt   time.Time `db:"printed_at" json:"printed_at"`
}

type RecentBarcode struct {
	ID        string          `db:"id" json:"id"`
	VariantID string          `db:"variant_id" json:"variant_id"`
	Size      string          `db:"size" json:"size"`
	Price     decimal.Decimal `db:"price" json:"price"`
	PrintedAt time.Time       `db:"printed_at" json:"printed_at"`
}
