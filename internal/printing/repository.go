package printing

import (
	"context"

	"github.com/fathurrm/tokopos/internal/model"
)

// Repository is append-only: print events are never updated or removed.
type Repository interface {
	AppendPrintLog(ctx context.Context, log *model.PrintLog) error
	AppendRecentBarcode(ctx context.Context, barcode *model.RecentBarcode) error
	ListRecentBarcodes(ctx context.Context, limit int) ([]model.RecentBarcode, error)
}
