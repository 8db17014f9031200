package printing

import (
	"context"

	"github.com/fathurrm/tokopos/internal/model"
)

type UseCase interface {
	// RecordLabelPrint logs a label print for the given variant and
	// returns the rendered label markup.
	RecordLabelPrint(ctx context.Context, variantID string) (string, *model.RecentBarcode, error)
	ListRecentBarcodes(ctx context.Context) ([]model.RecentBarcode, error)
	// RenderReceipt renders printable receipt markup for an order. The
	// accompanying print log write is best-effort.
	RenderReceipt(ctx context.Context, orderID string) (string, error)
	// RecordReceiptPrint logs the receipt printed at the register when
	// an order completes.
	RecordReceiptPrint(ctx context.Context, orderID string) error
}
