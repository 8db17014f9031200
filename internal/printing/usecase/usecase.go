package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fathurrm/tokopos/internal/model"
	"github.com/fathurrm/tokopos/internal/order"
	"github.com/fathurrm/tokopos/internal/printing"
	"github.com/fathurrm/tokopos/internal/variant"
	"github.com/fathurrm/tokopos/pkg/apperr"
	"github.com/fathurrm/tokopos/pkg/logger"
)

const recentBarcodeLimit = 20

type printingUseCase struct {
	repo     printing.Repository
	variants variant.Repository
	orders   order.Repository
	logger   logger.ZapLogger
}

func NewPrintingUseCase(repo printing.Repository, variants variant.Repository, orders order.Repository, log logger.ZapLogger) printing.UseCase {
	return &printingUseCase{
		repo:     repo,
		variants: variants,
		orders:   orders,
		logger:   log,
	}
}

func (uc *printingUseCase) RecordLabelPrint(ctx context.Context, variantID string) (string, *model.RecentBarcode, error) {
	v, err := uc.variants.FindByID(ctx, variantID)
	if err != nil {
		return "", nil, apperr.Store("variant.find", err)
	}
	if v == nil {
		return "", nil, apperr.ErrNotFound
	}

	markup, err := printing.LabelHTML(v)
	if err != nil {
		return "", nil, err
	}

	now := time.Now()
	barcode := &model.RecentBarcode{
		ID:        uuid.New().String(),
		VariantID: v.ID,
		Size:      v.Size,
		Price:     v.Price,
		PrintedAt: now,
	}
	if err := uc.repo.AppendRecentBarcode(ctx, barcode); err != nil {
		return "", nil, apperr.Store("printing.recent_barcode", err)
	}

	// The print log is best-effort; the label already went out.
	uc.appendLog(ctx, model.PrintKindLabel, v.ID, now)

	return markup, barcode, nil
}

func (uc *printingUseCase) ListRecentBarcodes(ctx context.Context) ([]model.RecentBarcode, error) {
	barcodes, err := uc.repo.ListRecentBarcodes(ctx, recentBarcodeLimit)
	if err != nil {
		return nil, apperr.Store("printing.list_barcodes", err)
	}
	return barcodes, nil
}

func (uc *printingUseCase) RenderReceipt(ctx context.Context, orderID string) (string, error) {
	o, err := uc.orders.FindByID(ctx, orderID)
	if err != nil {
		return "", apperr.Store("order.find", err)
	}
	if o == nil {
		return "", apperr.ErrNotFound
	}

	markup, err := printing.ReceiptHTML(o)
	if err != nil {
		return "", err
	}

	uc.appendLog(ctx, model.PrintKindReceipt, o.ID, time.Now())

	return markup, nil
}

func (uc *printingUseCase) RecordReceiptPrint(ctx context.Context, orderID string) error {
	now := time.Now()
	return uc.repo.AppendPrintLog(ctx, &model.PrintLog{
		ID:          uuid.New().String(),
		Kind:        model.PrintKindReceipt,
		ReferenceID: orderID,
		PrintedAt:   now,
	})
}

func (uc *printingUseCase) appendLog(ctx context.Context, kind, referenceID string, at time.Time) {
	err := uc.repo.AppendPrintLog(ctx, &model.PrintLog{
		ID:          uuid.New().String(),
		Kind:        kind,
		ReferenceID: referenceID,
		PrintedAt:   at,
	})
	if err != nil {
		uc.logger.Error("failed to append print log", zap.Error(err), zap.String("reference_id", referenceID))
	}
}
