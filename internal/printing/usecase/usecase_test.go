package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fathurrm/tokopos/internal/model"
	"github.com/fathurrm/tokopos/pkg/apperr"
	"github.com/fathurrm/tokopos/pkg/logger"
)

// --- Fakes ---

type fakePrintRepo struct {
	LogErr     error
	BarcodeErr error
	Logs       []model.PrintLog
	Barcodes   []model.RecentBarcode
	Recent     []model.RecentBarcode
	LastLimit  int
}

func (f *fakePrintRepo) AppendPrintLog(ctx context.Context, log *model.PrintLog) error {
	if f.LogErr != nil {
		return f.LogErr
	}
	f.Logs = append(f.Logs, *log)
	return nil
}

func (f *fakePrintRepo) AppendRecentBarcode(ctx context.Context, barcode *model.RecentBarcode) error {
	if f.BarcodeErr != nil {
		return f.BarcodeErr
	}
	f.Barcodes = append(f.Barcodes, *barcode)
	return nil
}

func (f *fakePrintRepo) ListRecentBarcodes(ctx context.Context, limit int) ([]model.RecentBarcode, error) {
	f.LastLimit = limit
	return f.Recent, nil
}

type fakeVariantRepo struct {
	Variants map[string]*model.Variant
}

func (f *fakeVariantRepo) Create(ctx context.Context, v *model.Variant) error { return nil }

func (f *fakeVariantRepo) FindByID(ctx context.Context, id string) (*model.Variant, error) {
	return f.Variants[id], nil
}

func (f *fakeVariantRepo) FindAll(ctx context.Context) ([]model.Variant, error) { return nil, nil }

func (f *fakeVariantRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeOrderRepo struct {
	Orders map[string]*model.Order
}

func (f *fakeOrderRepo) CreateWithItems(ctx context.Context, o *model.Order, items []model.OrderItem) error {
	return nil
}

func (f *fakeOrderRepo) FindByID(ctx context.Context, id string) (*model.Order, error) {
	return f.Orders[id], nil
}

func (f *fakeOrderRepo) FindAll(ctx context.Context) ([]model.Order, error) { return nil, nil }

func xlVariant() *model.Variant {
	return &model.Variant{
		ID:        "variant-1",
		Size:      "XL",
		Price:     decimal.NewFromInt(100),
		CreatedAt: time.Now(),
	}
}

func paidOrder() *model.Order {
	return &model.Order{
		ID:           "order-1",
		CustomerName: "Cash Customer",
		TotalAmount:  decimal.NewFromInt(900),
		CreatedAt:    time.Now(),
	}
}

func newUC(prints *fakePrintRepo, variants *fakeVariantRepo, orders *fakeOrderRepo) *printingUseCase {
	if variants == nil {
		variants = &fakeVariantRepo{Variants: map[string]*model.Variant{}}
	}
	if orders == nil {
		orders = &fakeOrderRepo{Orders: map[string]*model.Order{}}
	}
	return NewPrintingUseCase(prints, variants, orders, logger.NewNop()).(*printingUseCase)
}

// --- Label printing ---

func TestRecordLabelPrint(t *testing.T) {
	prints := &fakePrintRepo{}
	variants := &fakeVariantRepo{Variants: map[string]*model.Variant{"variant-1": xlVariant()}}
	uc := newUC(prints, variants, nil)

	markup, barcode, err := uc.RecordLabelPrint(context.Background(), "variant-1")

	require.NoError(t, err)
	assert.Contains(t, markup, "variant-1")
	assert.Contains(t, markup, "XL")

	require.NotNil(t, barcode)
	assert.Equal(t, "variant-1", barcode.VariantID)
	assert.Equal(t, "XL", barcode.Size)

	require.Len(t, prints.Barcodes, 1)
	require.Len(t, prints.Logs, 1)
	assert.Equal(t, model.PrintKindLabel, prints.Logs[0].Kind)
	assert.Equal(t, "variant-1", prints.Logs[0].ReferenceID)
}

func TestRecordLabelPrintUnknownVariant(t *testing.T) {
	prints := &fakePrintRepo{}
	uc := newUC(prints, nil, nil)

	_, _, err := uc.RecordLabelPrint(context.Background(), "missing")

	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Empty(t, prints.Barcodes)
	assert.Empty(t, prints.Logs)
}

// The print log is best-effort: a failed log write must not fail the
// print action that already happened.
func TestRecordLabelPrintLogWriteFailureStillSucceeds(t *testing.T) {
	prints := &fakePrintRepo{LogErr: errors.New("db down")}
	variants := &fakeVariantRepo{Variants: map[string]*model.Variant{"variant-1": xlVariant()}}
	uc := newUC(prints, variants, nil)

	markup, barcode, err := uc.RecordLabelPrint(context.Background(), "variant-1")

	require.NoError(t, err)
	assert.NotEmpty(t, markup)
	assert.NotNil(t, barcode)
	assert.Len(t, prints.Barcodes, 1)
}

// The recent-barcodes list is the business record of the label workflow,
// so a failed write there does fail the operation.
func TestRecordLabelPrintBarcodeWriteFailure(t *testing.T) {
	prints := &fakePrintRepo{BarcodeErr: errors.New("db down")}
	variants := &fakeVariantRepo{Variants: map[string]*model.Variant{"variant-1": xlVariant()}}
	uc := newUC(prints, variants, nil)

	_, _, err := uc.RecordLabelPrint(context.Background(), "variant-1")

	require.Error(t, err)
	var se *apperr.StoreError
	assert.ErrorAs(t, err, &se)
}

func TestListRecentBarcodes(t *testing.T) {
	prints := &fakePrintRepo{Recent: []model.RecentBarcode{{ID: "b1"}, {ID: "b2"}}}
	uc := newUC(prints, nil, nil)

	barcodes, err := uc.ListRecentBarcodes(context.Background())

	require.NoError(t, err)
	assert.Len(t, barcodes, 2)
	assert.Equal(t, recentBarcodeLimit, prints.LastLimit)
}

// --- Receipts ---

func TestRenderReceipt(t *testing.T) {
	prints := &fakePrintRepo{}
	orders := &fakeOrderRepo{Orders: map[string]*model.Order{"order-1": paidOrder()}}
	uc := newUC(prints, nil, orders)

	markup, err := uc.RenderReceipt(context.Background(), "order-1")

	require.NoError(t, err)
	assert.Contains(t, markup, "order-1")

	require.Len(t, prints.Logs, 1)
	assert.Equal(t, model.PrintKindReceipt, prints.Logs[0].Kind)
	assert.Equal(t, "order-1", prints.Logs[0].ReferenceID)
}

func TestRenderReceiptLogWriteFailureStillReturnsMarkup(t *testing.T) {
	prints := &fakePrintRepo{LogErr: errors.New("db down")}
	orders := &fakeOrderRepo{Orders: map[string]*model.Order{"order-1": paidOrder()}}
	uc := newUC(prints, nil, orders)

	markup, err := uc.RenderReceipt(context.Background(), "order-1")

	require.NoError(t, err)
	assert.Contains(t, markup, "order-1")
}

func TestRenderReceiptUnknownOrder(t *testing.T) {
	uc := newUC(&fakePrintRepo{}, nil, nil)

	_, err := uc.RenderReceipt(context.Background(), "missing")

	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestRecordReceiptPrint(t *testing.T) {
	prints := &fakePrintRepo{}
	uc := newUC(prints, nil, nil)

	require.NoError(t, uc.RecordReceiptPrint(context.Background(), "order-1"))

	require.Len(t, prints.Logs, 1)
	assert.Equal(t, model.PrintKindReceipt, prints.Logs[0].Kind)
	assert.Equal(t, "order-1", prints.Logs[0].ReferenceID)
}
