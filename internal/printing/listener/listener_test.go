package listener

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fathurrm/tokopos/internal/model"
	"github.com/fathurrm/tokopos/internal/order"
	"github.com/fathurrm/tokopos/internal/product/dto"
	"github.com/fathurrm/tokopos/pkg/logger"
)

// --- Fakes ---

type fakePrintingUC struct {
	ReceiptErr error
	Receipts   []string
}

func (f *fakePrintingUC) RecordLabelPrint(ctx context.Context, variantID string) (string, *model.RecentBarcode, error) {
	return "", nil, nil
}

func (f *fakePrintingUC) ListRecentBarcodes(ctx context.Context) ([]model.RecentBarcode, error) {
	return nil, nil
}

func (f *fakePrintingUC) RenderReceipt(ctx context.Context, orderID string) (string, error) {
	return "", nil
}

func (f *fakePrintingUC) RecordReceiptPrint(ctx context.Context, orderID string) error {
	f.Receipts = append(f.Receipts, orderID)
	return f.ReceiptErr
}

type fakeProductUC struct {
	FailID   string
	Deducted map[string]int
}

func newFakeProductUC() *fakeProductUC {
	return &fakeProductUC{Deducted: map[string]int{}}
}

func (f *fakeProductUC) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	return nil, nil
}

func (f *fakeProductUC) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	return nil, nil
}

func (f *fakeProductUC) GetProductByCode(ctx context.Context, code string) (*model.Product, error) {
	return nil, nil
}

func (f *fakeProductUC) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error) {
	return nil, 0, nil
}

func (f *fakeProductUC) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	return nil, nil
}

func (f *fakeProductUC) DeleteProduct(ctx context.Context, id string) error { return nil }

func (f *fakeProductUC) DeductStock(ctx context.Context, id string, quantity int) error {
	if id == f.FailID {
		return errors.New("db down")
	}
	f.Deducted[id] += quantity
	return nil
}

func completedEvent(items ...order.CompletedEventItem) []byte {
	data, _ := json.Marshal(order.CompletedEvent{
		EventID:   "event-1",
		EventType: order.EventTypeCompleted,
		Timestamp: time.Now(),
		Payload: order.CompletedPayload{
			OrderID: "order-1",
			Items:   items,
		},
	})
	return data
}

func newListener(printingUC *fakePrintingUC, productUC *fakeProductUC) *OrderListener {
	return NewOrderListener(nil, printingUC, productUC, logger.NewNop())
}

// --- processMessage ---

func TestProcessMessageRecordsReceiptAndDeductsStock(t *testing.T) {
	printingUC := &fakePrintingUC{}
	productUC := newFakeProductUC()
	l := newListener(printingUC, productUC)

	l.processMessage(context.Background(), completedEvent(
		order.CompletedEventItem{ProductID: "p1", ProductName: "Shirt", Quantity: 2},
		order.CompletedEventItem{ProductID: "p2", ProductName: "Cap", Quantity: 1},
	))

	require.Equal(t, []string{"order-1"}, printingUC.Receipts)
	assert.Equal(t, 2, productUC.Deducted["p1"])
	assert.Equal(t, 1, productUC.Deducted["p2"])
}

func TestProcessMessageIgnoresOtherEventTypes(t *testing.T) {
	printingUC := &fakePrintingUC{}
	productUC := newFakeProductUC()
	l := newListener(printingUC, productUC)

	data, err := json.Marshal(order.CompletedEvent{
		EventID:   "event-1",
		EventType: "OrderCancelled",
		Payload:   order.CompletedPayload{OrderID: "order-1"},
	})
	require.NoError(t, err)

	l.processMessage(context.Background(), data)

	assert.Empty(t, printingUC.Receipts)
	assert.Empty(t, productUC.Deducted)
}

func TestProcessMessageIgnoresMalformedPayload(t *testing.T) {
	printingUC := &fakePrintingUC{}
	productUC := newFakeProductUC()
	l := newListener(printingUC, productUC)

	l.processMessage(context.Background(), []byte(`{not json`))

	assert.Empty(t, printingUC.Receipts)
	assert.Empty(t, productUC.Deducted)
}

// A failed receipt log or a failed deduction must not stop processing of
// the remaining items.
func TestProcessMessageContinuesPastFailures(t *testing.T) {
	printingUC := &fakePrintingUC{ReceiptErr: errors.New("db down")}
	productUC := newFakeProductUC()
	productUC.FailID = "p1"
	l := newListener(printingUC, productUC)

	l.processMessage(context.Background(), completedEvent(
		order.CompletedEventItem{ProductID: "p1", ProductName: "Shirt", Quantity: 2},
		order.CompletedEventItem{ProductID: "", ProductName: "Unknown", Quantity: 1},
		order.CompletedEventItem{ProductID: "p3", ProductName: "Cap", Quantity: 3},
	))

	assert.Equal(t, 3, productUC.Deducted["p3"])
	assert.NotContains(t, productUC.Deducted, "p1")
	assert.NotContains(t, productUC.Deducted, "")
}
