package service

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/StarickDosSantos/FactBP/internal/config"
	"github.com/StarickDosSantos/FactBP/internal/invoice/domain"
	"github.com/StarickDosSantos/FactBP/internal/kv"
	"github.com/StarickDosSantos/FactBP/internal/storage"
	"github.com/StarickDosSantos/FactBP/pkg/idgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubRenderer struct {
	doc []byte
}

func (r *stubRenderer) RenderInvoice(ctx context.Context, invoice domain.Invoice) (io.Reader, error) {
	return bytes.NewReader(r.doc), nil
}

func newTestService(t *testing.T) (domain.Service, kv.Store) {
	t.Helper()
	store := kv.NewMemoryStore()
	svc := New(Params{
		Cfg:      config.Config{ExportDir: t.TempDir()},
		Log:      zap.NewNop(),
		GenID:    idgen.New(),
		Repo:     storage.NewCollection[domain.Invoice](store, storage.KeyInvoices),
		Renderer: &stubRenderer{doc: []byte("%PDF-1.4 stub")},
	})
	return svc, store
}

func validRequest() domain.CreateInvoiceRequest {
	return domain.CreateInvoiceRequest{
		Customer:   "Joana Marques",
		TaxPercent: 14,
		Items: []domain.LineItem{
			{Name: "Limpeza geral", Price: 100, Quantity: 2},
		},
	}
}

func TestCreateComputesTotals(t *testing.T) {
	svc, _ := newTestService(t)

	invoice, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, invoice.ID)
	assert.False(t, invoice.IssuedAt.IsZero())
	assert.Equal(t, 200.0, invoice.Subtotal)
	assert.Equal(t, 228.0, invoice.Total)
}

func TestCreateWithDiscount(t *testing.T) {
	svc, _ := newTestService(t)

	req := validRequest()
	req.TaxPercent = 0
	req.DiscountPercent = 10

	invoice, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 200.0, invoice.Subtotal)
	assert.Equal(t, 180.0, invoice.Total)
}

func TestCreatePrependsNewest(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)
	second, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	invoices, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, invoices, 2)
	assert.Equal(t, second.ID, invoices[0].ID)
	assert.Equal(t, first.ID, invoices[1].ID)
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	req := validRequest()
	req.Customer = "  "
	_, err := svc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidCustomer)

	req = validRequest()
	req.Items = nil
	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrNoItems)

	req = validRequest()
	req.Items[0].Name = " "
	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidItem)

	req = validRequest()
	req.Items[0].Quantity = 0
	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidItem)

	req = validRequest()
	req.Items[0].Price = -5
	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidItem)
}

func TestTotalsAreSnapshots(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	// Tamper with the stored rate; the stored total must survive a read
	// untouched because totals are computed once at creation.
	col := storage.NewCollection[domain.Invoice](store, storage.KeyInvoices)
	tampered := created
	tampered.TaxPercent = 99
	require.NoError(t, col.Upsert(ctx, tampered))

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 99.0, got.TaxPercent)
	assert.Equal(t, 228.0, got.Total)
}

func TestGetByIDNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteInvoice(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	require.NoError(t, svc.Delete(ctx, created.ID)) // absent id is a no-op

	invoices, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, invoices)
}

func TestExportPDF(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	path, err := svc.ExportPDF(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "factura_"+created.ID+".pdf", filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 stub"), data)
}

func TestExportPDFUnknownInvoice(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.ExportPDF(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
