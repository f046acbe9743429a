package service

import (
	"context"
	"testing"

	"github.com/StarickDosSantos/FactBP/internal/kv"
	"github.com/StarickDosSantos/FactBP/internal/product/domain"
	"github.com/StarickDosSantos/FactBP/internal/storage"
	"github.com/StarickDosSantos/FactBP/pkg/idgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) domain.Service {
	t.Helper()
	return New(Params{
		Log:   zap.NewNop(),
		GenID: idgen.New(),
		Repo:  storage.NewCollection[domain.Product](kv.NewMemoryStore(), storage.KeyProducts),
	})
}

func TestSaveProduct(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	product, err := svc.Save(ctx, domain.SaveProductRequest{
		Name:        "Limpeza de escritório",
		Description: "Por hora",
		Price:       2500,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, product.ID)

	products, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, product, products[0])
}

func TestSaveRejectsNegativePrice(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Save(context.Background(), domain.SaveProductRequest{Name: "Serviço", Price: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)
}

func TestSaveAllowsZeroPrice(t *testing.T) {
	svc := newTestService(t)

	product, err := svc.Save(context.Background(), domain.SaveProductRequest{Name: "Amostra", Price: 0})
	require.NoError(t, err)
	assert.Equal(t, 0.0, product.Price)
}

func TestSaveRejectsBlankName(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Save(context.Background(), domain.SaveProductRequest{Price: 10})
	assert.ErrorIs(t, err, domain.ErrInvalidName)
}

func TestDeleteProduct(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	product, err := svc.Save(ctx, domain.SaveProductRequest{Name: "Serviço", Price: 10})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, product.ID))

	products, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}
