package calc

import (
	"testing"

	"github.com/StarickDosSantos/FactBP/internal/invoice/domain"
	"github.com/stretchr/testify/assert"
)

func TestLineTotal(t *testing.T) {
	assert.Equal(t, 200.0, LineTotal(domain.LineItem{Price: 100, Quantity: 2}))
	assert.Equal(t, 0.0, LineTotal(domain.LineItem{Price: 0, Quantity: 5}))
	assert.Equal(t, 37.5, LineTotal(domain.LineItem{Price: 25, Quantity: 1.5}))
}

func TestSubtotal(t *testing.T) {
	items := []domain.LineItem{
		{Name: "Limpeza geral", Price: 100, Quantity: 2},
		{Name: "Detergente", Price: 15.5, Quantity: 4},
	}
	assert.Equal(t, 262.0, Subtotal(items))
}

func TestSubtotalEmpty(t *testing.T) {
	assert.Equal(t, 0.0, Subtotal(nil))
	assert.Equal(t, 0.0, Subtotal([]domain.LineItem{}))
}

func TestTaxAndDiscountAmounts(t *testing.T) {
	assert.Equal(t, 28.0, TaxAmount(200, 14))
	assert.Equal(t, 0.0, TaxAmount(200, 0))
	assert.Equal(t, 20.0, DiscountAmount(200, 10))
	assert.Equal(t, 0.0, DiscountAmount(0, 50))
}

func TestGrandTotal(t *testing.T) {
	subtotal := 200.0
	tax := TaxAmount(subtotal, 14)
	discount := DiscountAmount(subtotal, 0)

	assert.Equal(t, 228.0, GrandTotal(subtotal, tax, discount))
}

func TestGrandTotalWithDiscount(t *testing.T) {
	subtotal := Subtotal([]domain.LineItem{{Name: "Serviço", Price: 50, Quantity: 10}})
	total := GrandTotal(subtotal, TaxAmount(subtotal, 14), DiscountAmount(subtotal, 5))

	// 500 + 70 - 25
	assert.Equal(t, 545.0, total)
}
