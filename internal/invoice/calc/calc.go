// Package calc derives invoice totals. Every function here is pure:
// no side effects, no storage access, fully deterministic. Rounding is
// a presentation concern and never happens here.
package calc

import "github.com/StarickDosSantos/FactBP/internal/invoice/domain"

// LineTotal returns price times quantity for a single item.
func LineTotal(item domain.LineItem) float64 {
	return item.Price * item.Quantity
}

// Subtotal sums LineTotal over all items. An empty sequence yields 0.
func Subtotal(items []domain.LineItem) float64 {
	var total float64
	for _, item := range items {
		total += LineTotal(item)
	}
	return total
}

// TaxAmount returns the tax portion for a subtotal at the given
// percentage rate.
func TaxAmount(subtotal, taxPercent float64) float64 {
	return subtotal * taxPercent / 100
}

// DiscountAmount returns the discount portion for a subtotal at the
// given percentage rate.
func DiscountAmount(subtotal, discountPercent float64) float64 {
	return subtotal * discountPercent / 100
}

// GrandTotal combines subtotal, tax and discount into the amount due.
func GrandTotal(subtotal, taxAmount, discountAmount float64) float64 {
	return subtotal + taxAmount - discountAmount
}
