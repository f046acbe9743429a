// Package domain contains the invoice records and service contract.
package domain

import (
	"context"
	"errors"
	"time"
)

// LineItem is one product/quantity/price entry on an invoice. Items are
// copied by value from the catalog at creation time, never referenced.
type LineItem struct {
	Name        string  `json:"nome"`
	Description string  `json:"descricao,omitempty"`
	Quantity    float64 `json:"quantidade"`
	Price       float64 `json:"preco"`
}

// Invoice is a generated factura. Totals are computed once at creation
// and stored; they are never recomputed on read. The JSON tags are the
// persisted storage contract.
type Invoice struct {
	ID              string     `json:"id"`
	Customer        string     `json:"cliente"`
	Items           []LineItem `json:"artigos"`
	TaxPercent      float64    `json:"imposto"`
	DiscountPercent float64    `json:"desconto"`
	Subtotal        float64    `json:"subtotal"`
	Total           float64    `json:"total"`
	IssuedAt        time.Time  `json:"data"`
	LogoURI         string     `json:"logoUri,omitempty"`
}

// EntityID implements storage.Entity.
func (i Invoice) EntityID() string { return i.ID }

type CreateInvoiceRequest struct {
	Customer        string
	Items           []LineItem
	TaxPercent      float64
	DiscountPercent float64
	LogoURI         string
}

type Repository interface {
	List(ctx context.Context) ([]Invoice, error)
	Upsert(ctx context.Context, invoice Invoice) error
	DeleteByID(ctx context.Context, id string) error
}

// Service covers the invoice flows. Invoices are immutable after
// creation; there is no update operation.
type Service interface {
	List(ctx context.Context) ([]Invoice, error)
	GetByID(ctx context.Context, id string) (Invoice, error)
	Create(ctx context.Context, req CreateInvoiceRequest) (Invoice, error)
	Delete(ctx context.Context, id string) error
	// ExportPDF renders the invoice to a PDF document on disk and
	// returns the written path.
	ExportPDF(ctx context.Context, id string) (string, error)
}

var (
	ErrInvalidCustomer = errors.New("invalid_customer")
	ErrNoItems         = errors.New("no_items")
	ErrInvalidItem     = errors.New("invalid_item")
	ErrInvalidID       = errors.New("invalid_id")
	ErrNotFound        = errors.New("not_found")
)
