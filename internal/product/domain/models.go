// Package domain holds the product catalog records and service contract.
package domain

import (
	"context"
	"errors"
)

// Product is a catalog entry for a cleaning service or good. The JSON
// tags are the persisted storage contract.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"nome"`
	Description string  `json:"descricao,omitempty"`
	Price       float64 `json:"preco"`
}

// EntityID implements storage.Entity.
func (p Product) EntityID() string { return p.ID }

type SaveProductRequest struct {
	// ID is empty for new products; the service assigns one.
	ID          string
	Name        string
	Description string
	Price       float64
}

type Repository interface {
	List(ctx context.Context) ([]Product, error)
	Upsert(ctx context.Context, product Product) error
	DeleteByID(ctx context.Context, id string) error
}

type Service interface {
	List(ctx context.Context) ([]Product, error)
	Save(ctx context.Context, req SaveProductRequest) (Product, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrInvalidName  = errors.New("invalid_name")
	ErrInvalidPrice = errors.New("invalid_price")
	ErrInvalidID    = errors.New("invalid_id")
)
