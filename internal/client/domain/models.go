// Package domain holds the client records and service contract.
package domain

import (
	"context"
	"errors"
)

// Client is a customer of the business. The JSON tags are the persisted
// storage contract.
type Client struct {
	ID      string `json:"id"`
	Name    string `json:"nome"`
	Phone   string `json:"telefone"`
	Address string `json:"morada"`
}

// EntityID implements storage.Entity.
func (c Client) EntityID() string { return c.ID }

type SaveClientRequest struct {
	// ID is empty for new clients; the service assigns one.
	ID      string
	Name    string
	Phone   string
	Address string
}

type Repository interface {
	List(ctx context.Context) ([]Client, error)
	Upsert(ctx context.Context, client Client) error
	DeleteByID(ctx context.Context, id string) error
}

type Service interface {
	List(ctx context.Context) ([]Client, error)
	Save(ctx context.Context, req SaveClientRequest) (Client, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrInvalidName = errors.New("invalid_name")
	ErrInvalidID   = errors.New("invalid_id")
)
