package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/StarickDosSantos/FactBP/internal/config"
	"github.com/StarickDosSantos/FactBP/internal/invoice/calc"
	"github.com/StarickDosSantos/FactBP/internal/invoice/domain"
	"github.com/StarickDosSantos/FactBP/internal/providers/pdf"
	"github.com/StarickDosSantos/FactBP/pkg/idgen"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Cfg      config.Config
	Log      *zap.Logger
	GenID    *idgen.Generator
	Repo     domain.Repository
	Renderer pdf.Renderer
}

type Service struct {
	cfg      config.Config
	log      *zap.Logger
	genID    *idgen.Generator
	repo     domain.Repository
	renderer pdf.Renderer
}

func New(p Params) domain.Service {
	return &Service{
		cfg:      p.Cfg,
		log:      p.Log.Named("invoice.service"),
		genID:    p.GenID,
		repo:     p.Repo,
		renderer: p.Renderer,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Invoice, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Invoice{}, domain.ErrInvalidID
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		return domain.Invoice{}, err
	}
	for _, invoice := range items {
		if invoice.ID == id {
			return invoice, nil
		}
	}
	return domain.Invoice{}, domain.ErrNotFound
}

// Create validates the request, computes the totals once and persists
// the invoice. The stored subtotal and total are snapshots; reads never
// recompute them.
func (s *Service) Create(ctx context.Context, req domain.CreateInvoiceRequest) (domain.Invoice, error) {
	customer := strings.TrimSpace(req.Customer)
	if customer == "" {
		return domain.Invoice{}, domain.ErrInvalidCustomer
	}
	if len(req.Items) == 0 {
		return domain.Invoice{}, domain.ErrNoItems
	}

	items := make([]domain.LineItem, 0, len(req.Items))
	for _, item := range req.Items {
		item.Name = strings.TrimSpace(item.Name)
		item.Description = strings.TrimSpace(item.Description)
		if item.Name == "" || item.Quantity <= 0 || item.Price < 0 {
			return domain.Invoice{}, domain.ErrInvalidItem
		}
		items = append(items, item)
	}

	subtotal := calc.Subtotal(items)
	total := calc.GrandTotal(
		subtotal,
		calc.TaxAmount(subtotal, req.TaxPercent),
		calc.DiscountAmount(subtotal, req.DiscountPercent),
	)

	invoice := domain.Invoice{
		ID:              s.genID.NewID(),
		Customer:        customer,
		Items:           items,
		TaxPercent:      req.TaxPercent,
		DiscountPercent: req.DiscountPercent,
		Subtotal:        subtotal,
		Total:           total,
		IssuedAt:        time.Now().UTC(),
		LogoURI:         strings.TrimSpace(req.LogoURI),
	}

	if err := s.repo.Upsert(ctx, invoice); err != nil {
		return domain.Invoice{}, err
	}

	s.log.Info("invoice created",
		zap.String("invoice_id", invoice.ID),
		zap.String("customer", invoice.Customer),
		zap.Float64("total", invoice.Total),
	)
	return invoice, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.ErrInvalidID
	}
	return s.repo.DeleteByID(ctx, id)
}

// ExportPDF renders the invoice and writes it under the configured
// export directory as factura_<id>.pdf.
func (s *Service) ExportPDF(ctx context.Context, id string) (string, error) {
	invoice, err := s.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	doc, err := s.renderer.RenderInvoice(ctx, invoice)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.cfg.ExportDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(s.cfg.ExportDir, fmt.Sprintf("factura_%s.pdf", invoice.ID))

	out, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, doc); err != nil {
		return "", err
	}

	s.log.Info("invoice exported", zap.String("invoice_id", invoice.ID), zap.String("path", path))
	return path, nil
}
