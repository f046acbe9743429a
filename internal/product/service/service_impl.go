package service

import (
	"context"
	"strings"

	"github.com/StarickDosSantos/FactBP/internal/product/domain"
	"github.com/StarickDosSantos/FactBP/pkg/idgen"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log   *zap.Logger
	GenID *idgen.Generator
	Repo  domain.Repository
}

type Service struct {
	log   *zap.Logger
	genID *idgen.Generator
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		log:   p.Log.Named("product.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) Save(ctx context.Context, req domain.SaveProductRequest) (domain.Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Product{}, domain.ErrInvalidName
	}
	if req.Price < 0 {
		return domain.Product{}, domain.ErrInvalidPrice
	}

	product := domain.Product{
		ID:          strings.TrimSpace(req.ID),
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Price:       req.Price,
	}
	if product.ID == "" {
		product.ID = s.genID.NewID()
	}

	if err := s.repo.Upsert(ctx, product); err != nil {
		return domain.Product{}, err
	}

	s.log.Debug("product saved", zap.String("product_id", product.ID))
	return product, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.ErrInvalidID
	}
	return s.repo.DeleteByID(ctx, id)
}
