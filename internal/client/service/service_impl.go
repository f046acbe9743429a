package service

import (
	"context"
	"strings"

	"github.com/StarickDosSantos/FactBP/internal/client/domain"
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
		log:   p.Log.Named("client.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Client, error) {
	return s.repo.List(ctx)
}

func (s *Service) Save(ctx context.Context, req domain.SaveClientRequest) (domain.Client, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Client{}, domain.ErrInvalidName
	}

	client := domain.Client{
		ID:      strings.TrimSpace(req.ID),
		Name:    name,
		Phone:   strings.TrimSpace(req.Phone),
		Address: strings.TrimSpace(req.Address),
	}
	if client.ID == "" {
		client.ID = s.genID.NewID()
	}

	if err := s.repo.Upsert(ctx, client); err != nil {
		return domain.Client{}, err
	}

	s.log.Debug("client saved", zap.String("client_id", client.ID))
	return client, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.ErrInvalidID
	}
	return s.repo.DeleteByID(ctx, id)
}
