package client

import (
	"github.com/StarickDosSantos/FactBP/internal/client/repository"
	"github.com/StarickDosSantos/FactBP/internal/client/service"
	"go.uber.org/fx"
)

var Module = fx.Module("client.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
