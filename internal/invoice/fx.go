package invoice

import (
	"github.com/StarickDosSantos/FactBP/internal/invoice/repository"
	"github.com/StarickDosSantos/FactBP/internal/invoice/service"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
