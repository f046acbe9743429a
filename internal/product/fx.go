package product

import (
	"github.com/StarickDosSantos/FactBP/internal/product/repository"
	"github.com/StarickDosSantos/FactBP/internal/product/service"
	"go.uber.org/fx"
)

var Module = fx.Module("product.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
