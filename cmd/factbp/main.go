package main

import (
	"github.com/StarickDosSantos/FactBP/internal/client"
	"github.com/StarickDosSantos/FactBP/internal/config"
	"github.com/StarickDosSantos/FactBP/internal/invoice"
	"github.com/StarickDosSantos/FactBP/internal/kv"
	"github.com/StarickDosSantos/FactBP/internal/product"
	"github.com/StarickDosSantos/FactBP/internal/providers/pdf"
	"github.com/StarickDosSantos/FactBP/internal/server"
	"github.com/StarickDosSantos/FactBP/pkg/idgen"
	"github.com/StarickDosSantos/FactBP/pkg/log"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		log.Module,
		idgen.Module,
		kv.Module,

		// Functional domains
		client.Module,
		product.Module,
		invoice.Module,
		pdf.Module,

		server.Module,
	)
	app.Run()
}
