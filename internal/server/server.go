// Package server exposes the client, product and invoice flows over
// HTTP. It is the stand-in for the mobile screens the core was built
// for: one discrete operation per request, composed as compute-then-save.
package server

import (
	"context"
	"net/http"
	"time"

	clientdomain "github.com/StarickDosSantos/FactBP/internal/client/domain"
	"github.com/StarickDosSantos/FactBP/internal/config"
	invoicedomain "github.com/StarickDosSantos/FactBP/internal/invoice/domain"
	"github.com/StarickDosSantos/FactBP/internal/kv"
	productdomain "github.com/StarickDosSantos/FactBP/internal/product/domain"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(registerRoutes),
	fx.Invoke(run),
)

func NewEngine(cfg config.Config) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

type ServerParams struct {
	fx.In

	Gin        *gin.Engine
	Cfg        config.Config
	InvoiceCfg *config.InvoiceConfigHolder
	Log        *zap.Logger
	Store      kv.Store
	ClientSvc  clientdomain.Service
	ProductSvc productdomain.Service
	InvoiceSvc invoicedomain.Service
}

type Server struct {
	engine     *gin.Engine
	cfg        config.Config
	invoiceCfg *config.InvoiceConfigHolder
	log        *zap.Logger
	store      kv.Store
	clientSvc  clientdomain.Service
	productSvc productdomain.Service
	invoiceSvc invoicedomain.Service
}

func NewServer(p ServerParams) *Server {
	return &Server{
		engine:     p.Gin,
		cfg:        p.Cfg,
		invoiceCfg: p.InvoiceCfg,
		log:        p.Log.Named("http.server"),
		store:      p.Store,
		clientSvc:  p.ClientSvc,
		productSvc: p.ProductSvc,
		invoiceSvc: p.InvoiceSvc,
	}
}

func registerRoutes(s *Server) {
	s.RegisterAPIRoutes()
}

// RegisterAPIRoutes mounts every flow under /api/v1.
func (s *Server) RegisterAPIRoutes() {
	api := s.engine.Group("/api/v1")

	api.GET("/clients", s.ListClients)
	api.POST("/clients", s.SaveClient)
	api.DELETE("/clients/:id", s.DeleteClient)

	api.GET("/products", s.ListProducts)
	api.POST("/products", s.SaveProduct)
	api.DELETE("/products/:id", s.DeleteProduct)

	api.GET("/invoices", s.ListInvoices)
	api.POST("/invoices", s.CreateInvoice)
	api.GET("/invoices/:id", s.GetInvoice)
	api.DELETE("/invoices/:id", s.DeleteInvoice)
	api.GET("/invoices/:id/pdf", s.ExportInvoicePDF)

	api.GET("/settings/invoice", s.GetInvoiceSettings)
	api.DELETE("/data", s.ClearData)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
