package kv

import (
	"context"
	"fmt"

	"github.com/StarickDosSantos/FactBP/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module provides the configured Store and closes it on shutdown.
var Module = fx.Module("kv.store",
	fx.Provide(New),
)

func New(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) (Store, error) {
	store, err := open(cfg)
	if err != nil {
		return nil, err
	}

	log.Info("kv store opened", zap.String("driver", cfg.StoreDriver))

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

func open(cfg config.Config) (Store, error) {
	switch cfg.StoreDriver {
	case config.DriverSQLite:
		return OpenSQLite(cfg.SQLitePath)
	case config.DriverRedis:
		return NewRedisStore(RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   cfg.AppName + ":",
		}), nil
	case config.DriverMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}
}
