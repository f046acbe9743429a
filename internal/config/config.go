package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string
	HTTPAddr    string

	StoreDriver string
	SQLitePath  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	ExportDir string
}

// Supported storage drivers.
const (
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		AppName:       getenv("APP_SERVICE", "factbp"),
		AppVersion:    getenv("APP_VERSION", "0.1.0"),
		Environment:   getenv("ENVIRONMENT", "development"),
		HTTPAddr:      getenv("HTTP_ADDR", ":8080"),
		StoreDriver:   normalizeDriver(getenv("STORE_DRIVER", DriverSQLite)),
		SQLitePath:    getenv("STORE_SQLITE_PATH", "factbp.db"),
		RedisAddr:     strings.TrimSpace(getenv("STORE_REDIS_ADDR", "localhost:6379")),
		RedisPassword: strings.TrimSpace(getenv("STORE_REDIS_PASSWORD", "")),
		RedisDB:       getenvInt("STORE_REDIS_DB", 0),
		ExportDir:     getenv("EXPORT_DIR", "exports"),
	}

	return cfg
}

// IsProduction reports whether the app runs in a production environment.
func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

func normalizeDriver(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case DriverRedis:
		return DriverRedis
	case DriverMemory:
		return DriverMemory
	default:
		return DriverSQLite
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}

// Module provides the environment-backed configuration.
var Module = fx.Module("config",
	fx.Provide(Load),
	fx.Provide(NewInvoiceConfigHolder),
)
