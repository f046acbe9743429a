package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// InvoiceConfig holds business defaults applied to new invoices and
// their exported documents.
type InvoiceConfig struct {
	CurrencySuffix    string  `mapstructure:"currencySuffix"`
	DefaultTaxPercent float64 `mapstructure:"defaultTaxPercent"`
	CompanyName       string  `mapstructure:"companyName"`
	CompanyAddress    string  `mapstructure:"companyAddress"`
	CompanyPhone      string  `mapstructure:"companyPhone"`
}

func DefaultInvoiceConfig() InvoiceConfig {
	return InvoiceConfig{
		CurrencySuffix:    "Kz",
		DefaultTaxPercent: 14,
	}
}

// InvoiceConfigHolder exposes the current invoice defaults and keeps
// them fresh when the backing file changes.
type InvoiceConfigHolder struct {
	current atomic.Value // holds InvoiceConfig
}

func NewInvoiceConfigHolder() (*InvoiceConfigHolder, error) {
	v := viper.New()

	v.SetConfigName("invoice")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/factbp")
	v.AddConfigPath(".")

	v.SetEnvPrefix("FACTBP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultInvoiceConfig()
	v.SetDefault("invoice.currencySuffix", defaults.CurrencySuffix)
	v.SetDefault("invoice.defaultTaxPercent", defaults.DefaultTaxPercent)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg InvoiceConfig
	if err := v.UnmarshalKey("invoice", &cfg); err != nil {
		return nil, err
	}
	if err := validateInvoiceConfig(cfg); err != nil {
		return nil, err
	}

	holder := &InvoiceConfigHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated InvoiceConfig
		if err := v.UnmarshalKey("invoice", &updated); err != nil {
			log.Printf("[invoice-config] reload failed: %v", err)
			return
		}
		if err := validateInvoiceConfig(updated); err != nil {
			log.Printf("[invoice-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[invoice-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

func (h *InvoiceConfigHolder) Get() InvoiceConfig {
	return h.current.Load().(InvoiceConfig)
}

func validateInvoiceConfig(cfg InvoiceConfig) error {
	if strings.TrimSpace(cfg.CurrencySuffix) == "" {
		return errors.New("invoice.currencySuffix cannot be empty")
	}
	if cfg.DefaultTaxPercent < 0 || cfg.DefaultTaxPercent > 100 {
		return errors.New("invoice.defaultTaxPercent must be between 0 and 100")
	}
	return nil
}
