// Package config assembles the runtime configuration for the bridge from the
// environment. All reads happen in Load; business logic only ever sees the
// resulting struct, so tests can fabricate any configuration they need.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// AppBaseURL is the public base URL of this service. The Gateway is given
	// redirect and webhook URLs built on top of it.
	AppBaseURL string

	// Shopify Admin API access.
	ShopifyStoreDomain string
	ShopifyAccessToken string
	ShopifyAPIVersion  string

	// Monobank merchant API access.
	MonoToken      string
	MonoAPIBaseURL string

	// Currency is the ISO alpha code recorded on Store transactions;
	// CurrencyNumeric is the ISO 4217 numeric code the Gateway expects.
	Currency        string
	CurrencyNumeric int

	// DepositPercent is the share of the order total charged in deposit mode.
	DepositPercent int

	// GatewayName is the display label recorded on Store transactions.
	GatewayName string

	// InvoiceValidity bounds how long the hosted payment page stays usable.
	InvoiceValidity time.Duration

	// UpstreamTimeout caps every outbound Store/Gateway call.
	UpstreamTimeout time.Duration

	HTTPAddr string

	// RedisAddr enables the webhook seen-event guard when non-empty.
	RedisAddr string
}

func Load() (*Config, error) {
	cfg := &Config{
		AppBaseURL:         os.Getenv("APP_BASE_URL"),
		ShopifyStoreDomain: os.Getenv("SHOPIFY_STORE_DOMAIN"),
		ShopifyAccessToken: os.Getenv("SHOPIFY_ACCESS_TOKEN"),
		ShopifyAPIVersion:  getEnv("SHOPIFY_API_VERSION", "2023-10"),
		MonoToken:          os.Getenv("MONO_TOKEN"),
		MonoAPIBaseURL:     getEnv("MONO_API_BASE_URL", "https://api.monobank.ua"),
		Currency:           getEnv("CURRENCY", "UAH"),
		CurrencyNumeric:    getEnvInt("CURRENCY_NUMERIC", 980),
		DepositPercent:     getEnvInt("DEPOSIT_PERCENT", 20),
		GatewayName:        getEnv("GATEWAY_NAME", "Plata by Mono | оплата карткою"),
		InvoiceValidity:    time.Duration(getEnvInt("INVOICE_VALIDITY_SECONDS", 86400)) * time.Second,
		UpstreamTimeout:    time.Duration(getEnvInt("UPSTREAM_TIMEOUT_SECONDS", 10)) * time.Second,
		HTTPAddr:           getEnv("HTTP_ADDR", ":8080"),
		RedisAddr:          os.Getenv("REDIS_ADDR"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the fields without which the bridge cannot talk to either
// upstream. Optional knobs keep their defaults and are not checked.
func (c *Config) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"APP_BASE_URL", c.AppBaseURL},
		{"SHOPIFY_STORE_DOMAIN", c.ShopifyStoreDomain},
		{"SHOPIFY_ACCESS_TOKEN", c.ShopifyAccessToken},
		{"MONO_TOKEN", c.MonoToken},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("config: %s is required", r.name)
		}
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
