package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_BASE_URL", "https://pay.cinq.com.ua")
	t.Setenv("SHOPIFY_STORE_DOMAIN", "example.myshopify.com")
	t.Setenv("SHOPIFY_ACCESS_TOKEN", "shpat-token")
	t.Setenv("MONO_TOKEN", "mono-token")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "2023-10", cfg.ShopifyAPIVersion)
	assert.Equal(t, "https://api.monobank.ua", cfg.MonoAPIBaseURL)
	assert.Equal(t, "UAH", cfg.Currency)
	assert.Equal(t, 980, cfg.CurrencyNumeric)
	assert.Equal(t, 20, cfg.DepositPercent)
	assert.Equal(t, 24*time.Hour, cfg.InvoiceValidity)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Empty(t, cfg.RedisAddr)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_BASE_URL", "https://pay.cinq.com.ua")
	t.Setenv("SHOPIFY_STORE_DOMAIN", "example.myshopify.com")
	t.Setenv("SHOPIFY_ACCESS_TOKEN", "shpat-token")
	t.Setenv("MONO_TOKEN", "mono-token")
	t.Setenv("DEPOSIT_PERCENT", "35")
	t.Setenv("INVOICE_VALIDITY_SECONDS", "3600")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 35, cfg.DepositPercent)
	assert.Equal(t, time.Hour, cfg.InvoiceValidity)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
}

func TestLoadMissingRequired(t *testing.T) {
	t.Setenv("APP_BASE_URL", "https://pay.cinq.com.ua")
	t.Setenv("SHOPIFY_STORE_DOMAIN", "example.myshopify.com")
	t.Setenv("SHOPIFY_ACCESS_TOKEN", "")
	t.Setenv("MONO_TOKEN", "mono-token")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHOPIFY_ACCESS_TOKEN")
}
