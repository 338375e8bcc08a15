package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "rapido_data.json", cfg.App.DataFile)
	assert.Equal(t, 8.0, cfg.Pricing.DefaultBasePricePerKm)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATA_FILE", "/tmp/state.json")
	t.Setenv("BASE_PRICE_PER_KM", "12.5")

	cfg := Load()

	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, "/tmp/state.json", cfg.App.DataFile)
	assert.Equal(t, 12.5, cfg.Pricing.DefaultBasePricePerKm)
}

func TestLoad_InvalidFloatFallsBack(t *testing.T) {
	t.Setenv("BASE_PRICE_PER_KM", "cheap")

	cfg := Load()
	assert.Equal(t, 8.0, cfg.Pricing.DefaultBasePricePerKm)
}
