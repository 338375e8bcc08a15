package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	App     AppConfig
	Pricing PricingConfig
}

// AppConfig holds process-level configuration.
type AppConfig struct {
	Environment string
	DataFile    string
}

// PricingConfig holds fare configuration.
type PricingConfig struct {
	// DefaultBasePricePerKm seeds the base price when no snapshot exists.
	DefaultBasePricePerKm float64
}

// Load loads configuration from a .env file (if present) and environment
// variables.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			DataFile:    getEnv("DATA_FILE", "rapido_data.json"),
		},
		Pricing: PricingConfig{
			DefaultBasePricePerKm: getFloatEnv("BASE_PRICE_PER_KM", 8.0),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
