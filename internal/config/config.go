package config

import (
	"os"
	"strings"
)

type AppConfig struct {
	// Server
	HTTPAddr string

	// Listings provider
	ListingsProvider  string
	MarketCheckURL    string
	MarketCheckAPIKey string
	OfflineFallback   bool

	// Geocoding
	NominatimURL     string
	GeocodeUserAgent string
}

// Load loads environment variables into AppConfig.
func Load() AppConfig {
	cfg := AppConfig{
		HTTPAddr: getEnv("HTTP_ADDR", ":8000"),

		ListingsProvider:  getEnv("LISTINGS_PROVIDER", "marketcheck"),
		MarketCheckURL:    getEnv("MARKETCHECK_BASE_URL", "https://api.marketcheck.com"),
		MarketCheckAPIKey: getEnv("MARKETCHECK_API_KEY", ""),
		OfflineFallback:   strings.ToLower(getEnv("OFFLINE_FALLBACK", "false")) == "true",

		NominatimURL:     getEnv("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org"),
		GeocodeUserAgent: getEnv("GEOCODE_USER_AGENT", "ScoutApp/1.0 (contact@example.com)"),
	}

	// With no upstream credential the offline catalog is all there is, so
	// fallback stays on regardless of the flag.
	if cfg.MarketCheckAPIKey == "" {
		cfg.OfflineFallback = true
	}

	return cfg
}

// --- Helper functions ---

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
