// Package provider abstracts the upstream vehicle-listings data sources.
// Callers never branch on which vendor is active; selection happens once,
// here, driven by configuration.
package provider

import (
	"context"

	"motorscout-service/internal/domain/vehicle"

	"go.uber.org/zap"
)

// Result is the raw outcome of one provider query, before local filtering.
type Result struct {
	Vehicles []vehicle.Vehicle
	Total    int
}

// ListingsProvider answers vehicle-inventory queries. Implementations fold
// their own failures into an empty Result; the orchestrator decides whether
// to fall back to the offline catalog.
type ListingsProvider interface {
	Name() string
	Search(ctx context.Context, criteria vehicle.SearchCriteria) (Result, error)
}

// Config selects and configures the active provider.
type Config struct {
	Provider          string // "marketcheck" or "offline"
	MarketCheckURL    string
	MarketCheckAPIKey string
}

// New returns the configured provider. An unset or unknown provider name,
// or a MarketCheck selection without a credential, degrades to the offline
// catalog.
func New(cfg Config, logger *zap.Logger) ListingsProvider {
	switch cfg.Provider {
	case "marketcheck":
		if cfg.MarketCheckAPIKey == "" {
			logger.Warn("marketcheck selected but no API key configured, using offline catalog")
			return NewOfflineProvider()
		}
		return NewMarketCheckProvider(cfg.MarketCheckURL, cfg.MarketCheckAPIKey, logger)
	case "offline", "":
		return NewOfflineProvider()
	default:
		logger.Warn("unknown listings provider, using offline catalog", zap.String("provider", cfg.Provider))
		return NewOfflineProvider()
	}
}
