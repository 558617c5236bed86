package provider

import (
	"context"

	"motorscout-service/internal/catalog"
	"motorscout-service/internal/domain/vehicle"
)

// OfflineProvider serves the static in-memory catalog. It is both the
// degraded-mode provider (no upstream credential configured) and the
// fallback the orchestrator may consult when the upstream returns nothing.
// It hands back the whole catalog; the local filter stage applies every
// criterion, so native pre-filtering would be redundant here.
type OfflineProvider struct{}

func NewOfflineProvider() *OfflineProvider { return &OfflineProvider{} }

func (p *OfflineProvider) Name() string { return "offline" }

func (p *OfflineProvider) Search(ctx context.Context, criteria vehicle.SearchCriteria) (Result, error) {
	vehicles := catalog.Vehicles()
	return Result{Vehicles: vehicles, Total: len(vehicles)}, nil
}
