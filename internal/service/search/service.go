// Package search implements the inventory search pipeline: normalize the
// caller's criteria, geocode a free-text location if needed, query the
// configured listings provider, apply the local filter superset, rank and
// truncate. Every entry point, from the inventory route to the chat tools
// and the websocket channel, goes through this one orchestrator.
package search

import (
	"context"

	"motorscout-service/internal/domain/vehicle"
	xerrors "motorscout-service/internal/pkg/errors"
	"motorscout-service/internal/pkg/geo"
	"motorscout-service/internal/provider"

	"go.uber.org/zap"
)

type SearchService struct {
	primary         provider.ListingsProvider
	offline         provider.ListingsProvider
	geocoder        geo.Geocoder
	offlineFallback bool
	logger          *zap.Logger
}

func NewSearchService(
	primary provider.ListingsProvider,
	offline provider.ListingsProvider,
	geocoder geo.Geocoder,
	offlineFallback bool,
	logger *zap.Logger,
) *SearchService {
	return &SearchService{
		primary:         primary,
		offline:         offline,
		geocoder:        geocoder,
		offlineFallback: offlineFallback,
		logger:          logger,
	}
}

// Search runs one search call end to end. The only error it returns wraps
// xerrors.ErrValidation; every other failure mode, geocoding and provider
// failures and even a panic inside the pipeline, folds into a well-formed SearchResult
// so no caller ever sees a raw exception.
func (s *SearchService) Search(ctx context.Context, raw vehicle.SearchRequest) (result vehicle.SearchResult, err error) {
	criteria, err := Normalize(raw)
	if err != nil {
		return vehicle.SearchResult{}, err
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("search pipeline panic", zap.Any("panic", r))
			result = errorResult(criteria)
			err = nil
		}
	}()

	// Geocode only genuine free-text locations; a bare postal code is
	// passed to the provider natively. Unresolved just disables the radius
	// cutoff for this call.
	if !criteria.HasCoordinates() && criteria.Location != "" {
		if pt, ok := s.geocoder.Resolve(ctx, criteria.Location); ok {
			criteria.Latitude = &pt.Latitude
			criteria.Longitude = &pt.Longitude
		} else {
			s.logger.Warn("location unresolved, radius filter disabled",
				zap.String("location", criteria.Location),
			)
		}
	}

	active := s.primary
	res, qerr := active.Search(ctx, criteria)
	if qerr != nil {
		s.logger.Error("provider query failed",
			zap.String("provider", active.Name()),
			zap.Error(qerr),
		)
		res = provider.Result{}
	}

	// Fallback to the offline catalog is an explicit, logged decision so a
	// genuine zero-match outcome stays distinguishable from substituted
	// fixtures.
	if len(res.Vehicles) == 0 && s.offlineFallback && active.Name() != s.offline.Name() {
		s.logger.Warn("provider returned no vehicles, falling back to offline catalog",
			zap.String("provider", active.Name()),
		)
		active = s.offline
		if res, qerr = active.Search(ctx, criteria); qerr != nil {
			res = provider.Result{}
		}
	}

	filtered := applyFilters(res.Vehicles, criteria)
	rank(filtered)

	total := len(filtered)
	limited := filtered
	if len(limited) > criteria.Limit {
		limited = limited[:criteria.Limit]
	}

	return vehicle.SearchResult{
		Vehicles: limited,
		Total:    total,
		Source:   sourceLabel(active),
		Message:  summarize(filtered),
		Filters:  appliedFilters(criteria),
	}, nil
}

// VehicleByID resolves one vehicle from the offline catalog, used by the
// browse detail page and the scheduling flows.
func (s *SearchService) VehicleByID(ctx context.Context, id string) (vehicle.Vehicle, error) {
	res, err := s.offline.Search(ctx, vehicle.SearchCriteria{Limit: MaxLimit})
	if err != nil {
		return vehicle.Vehicle{}, xerrors.Wrap(err, "offline catalog")
	}
	for _, v := range res.Vehicles {
		if v.ID == id {
			return v, nil
		}
	}
	return vehicle.Vehicle{}, xerrors.ErrNotFound
}

func sourceLabel(p provider.ListingsProvider) string {
	if p.Name() == "offline" {
		return vehicle.SourceOffline
	}
	return vehicle.SourceProvider
}

func appliedFilters(c vehicle.SearchCriteria) vehicle.AppliedFilters {
	f := vehicle.AppliedFilters{
		Make:     c.Make,
		Model:    c.Model,
		Type:     c.Type,
		PriceMin: c.PriceMin,
		PriceMax: c.PriceMax,
	}
	if c.HasCoordinates() {
		f.Latitude = c.Latitude
		f.Longitude = c.Longitude
		f.RadiusMiles = c.RadiusMiles
	}
	return f
}

func errorResult(c vehicle.SearchCriteria) vehicle.SearchResult {
	return vehicle.SearchResult{
		Vehicles: []vehicle.Vehicle{},
		Total:    0,
		Source:   vehicle.SourceProvider,
		Message:  "Failed to search inventory. Please try again.",
		Filters:  appliedFilters(c),
		Error:    true,
	}
}
