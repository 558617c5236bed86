package search

import (
	"context"
	"testing"

	"motorscout-service/internal/domain/vehicle"
	xerrors "motorscout-service/internal/pkg/errors"
	"motorscout-service/internal/pkg/geo"
	"motorscout-service/internal/provider"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubProvider struct {
	name     string
	vehicles []vehicle.Vehicle
	err      error
	calls    int
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Search(ctx context.Context, criteria vehicle.SearchCriteria) (provider.Result, error) {
	s.calls++
	if s.err != nil {
		return provider.Result{}, s.err
	}
	return provider.Result{Vehicles: s.vehicles, Total: len(s.vehicles)}, nil
}

type stubGeocoder struct {
	pt     geo.Point
	ok     bool
	called bool
}

func (s *stubGeocoder) Resolve(ctx context.Context, location string) (geo.Point, bool) {
	s.called = true
	return s.pt, s.ok
}

func scenarioCatalog() []vehicle.Vehicle {
	return []vehicle.Vehicle{
		{
			ID: "v5", Make: "Toyota", Model: "Camry Hybrid", Year: 2024, Price: 28545,
			Type: vehicle.BodyHybrid, Available: true, Stock: 6,
		},
		{
			ID: "v1", Make: "Toyota", Model: "RAV4 Hybrid", Year: 2024, Price: 35990,
			Type: vehicle.BodySUV, Available: true, Stock: 5,
		},
	}
}

func newTestService(primary, offline provider.ListingsProvider, gc geo.Geocoder, fallback bool) *SearchService {
	return NewSearchService(primary, offline, gc, fallback, zap.NewNop())
}

func TestSearchService(t *testing.T) {
	ctx := context.Background()

	t.Run("UnconstrainedReturnsEverythingRanked", func(t *testing.T) {
		offline := provider.NewOfflineProvider()
		svc := newTestService(offline, offline, &stubGeocoder{}, false)

		result, err := svc.Search(ctx, vehicle.SearchRequest{})
		require.NoError(t, err)
		assert.Equal(t, 17, result.Total)
		assert.Len(t, result.Vehicles, 17)
		assert.Equal(t, vehicle.SourceOffline, result.Source)

		// Highest-stock available vehicle first, then non-increasing rank.
		assert.Equal(t, "v5", result.Vehicles[0].ID)
		for n := 1; n < len(result.Vehicles); n++ {
			prev, cur := result.Vehicles[n-1], result.Vehicles[n]
			if prev.Available == cur.Available && prev.Stock == cur.Stock {
				assert.LessOrEqual(t, prev.Price, cur.Price)
			}
		}
	})

	t.Run("CamryScenario", func(t *testing.T) {
		primary := &stubProvider{name: "marketcheck", vehicles: scenarioCatalog()}
		svc := newTestService(primary, provider.NewOfflineProvider(), &stubGeocoder{}, false)

		result, err := svc.Search(ctx, vehicle.SearchRequest{Make: "Toyota", PriceMax: f64(30000)})
		require.NoError(t, err)
		require.Len(t, result.Vehicles, 1)
		assert.Equal(t, "v5", result.Vehicles[0].ID)
		assert.Equal(t, 1, result.Total)
		assert.Equal(t, "Found 1 vehicle: 2024 Toyota Camry Hybrid for $28,545", result.Message)
		assert.Equal(t, vehicle.SourceProvider, result.Source)
	})

	t.Run("ImpossiblePriceRangeIsEmptyNotError", func(t *testing.T) {
		offline := provider.NewOfflineProvider()
		svc := newTestService(offline, offline, &stubGeocoder{}, false)

		result, err := svc.Search(ctx, vehicle.SearchRequest{PriceMin: f64(50000), PriceMax: f64(10000)})
		require.NoError(t, err)
		assert.Empty(t, result.Vehicles)
		assert.Zero(t, result.Total)
		assert.False(t, result.Error)
	})

	t.Run("GeocodeFailureSkipsRadiusFilter", func(t *testing.T) {
		offline := provider.NewOfflineProvider()
		gc := &stubGeocoder{ok: false}
		svc := newTestService(offline, offline, gc, false)

		result, err := svc.Search(ctx, vehicle.SearchRequest{
			Location:    "Rockville, MD",
			RadiusMiles: f64(25),
		})
		require.NoError(t, err)
		assert.True(t, gc.called)
		assert.NotEmpty(t, result.Vehicles, "unresolved location must not hide inventory")
		assert.False(t, result.Error)
	})

	t.Run("PostalCodeLocationBypassesGeocoding", func(t *testing.T) {
		offline := provider.NewOfflineProvider()
		gc := &stubGeocoder{ok: true, pt: geo.Point{Latitude: 39.08, Longitude: -77.15}}
		svc := newTestService(offline, offline, gc, false)

		result, err := svc.Search(ctx, vehicle.SearchRequest{Location: "20850", RadiusMiles: f64(25)})
		require.NoError(t, err)
		assert.False(t, gc.called, "5-digit locations go to the provider as zip, not the geocoder")
		assert.NotEmpty(t, result.Vehicles)
	})

	t.Run("FallbackWhenEnabledAndProviderEmpty", func(t *testing.T) {
		primary := &stubProvider{name: "marketcheck"}
		svc := newTestService(primary, provider.NewOfflineProvider(), &stubGeocoder{}, true)

		result, err := svc.Search(ctx, vehicle.SearchRequest{})
		require.NoError(t, err)
		assert.Equal(t, vehicle.SourceOffline, result.Source)
		assert.NotEmpty(t, result.Vehicles)
	})

	t.Run("NoFallbackWhenDisabled", func(t *testing.T) {
		primary := &stubProvider{name: "marketcheck"}
		svc := newTestService(primary, provider.NewOfflineProvider(), &stubGeocoder{}, false)

		result, err := svc.Search(ctx, vehicle.SearchRequest{})
		require.NoError(t, err)
		assert.Equal(t, vehicle.SourceProvider, result.Source)
		assert.Empty(t, result.Vehicles)
	})

	t.Run("ProviderErrorFoldsIntoEmptyResult", func(t *testing.T) {
		primary := &stubProvider{name: "marketcheck", err: xerrors.ErrProviderUnavailable}
		svc := newTestService(primary, provider.NewOfflineProvider(), &stubGeocoder{}, false)

		result, err := svc.Search(ctx, vehicle.SearchRequest{})
		require.NoError(t, err)
		assert.Empty(t, result.Vehicles)
	})

	t.Run("RepeatSearchesAreIdentical", func(t *testing.T) {
		offline := provider.NewOfflineProvider()
		svc := newTestService(offline, offline, &stubGeocoder{}, false)

		req := vehicle.SearchRequest{Make: "Toyota", Latitude: f64(34.0522), Longitude: f64(-118.2437)}
		first, err := svc.Search(ctx, req)
		require.NoError(t, err)
		second, err := svc.Search(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, idsOf(first.Vehicles), idsOf(second.Vehicles))
	})

	t.Run("ValidationErrorPropagates", func(t *testing.T) {
		offline := provider.NewOfflineProvider()
		svc := newTestService(offline, offline, &stubGeocoder{}, false)

		_, err := svc.Search(ctx, vehicle.SearchRequest{Type: "Blimp"})
		require.Error(t, err)
		assert.True(t, xerrors.Is(err, xerrors.ErrValidation))
	})

	t.Run("LimitTruncatesButTotalCountsAll", func(t *testing.T) {
		offline := provider.NewOfflineProvider()
		svc := newTestService(offline, offline, &stubGeocoder{}, false)

		result, err := svc.Search(ctx, vehicle.SearchRequest{Limit: 5})
		require.NoError(t, err)
		assert.Len(t, result.Vehicles, 5)
		assert.Equal(t, 17, result.Total)
	})
}

func TestVehicleByID(t *testing.T) {
	offline := provider.NewOfflineProvider()
	svc := newTestService(offline, offline, &stubGeocoder{}, false)

	v, err := svc.VehicleByID(context.Background(), "v5")
	require.NoError(t, err)
	assert.Equal(t, "Camry Hybrid", v.Model)

	_, err = svc.VehicleByID(context.Background(), "v999")
	assert.True(t, xerrors.Is(err, xerrors.ErrNotFound))
}
