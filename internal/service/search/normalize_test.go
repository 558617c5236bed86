package search

import (
	"testing"

	"motorscout-service/internal/domain/vehicle"
	xerrors "motorscout-service/internal/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }
func i(v int) *int           { return &v }

func TestNormalize(t *testing.T) {
	t.Run("EmptyRequestMeansNoConstraints", func(t *testing.T) {
		c, err := Normalize(vehicle.SearchRequest{})
		require.NoError(t, err)
		assert.Empty(t, c.Make)
		assert.Nil(t, c.PriceMin)
		assert.Nil(t, c.PriceMax)
		assert.False(t, c.HasCoordinates())
		assert.Zero(t, c.RadiusMiles)
		assert.Equal(t, MaxLimit, c.Limit)
	})

	t.Run("FiveDigitLocationBecomesZip", func(t *testing.T) {
		c, err := Normalize(vehicle.SearchRequest{Location: "20850"})
		require.NoError(t, err)
		assert.Equal(t, "20850", c.Zip)
		assert.Empty(t, c.Location, "postal codes must not be geocoded")
	})

	t.Run("ExplicitZipWinsOverNumericLocation", func(t *testing.T) {
		c, err := Normalize(vehicle.SearchRequest{Location: "20850", Zip: "90210"})
		require.NoError(t, err)
		assert.Equal(t, "90210", c.Zip)
	})

	t.Run("CoordinatesTakePrecedenceOverLocation", func(t *testing.T) {
		c, err := Normalize(vehicle.SearchRequest{
			Location:  "Los Angeles, CA",
			Latitude:  f64(34.05),
			Longitude: f64(-118.24),
		})
		require.NoError(t, err)
		assert.True(t, c.HasCoordinates())
		assert.Empty(t, c.Location, "location text is ignored when coordinates are explicit")
	})

	t.Run("RadiusDefaultsWithCoordinates", func(t *testing.T) {
		c, err := Normalize(vehicle.SearchRequest{Latitude: f64(34.05), Longitude: f64(-118.24)})
		require.NoError(t, err)
		assert.Equal(t, float64(DefaultRadiusMiles), c.RadiusMiles)
	})

	t.Run("ExplicitRadiusKept", func(t *testing.T) {
		c, err := Normalize(vehicle.SearchRequest{
			Latitude: f64(34.05), Longitude: f64(-118.24), RadiusMiles: f64(100),
		})
		require.NoError(t, err)
		assert.Equal(t, 100.0, c.RadiusMiles)
	})

	t.Run("NoRadiusWithoutLocation", func(t *testing.T) {
		c, err := Normalize(vehicle.SearchRequest{Make: "Toyota"})
		require.NoError(t, err)
		assert.Zero(t, c.RadiusMiles)
	})

	t.Run("BodyTypeNormalizedCaseInsensitively", func(t *testing.T) {
		c, err := Normalize(vehicle.SearchRequest{Type: "suv"})
		require.NoError(t, err)
		assert.Equal(t, "SUV", c.Type)
	})

	t.Run("UnknownBodyTypeRejected", func(t *testing.T) {
		_, err := Normalize(vehicle.SearchRequest{Type: "Hovercraft"})
		require.Error(t, err)
		assert.True(t, xerrors.Is(err, xerrors.ErrValidation))
	})

	t.Run("NegativePriceRejected", func(t *testing.T) {
		_, err := Normalize(vehicle.SearchRequest{PriceMin: f64(-1)})
		require.Error(t, err)
		assert.True(t, xerrors.Is(err, xerrors.ErrValidation))
	})

	t.Run("NegativeRadiusRejected", func(t *testing.T) {
		_, err := Normalize(vehicle.SearchRequest{RadiusMiles: f64(-5)})
		require.Error(t, err)
		assert.True(t, xerrors.Is(err, xerrors.ErrValidation))
	})

	t.Run("LimitClamped", func(t *testing.T) {
		c, err := Normalize(vehicle.SearchRequest{Limit: 500})
		require.NoError(t, err)
		assert.Equal(t, MaxLimit, c.Limit)

		c, err = Normalize(vehicle.SearchRequest{Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, 10, c.Limit)
	})

	t.Run("ImpossiblePriceRangeIsNotAnError", func(t *testing.T) {
		c, err := Normalize(vehicle.SearchRequest{PriceMin: f64(50000), PriceMax: f64(10000)})
		require.NoError(t, err)
		assert.Equal(t, 50000.0, *c.PriceMin)
		assert.Equal(t, 10000.0, *c.PriceMax)
	})
}
