package search

import (
	"testing"

	"motorscout-service/internal/domain/vehicle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testInventory() []vehicle.Vehicle {
	lat1, lon1 := 34.0522, -118.2437 // downtown LA
	lat2, lon2 := 37.7749, -122.4194 // SF
	mi := 28500

	return []vehicle.Vehicle{
		{
			ID: "t1", Make: "Toyota", Model: "Camry Hybrid", Year: 2024, Price: 28545,
			Type: vehicle.BodyHybrid, MPG: &vehicle.MPG{City: 51, Highway: 53},
			Features: []string{"JBL Audio", "Panoramic Roof"},
			Available: true, Stock: 6, Latitude: &lat1, Longitude: &lon1,
		},
		{
			ID: "t2", Make: "Toyota", Model: "RAV4 Hybrid", Year: 2024, Price: 35990,
			Type: vehicle.BodySUV, MPG: &vehicle.MPG{City: 41, Highway: 38},
			Features: []string{"AWD", "Apple CarPlay"},
			Available: true, Stock: 5, Latitude: &lat2, Longitude: &lon2,
		},
		{
			ID: "t3", Make: "Tesla", Model: "Model 3", Year: 2024, Price: 42990,
			Type: vehicle.BodyElectric, Range: 272,
			Features:  []string{"Autopilot"},
			Available: true, Stock: 4,
		},
		{
			ID: "t4", Make: "Toyota", Model: "Corolla", Year: 2022, Price: 21990,
			Type: vehicle.BodySedan, MPG: &vehicle.MPG{City: 31, Highway: 40},
			Features: []string{"Apple CarPlay"}, Mileage: &mi,
			Available: false, Stock: 0,
		},
	}
}

func TestApplyFilters(t *testing.T) {
	t.Run("NoCriteriaKeepsEverything", func(t *testing.T) {
		out := applyFilters(testInventory(), vehicle.SearchCriteria{})
		assert.Len(t, out, 4)
	})

	t.Run("MakeSubstringCaseInsensitive", func(t *testing.T) {
		out := applyFilters(testInventory(), vehicle.SearchCriteria{Make: "toy"})
		assert.Len(t, out, 3)
	})

	t.Run("ModelSubstring", func(t *testing.T) {
		out := applyFilters(testInventory(), vehicle.SearchCriteria{Model: "hybrid"})
		assert.Len(t, out, 2)
	})

	t.Run("QueryMatchesYearMakeModelAndType", func(t *testing.T) {
		out := applyFilters(testInventory(), vehicle.SearchCriteria{Query: "2024 toyota"})
		assert.Len(t, out, 2)

		out = applyFilters(testInventory(), vehicle.SearchCriteria{Query: "electric"})
		require.Len(t, out, 1)
		assert.Equal(t, "t3", out[0].ID)
	})

	t.Run("TypeExactMatch", func(t *testing.T) {
		out := applyFilters(testInventory(), vehicle.SearchCriteria{Type: "suv"})
		require.Len(t, out, 1)
		assert.Equal(t, "t2", out[0].ID)
	})

	t.Run("PriceBounds", func(t *testing.T) {
		out := applyFilters(testInventory(), vehicle.SearchCriteria{PriceMin: f64(25000), PriceMax: f64(40000)})
		assert.Len(t, out, 2)
	})

	t.Run("ImpossiblePriceRangeYieldsEmpty", func(t *testing.T) {
		out := applyFilters(testInventory(), vehicle.SearchCriteria{PriceMin: f64(40000), PriceMax: f64(30000)})
		assert.Empty(t, out)
	})

	t.Run("YearBounds", func(t *testing.T) {
		out := applyFilters(testInventory(), vehicle.SearchCriteria{YearMin: i(2023)})
		assert.Len(t, out, 3)
		out = applyFilters(testInventory(), vehicle.SearchCriteria{YearMax: i(2022)})
		assert.Len(t, out, 1)
	})

	t.Run("MPGMinExcludesVehiclesWithoutMPG", func(t *testing.T) {
		// The Model 3 carries only a range figure; it fails an MPG filter.
		out := applyFilters(testInventory(), vehicle.SearchCriteria{Type: "Electric", MPGMin: f64(30)})
		assert.Empty(t, out)
	})

	t.Run("MPGMinUsesCityHighwayAverage", func(t *testing.T) {
		out := applyFilters(testInventory(), vehicle.SearchCriteria{MPGMin: f64(45)})
		require.Len(t, out, 1)
		assert.Equal(t, "t1", out[0].ID) // (51+53)/2 = 52
	})

	t.Run("MileageMaxPassesUnrecordedMileage", func(t *testing.T) {
		out := applyFilters(testInventory(), vehicle.SearchCriteria{MileageMax: i(10000)})
		// t4 has 28,500 miles and is excluded; the rest have no mileage.
		assert.Len(t, out, 3)
	})

	t.Run("FeatureKeywordAnyMatch", func(t *testing.T) {
		out := applyFilters(testInventory(), vehicle.SearchCriteria{Features: []string{"carplay"}})
		assert.Len(t, out, 2)

		out = applyFilters(testInventory(), vehicle.SearchCriteria{Features: []string{"carplay", "autopilot"}})
		assert.Len(t, out, 3)
	})

	t.Run("RadiusExcludesFarVehiclesKeepsCoordinateless", func(t *testing.T) {
		lat, lon := 34.0522, -118.2437
		out := applyFilters(testInventory(), vehicle.SearchCriteria{
			Latitude: &lat, Longitude: &lon, RadiusMiles: 25,
		})
		ids := idsOf(out)
		assert.Contains(t, ids, "t1") // at the origin
		assert.NotContains(t, ids, "t2") // SF, ~347 miles out
		assert.Contains(t, ids, "t3") // no coordinates, always passes
		assert.Contains(t, ids, "t4")
	})

	t.Run("RadiusSkippedWithoutCoordinates", func(t *testing.T) {
		out := applyFilters(testInventory(), vehicle.SearchCriteria{RadiusMiles: 25})
		assert.Len(t, out, 4)
	})
}

func TestRank(t *testing.T) {
	t.Run("AvailabilityStockPrice", func(t *testing.T) {
		vehicles := testInventory()
		rank(vehicles)
		assert.Equal(t, []string{"t1", "t2", "t3", "t4"}, idsOf(vehicles))
	})

	t.Run("StockBreaksPriceTie", func(t *testing.T) {
		vehicles := []vehicle.Vehicle{
			{ID: "low", Available: true, Stock: 2, Price: 30000},
			{ID: "high", Available: true, Stock: 5, Price: 30000},
		}
		rank(vehicles)
		assert.Equal(t, []string{"high", "low"}, idsOf(vehicles))
	})

	t.Run("UnavailableSortsLast", func(t *testing.T) {
		vehicles := []vehicle.Vehicle{
			{ID: "gone", Available: false, Stock: 9, Price: 1},
			{ID: "here", Available: true, Stock: 1, Price: 99999},
		}
		rank(vehicles)
		assert.Equal(t, []string{"here", "gone"}, idsOf(vehicles))
	})
}

func TestSummarize(t *testing.T) {
	t.Run("NoMatches", func(t *testing.T) {
		assert.Equal(t,
			"No vehicles found matching your criteria. Try adjusting your search parameters.",
			summarize(nil))
	})

	t.Run("SingleMatch", func(t *testing.T) {
		msg := summarize([]vehicle.Vehicle{{
			Make: "Toyota", Model: "Camry Hybrid", Year: 2024, Price: 28545,
		}})
		assert.Equal(t, "Found 1 vehicle: 2024 Toyota Camry Hybrid for $28,545", msg)
	})

	t.Run("MultipleWithPriceRange", func(t *testing.T) {
		msg := summarize([]vehicle.Vehicle{
			{Price: 21990}, {Price: 35990},
		})
		assert.Equal(t, "Found 2 vehicles matching your criteria ranging from $21,990 to $35,990", msg)
	})

	t.Run("MultipleSamePriceOmitsRange", func(t *testing.T) {
		msg := summarize([]vehicle.Vehicle{
			{Price: 30000}, {Price: 30000},
		})
		assert.Equal(t, "Found 2 vehicles matching your criteria", msg)
	})
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "0", formatPrice(0))
	assert.Equal(t, "999", formatPrice(999))
	assert.Equal(t, "28,545", formatPrice(28545))
	assert.Equal(t, "1,062,995", formatPrice(1062995))
}

func idsOf(vehicles []vehicle.Vehicle) []string {
	ids := make([]string, len(vehicles))
	for n, v := range vehicles {
		ids[n] = v.ID
	}
	return ids
}
