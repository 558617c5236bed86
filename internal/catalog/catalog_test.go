package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVehicleLookup(t *testing.T) {
	v, ok := VehicleByID("v5")
	require.True(t, ok)
	assert.Equal(t, "Toyota", v.Make)
	assert.Equal(t, "Camry Hybrid", v.Model)
	assert.Equal(t, 28545.0, v.Price)

	_, ok = VehicleByID("v999")
	assert.False(t, ok)
}

func TestVehiclesReturnsCopies(t *testing.T) {
	first := Vehicles()
	first[0].Make = "Mutated"
	second := Vehicles()
	assert.NotEqual(t, "Mutated", second[0].Make)
}

func TestDealershipLookup(t *testing.T) {
	assert.Len(t, Dealerships(), 5)

	d, ok := DealershipByID("d1")
	require.True(t, ok)
	assert.Contains(t, d.Services, "Test Drives")

	_, ok = DealershipByID("d99")
	assert.False(t, ok)
}

func TestGenerateTimeSlots(t *testing.T) {
	start := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	t.Run("Deterministic", func(t *testing.T) {
		assert.Equal(t, GenerateTimeSlots("d1", start), GenerateTimeSlots("d1", start))
	})

	t.Run("CoversFourteenDays", func(t *testing.T) {
		slots := GenerateTimeSlots("d1", start)
		dates := map[string]bool{}
		for _, s := range slots {
			dates[s.Date] = true
			assert.Equal(t, "d1", s.DealershipID)
		}
		// At most 14 distinct dates; some dealerships skip Sundays.
		assert.LessOrEqual(t, len(dates), 14)
		assert.GreaterOrEqual(t, len(dates), 12)
	})

	t.Run("MostSlotsAvailable", func(t *testing.T) {
		slots := GenerateTimeSlots("d1", start)
		available := 0
		for _, s := range slots {
			if s.Available {
				available++
			}
		}
		assert.Greater(t, available, len(slots)/2)
	})
}
