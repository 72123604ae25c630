package carbon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ternarybob/greentrip/internal/models"
)

func TestHaversineJFKToCDG(t *testing.T) {
	// JFK to CDG is roughly 5835 km great-circle
	distance := HaversineKm(40.6413, -73.7781, 49.0097, 2.5479)
	assert.InDelta(t, 5835.0, distance, 50.0)

	// Long-haul band applies above 3500 km
	assert.InDelta(t, longHaulFactor*radiativeForcingIndex, emissionFactor(distance), 0.0001)
}

func TestEmissionsMonotonicWithinBand(t *testing.T) {
	// The per-km factor is banded, so the estimate is only monotonic
	// between band boundaries: 1501 km costs less than 1500 km because
	// the whole distance shifts to the medium-haul factor.
	bands := map[string][]float64{
		"short":  {100, 500, 1500},
		"medium": {1501, 2500, 3500},
		"long":   {3501, 6000, 12000},
	}
	for name, distances := range bands {
		prev := -1.0
		for _, d := range distances {
			kg := EstimateFlightKg(d, models.CabinEconomy)
			assert.GreaterOrEqual(t, kg, prev, "emissions must not decrease within the %s band (%.0f km)", name, d)
			prev = kg
		}
	}
}

func TestEmissionFactorBandBoundaries(t *testing.T) {
	assert.InDelta(t, shortHaulFactor*radiativeForcingIndex, emissionFactor(1500), 0.0001)
	assert.InDelta(t, mediumHaulFactor*radiativeForcingIndex, emissionFactor(1501), 0.0001)
	assert.InDelta(t, mediumHaulFactor*radiativeForcingIndex, emissionFactor(3500), 0.0001)
	assert.InDelta(t, longHaulFactor*radiativeForcingIndex, emissionFactor(3501), 0.0001)

	// Whole-distance banding means the estimate drops just past a boundary
	assert.Less(t, EstimateFlightKg(1501, models.CabinEconomy), EstimateFlightKg(1500, models.CabinEconomy))
	assert.Less(t, EstimateFlightKg(3501, models.CabinEconomy), EstimateFlightKg(3500, models.CabinEconomy))
}

func TestEmissionsMonotonicInCabin(t *testing.T) {
	cabins := []models.CabinClass{
		models.CabinEconomy,
		models.CabinPremiumEconomy,
		models.CabinBusiness,
		models.CabinFirst,
	}
	prev := 0.0
	for _, cabin := range cabins {
		kg := EstimateFlightKg(2000, cabin)
		assert.Greater(t, kg, prev, "emissions must increase with cabin rank (%s)", cabin)
		prev = kg
	}
}

func TestFlightDistanceFallbacks(t *testing.T) {
	coords := func(code string) (float64, float64, bool) {
		switch code {
		case "JFK":
			return 40.6413, -73.7781, true
		case "CDG":
			return 49.0097, 2.5479, true
		}
		return 0, 0, false
	}

	known := []models.FlightSegment{{Origin: "JFK", Destination: "CDG"}}
	assert.InDelta(t, 5835.0, FlightDistanceKm(known, 0, coords), 50.0)

	// Unknown airport with a usable duration: cruise-speed estimate
	unknown := []models.FlightSegment{{Origin: "JFK", Destination: "XXX"}}
	assert.InDelta(t, 7.0*800, FlightDistanceKm(unknown, 420, coords), 0.01)

	// Short duration is floored at 500 km
	assert.InDelta(t, 500.0, FlightDistanceKm(unknown, 20, coords), 0.01)

	// No duration at all defaults to 1500 km
	assert.InDelta(t, 1500.0, FlightDistanceKm(unknown, 0, coords), 0.01)
}

func TestLodgingHeuristic(t *testing.T) {
	assert.Equal(t, 15.0, EstimateLodgingKgPerNight())
}
