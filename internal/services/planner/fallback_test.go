package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/greentrip/internal/models"
)

func TestFallbackFlightsStrictlyIncreasingPrices(t *testing.T) {
	depart := models.NewDate(2025, time.June, 1)
	ret := models.NewDate(2025, time.June, 5)

	flights := fallbackFlights("JFK", "CDG", depart, ret, models.CabinEconomy)

	require.NotEmpty(t, flights)
	require.Len(t, flights, 5)
	for i := 1; i < len(flights); i++ {
		assert.Greater(t, flights[i].Price, flights[i-1].Price, "prices must strictly increase")
	}

	carriers := make(map[string]bool)
	for _, f := range flights {
		carriers[f.Carrier] = true
		require.Len(t, f.Segments, 2, "round trip should have outbound and return legs")
		assert.Equal(t, "JFK", f.Segments[0].Origin)
		assert.Equal(t, "CDG", f.Segments[0].Destination)
		assert.Equal(t, "CDG", f.Segments[1].Origin)
		assert.Equal(t, models.SourceFallback, f.Source)
	}
	assert.Len(t, carriers, 5, "carriers must be distinct")
}

func TestFallbackFlightsOneWay(t *testing.T) {
	depart := models.NewDate(2025, time.June, 1)
	flights := fallbackFlights("JFK", "CDG", depart, models.Date{}, models.CabinEconomy)

	for _, f := range flights {
		assert.Len(t, f.Segments, 1)
	}
}

func TestFallbackFlightsCabinPricing(t *testing.T) {
	depart := models.NewDate(2025, time.June, 1)
	economy := fallbackFlights("JFK", "CDG", depart, models.Date{}, models.CabinEconomy)
	business := fallbackFlights("JFK", "CDG", depart, models.Date{}, models.CabinBusiness)

	assert.InDelta(t, economy[0].Price*1.8, business[0].Price, 0.01)
}

func TestFallbackLodging(t *testing.T) {
	lodging := fallbackLodging()

	require.Len(t, lodging, 5)
	for _, l := range lodging {
		assert.NotEmpty(t, l.Name)
		assert.Equal(t, "City Center", l.Address)
		assert.Greater(t, l.NightlyRate, 0.0)
		require.NotNil(t, l.SustainabilityScore)
		assert.GreaterOrEqual(t, *l.SustainabilityScore, 0.0)
		assert.LessOrEqual(t, *l.SustainabilityScore, 1.0)
		assert.Equal(t, models.SourceFallback, l.Source)
	}
}

func TestFallbackWeatherCoversTrip(t *testing.T) {
	start := models.NewDate(2025, time.June, 1)
	snapshots := fallbackWeather(start, 3)

	require.Len(t, snapshots, 3)
	assert.Equal(t, "2025-06-01", snapshots[0].Date.String())
	assert.Equal(t, "2025-06-03", snapshots[2].Date.String())
}
