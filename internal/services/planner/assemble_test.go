package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/greentrip/internal/models"
)

func TestEcoScore(t *testing.T) {
	cases := map[float64]float64{
		0:    100,
		500:  50,
		1000: 0,
		2000: 0,
	}
	for emissions, expected := range cases {
		assert.Equal(t, expected, EcoScore(emissions), "emissions %.0f", emissions)
	}
}

func TestFlightEcoScoreClamped(t *testing.T) {
	assert.Equal(t, 100.0, FlightEcoScore(0))
	assert.Equal(t, 60.0, FlightEcoScore(40))
	assert.Equal(t, 0.0, FlightEcoScore(250))
}

func TestSummarizeFlightMultiSegment(t *testing.T) {
	emissions := 420.0
	flight := models.CandidateFlight{
		ID:       "f1",
		Carrier:  "AF",
		Price:    640,
		Currency: "USD",
		Cabin:    models.CabinEconomy,
		Segments: []models.FlightSegment{
			{Origin: "JFK", Destination: "LHR", Departure: "2025-06-01T18:00:00", Arrival: "2025-06-02T06:10:00"},
			{Origin: "LHR", Destination: "CDG", Departure: "2025-06-02T08:00:00", Arrival: "2025-06-02T10:05:00"},
		},
		EmissionsKg: &emissions,
	}

	summary := summarizeFlight(flight)

	assert.Equal(t, "JFK", summary.Origin)
	assert.Equal(t, "CDG", summary.Destination)
	assert.Equal(t, "2025-06-01T18:00:00", summary.Departure)
	assert.Equal(t, "2025-06-02T10:05:00", summary.Arrival)
	assert.Equal(t, 1, summary.Stops)
	assert.Equal(t, 420.0, summary.EmissionsKg)
	assert.Equal(t, 0.0, summary.EcoScore)
}

func TestAssembleBuildsResult(t *testing.T) {
	set := testCandidateSet()
	draft := deterministicPlan(set, 3)
	req := models.TripRequest{Destination: "Paris", NumDays: 3, Budget: 2000}
	req.Normalize()
	loc := models.ResolvedLocation{Latitude: 48.85, Longitude: 2.35, AirportCode: "CDG"}
	weights := WeightsForMode(req.Mode)
	start := models.NewDate(2025, 6, 1)
	end := models.NewDate(2025, 6, 3)

	result := assemble(req, loc, weights, set, draft, 3, start, end)

	require.NotNil(t, result)
	assert.NotEmpty(t, result.ID)
	assert.Equal(t, 3, result.TripDays)
	assert.Len(t, result.Flights, 1)
	assert.Len(t, result.Lodging, 1)
	assert.GreaterOrEqual(t, result.EcoScore, 0.0)
	assert.LessOrEqual(t, result.EcoScore, 100.0)
	assert.Equal(t, "CDG", result.Destination.AirportCode)

	assert.Greater(t, result.Budget.Flights, 0.0)
	assert.Greater(t, result.Budget.Lodging, 0.0)
	assert.Equal(t, "USD", result.Budget.Currency)
	assert.NotEmpty(t, result.Sustainability.Tier)
}
