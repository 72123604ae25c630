package planner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ternarybob/greentrip/internal/models"
)

func TestBuildPromptIncludesCandidatesAndWeights(t *testing.T) {
	req := models.TripRequest{
		Destination: "Paris",
		Budget:      2000,
		Currency:    "USD",
		Preferences: []string{"museums", "food"},
		Dislikes:    "crowds",
	}
	weights := WeightsForMode(models.TripModeBalanced)
	set := testCandidateSet()

	prompt := buildPrompt(req, weights, set, 3, 5)

	assert.Contains(t, prompt, "3-day trip to Paris")
	assert.Contains(t, prompt, "price 0.4, emissions 0.4, traveler preference 0.2")
	assert.Contains(t, prompt, "museums, food")
	assert.Contains(t, prompt, "crowds")
	assert.Contains(t, prompt, "AF JFK-CDG")
	assert.Contains(t, prompt, "Test Hotel")
	assert.Contains(t, prompt, "The Louvre")
	assert.Contains(t, prompt, "exactly 3 entries")
	assert.Contains(t, prompt, `"days"`)
}

func TestBuildPromptLimitsCandidates(t *testing.T) {
	req := models.TripRequest{Destination: "Paris", Budget: 2000, Currency: "USD"}
	set := models.CandidateSet{
		Flights: fallbackFlights("JFK", "CDG", models.NewDate(2025, 6, 1), models.Date{}, models.CabinEconomy),
	}
	emissions := 500.0
	for i := range set.Flights {
		set.Flights[i].EmissionsKg = &emissions
	}

	prompt := buildPrompt(req, WeightsForMode(req.Mode), set, 3, 2)

	// Only the top two flights are serialized
	lines := strings.Split(prompt, "\n")
	flightLines := 0
	for _, line := range lines {
		if strings.Contains(line, "JFK-CDG") {
			flightLines++
		}
	}
	assert.Equal(t, 2, flightLines)
}
