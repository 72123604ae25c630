package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ternarybob/greentrip/internal/models"
)

func enrichSet(flightPrice, nightlyRate float64) models.CandidateSet {
	return models.CandidateSet{
		Flights: []models.CandidateFlight{
			{ID: "f1", Price: flightPrice, Currency: "USD"},
			{ID: "f2", Price: flightPrice + 200, Currency: "USD"},
		},
		Lodging: []models.CandidateLodging{
			{ID: "l1", Name: "Riverside Inn", NightlyRate: nightlyRate, Currency: "USD"},
			{ID: "l2", Name: "Grand Plaza", NightlyRate: nightlyRate + 80, Currency: "USD"},
		},
	}
}

func TestBudgetBreakdownSplitsRemaining(t *testing.T) {
	req := models.TripRequest{Destination: "Paris", Budget: 2000, Currency: "USD"}
	set := enrichSet(400, 100)

	// 4 days -> 3 nights, cheapest flight 400 + lodging 300, remaining 1300
	breakdown := budgetBreakdown(req, set, 4)

	assert.InDelta(t, 400.0, breakdown.Flights, 0.001)
	assert.InDelta(t, 300.0, breakdown.Lodging, 0.001)
	assert.InDelta(t, 455.0, breakdown.Activities, 0.001)
	assert.InDelta(t, 325.0, breakdown.Dining, 0.001)
	assert.InDelta(t, 260.0, breakdown.Transit, 0.001)
	assert.InDelta(t, 260.0, breakdown.EmergencyFund, 0.001)
	assert.Equal(t, "USD", breakdown.Currency)
}

func TestBudgetBreakdownOverrunClampsToZero(t *testing.T) {
	req := models.TripRequest{Destination: "Paris", Budget: 500, Currency: "USD"}
	set := enrichSet(400, 100)

	breakdown := budgetBreakdown(req, set, 4)

	assert.InDelta(t, 400.0, breakdown.Flights, 0.001)
	assert.InDelta(t, 300.0, breakdown.Lodging, 0.001)
	assert.Zero(t, breakdown.Activities)
	assert.Zero(t, breakdown.Dining)
	assert.Zero(t, breakdown.Transit)
	assert.Zero(t, breakdown.EmergencyFund)
}

func TestBudgetBreakdownSingleDayUsesOneNight(t *testing.T) {
	req := models.TripRequest{Destination: "Paris", Budget: 1000, Currency: "USD"}
	breakdown := budgetBreakdown(req, enrichSet(400, 100), 1)

	assert.InDelta(t, 100.0, breakdown.Lodging, 0.001)
}

func TestSustainabilityScoreTiers(t *testing.T) {
	ecoScore := 0.82
	lodging := []models.CandidateLodging{
		{Name: "Grand Plaza", NightlyRate: 200},
		{Name: "Anderson Boutique Hotel", NightlyRate: 245, SustainabilityScore: &ecoScore},
	}

	// Preference + group + eco-certified lodging + compact budget
	req := models.TripRequest{
		Destination: "Paris",
		Budget:      1200,
		Travelers:   2,
		Preferences: []string{"museums", "sustainable travel"},
	}
	score := sustainabilityScore(req, lodging)

	assert.Equal(t, 50, score.TotalPoints)
	assert.Equal(t, "Forest", score.Tier)
	assert.Len(t, score.Breakdown, 4)
	assert.Contains(t, score.Breakdown, "Anderson Boutique Hotel is eco-certified (+15)")

	// Solo traveler, no signals at all
	plain := sustainabilityScore(models.TripRequest{Destination: "Paris", Budget: 3000, Travelers: 1}, nil)
	assert.Equal(t, 0, plain.TotalPoints)
	assert.Equal(t, "Seedling", plain.Tier)
	assert.Empty(t, plain.Breakdown)
}

func TestSustainabilityScoreAwardsEcoLodgingOnce(t *testing.T) {
	high := 0.85
	alsoHigh := 0.9
	lodging := []models.CandidateLodging{
		{Name: "First Eco Stay", SustainabilityScore: &high},
		{Name: "Second Eco Stay", SustainabilityScore: &alsoHigh},
	}

	score := sustainabilityScore(models.TripRequest{Destination: "Paris", Budget: 3000, Travelers: 1}, lodging)

	assert.Equal(t, 15, score.TotalPoints)
	assert.Equal(t, []string{"First Eco Stay is eco-certified (+15)"}, score.Breakdown)
}

func TestPrefersSustainability(t *testing.T) {
	assert.True(t, prefersSustainability([]string{"sustainability"}))
	assert.True(t, prefersSustainability([]string{"Eco-friendly stays"}))
	assert.False(t, prefersSustainability([]string{"economy flights", "museums"}))
	assert.False(t, prefersSustainability(nil))
}
