package planner

import (
	"math"
	"strings"

	"github.com/ternarybob/greentrip/internal/models"
)

// Sustainability tiers, lowest to highest
const (
	tierSeedling = "Seedling"
	tierSapling  = "Sapling"
	tierForest   = "Forest"
	tierCanopy   = "Canopy"
)

// budgetBreakdown charges the cheapest flight and lodging against the
// budget and splits the remainder 35/25/20/20 across activities,
// dining, transit and an emergency fund. An overrun leaves the
// discretionary categories at zero rather than going negative.
func budgetBreakdown(req models.TripRequest, set models.CandidateSet, tripDays int) models.BudgetBreakdown {
	nights := tripDays - 1
	if nights < 1 {
		nights = 1
	}

	flightCost := 0.0
	if flight, ok := cheapestFlight(set.Flights); ok {
		flightCost = flight.Price
	}

	lodgingCost := 0.0
	if lodge, ok := cheapestLodging(set.Lodging); ok {
		lodgingCost = lodge.NightlyRate * float64(nights)
	}

	remaining := req.Budget - flightCost - lodgingCost
	if remaining < 0 {
		remaining = 0
	}

	return models.BudgetBreakdown{
		Flights:       flightCost,
		Lodging:       lodgingCost,
		Activities:    round2(remaining * 0.35),
		Dining:        round2(remaining * 0.25),
		Transit:       round2(remaining * 0.2),
		EmergencyFund: round2(remaining * 0.2),
		Currency:      req.Currency,
	}
}

// sustainabilityScore awards points for choices that lower the trip's
// footprint and maps the total onto a named tier.
func sustainabilityScore(req models.TripRequest, lodging []models.CandidateLodging) models.SustainabilityScore {
	points := 0
	breakdown := []string{}

	if prefersSustainability(req.Preferences) {
		points += 20
		breakdown = append(breakdown, "Traveler prioritizes sustainable choices (+20)")
	}

	if req.Travelers > 1 {
		points += 10
		breakdown = append(breakdown, "Group travel reduces per-person footprint (+10)")
	}

	for _, option := range lodging {
		if option.SustainabilityScore != nil && *option.SustainabilityScore > 0.8 {
			points += 15
			breakdown = append(breakdown, option.Name+" is eco-certified (+15)")
			break
		}
	}

	if req.Budget <= 1500 {
		points += 5
		breakdown = append(breakdown, "Compact budget encourages mindful spending (+5)")
	}

	tier := tierSeedling
	switch {
	case points >= 60:
		tier = tierCanopy
	case points >= 40:
		tier = tierForest
	case points >= 25:
		tier = tierSapling
	}

	return models.SustainabilityScore{
		TotalPoints: points,
		Tier:        tier,
		Breakdown:   breakdown,
	}
}

func prefersSustainability(preferences []string) bool {
	for _, p := range preferences {
		p = strings.ToLower(p)
		if strings.Contains(p, "sustainab") || strings.Contains(p, "eco-") || p == "eco" {
			return true
		}
	}
	return false
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
