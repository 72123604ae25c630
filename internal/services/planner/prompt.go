package planner

import (
	"fmt"
	"strings"

	"github.com/ternarybob/greentrip/internal/models"
)

// buildPrompt serializes the top candidates, objective weights and
// caller preferences into a single instruction for the generative
// model, including the exact output shape it must produce.
func buildPrompt(req models.TripRequest, weights models.ObjectiveWeights, set models.CandidateSet, tripDays, topN int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Plan a %d-day trip to %s.\n\n", tripDays, req.Destination)

	fmt.Fprintf(&b, "Budget: %.0f %s total.\n", req.Budget, req.Currency)
	fmt.Fprintf(&b, "Optimization weights (relative importance, advisory): price %.1f, emissions %.1f, traveler preference %.1f.\n\n",
		weights.Price, weights.Emissions, weights.Preference)

	if len(req.Preferences) > 0 {
		fmt.Fprintf(&b, "Traveler preferences: %s.\n", strings.Join(req.Preferences, ", "))
	}
	if req.Likes != "" {
		fmt.Fprintf(&b, "Likes: %s.\n", req.Likes)
	}
	if req.Dislikes != "" {
		fmt.Fprintf(&b, "Dislikes: %s.\n", req.Dislikes)
	}
	if req.DietaryRestrictions != "" {
		fmt.Fprintf(&b, "Dietary restrictions: %s.\n", req.DietaryRestrictions)
	}
	b.WriteString("\n")

	b.WriteString("Flight options:\n")
	for i, f := range topFlights(set.Flights, topN) {
		emissions := 0.0
		if f.EmissionsKg != nil {
			emissions = *f.EmissionsKg
		}
		route := ""
		if len(f.Segments) > 0 {
			route = fmt.Sprintf("%s-%s", f.Segments[0].Origin, f.Segments[len(f.Segments)-1].Destination)
		}
		fmt.Fprintf(&b, "%d. %s %s, %.0f %s, %s, %.0f kg CO2\n",
			i+1, f.Carrier, route, f.Price, f.Currency, f.Cabin, emissions)
	}

	b.WriteString("\nLodging options:\n")
	for i, l := range topLodging(set.Lodging, topN) {
		perNight := 0.0
		if l.EmissionsKgPerNight != nil {
			perNight = *l.EmissionsKgPerNight
		}
		sustainability := ""
		if l.SustainabilityScore != nil {
			sustainability = fmt.Sprintf(", sustainability %.2f", *l.SustainabilityScore)
		}
		fmt.Fprintf(&b, "%d. %s (%s), %.0f %s/night, %.0f kg CO2/night%s\n",
			i+1, l.Name, l.Address, l.NightlyRate, l.Currency, perNight, sustainability)
	}

	b.WriteString("\nAttractions:\n")
	limit := topN * 2
	if limit > len(set.Attractions) {
		limit = len(set.Attractions)
	}
	for i := 0; i < limit; i++ {
		a := set.Attractions[i]
		fmt.Fprintf(&b, "%d. %s (%s)", i+1, a.Name, a.Category)
		if a.Rating != nil {
			fmt.Fprintf(&b, ", rated %.1f", *a.Rating)
		}
		b.WriteString("\n")
	}

	if len(set.Weather) > 0 {
		b.WriteString("\nWeather forecast:\n")
		for _, w := range set.Weather {
			fmt.Fprintf(&b, "%s: %s, high %.0fC low %.0fC\n", w.Date.String(), w.Summary, w.HighC, w.LowC)
		}
	}

	fmt.Fprintf(&b, `
Respond with one JSON object and nothing else, in exactly this shape:
{
  "days": [
    {"day": 1, "morning": "...", "afternoon": "...", "evening": "..."}
  ],
  "totals": {"cost": 0, "emissions_kg": 0},
  "rationale": "..."
}
The days array must contain exactly %d entries numbered 1 through %d.
Pick one flight and one hotel from the options above and reflect their
cost and emissions in totals.
`, tripDays, tripDays)

	return b.String()
}

func topFlights(flights []models.CandidateFlight, n int) []models.CandidateFlight {
	if len(flights) > n {
		return flights[:n]
	}
	return flights
}

func topLodging(lodging []models.CandidateLodging, n int) []models.CandidateLodging {
	if len(lodging) > n {
		return lodging[:n]
	}
	return lodging
}
