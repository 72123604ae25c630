package planner

import (
	"time"

	"github.com/ternarybob/greentrip/internal/common"
	"github.com/ternarybob/greentrip/internal/models"
)

// EcoScore maps total trip emissions to a 0..100 score. Emissions are
// never negative, so the score never exceeds 100.
func EcoScore(totalEmissionsKg float64) float64 {
	score := 100 - totalEmissionsKg/10
	if score < 0 {
		return 0
	}
	return score
}

// FlightEcoScore is the per-flight display score, independent of the
// trip-level score.
func FlightEcoScore(emissionsKg float64) float64 {
	score := 100 - emissionsKg
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// assemble builds the final itinerary from the validated plan and the
// candidate set. Pure, no I/O.
func assemble(req models.TripRequest, loc models.ResolvedLocation, weights models.ObjectiveWeights, set models.CandidateSet, draft models.PlanDraft, tripDays int, start, end models.Date) *models.ItineraryResult {
	result := &models.ItineraryResult{
		ID:             common.NewItineraryID(),
		Request:        req,
		Destination:    loc,
		TripDays:       tripDays,
		StartDate:      start,
		EndDate:        end,
		Weights:        weights,
		Plan:           draft,
		EcoScore:       EcoScore(draft.Totals.EmissionsKg),
		Budget:         budgetBreakdown(req, set, tripDays),
		Sustainability: sustainabilityScore(req, set.Lodging),
		Weather:        set.Weather,
		CreatedAt:      time.Now().UTC().Format(time.RFC3339),
	}

	result.Flights = make([]models.FlightSummary, 0, len(set.Flights))
	for _, f := range set.Flights {
		result.Flights = append(result.Flights, summarizeFlight(f))
	}

	result.Lodging = make([]models.LodgingSummary, 0, len(set.Lodging))
	for _, l := range set.Lodging {
		perNight := 0.0
		if l.EmissionsKgPerNight != nil {
			perNight = *l.EmissionsKgPerNight
		}
		result.Lodging = append(result.Lodging, models.LodgingSummary{
			ID:                  l.ID,
			Name:                l.Name,
			Address:             l.Address,
			NightlyRate:         l.NightlyRate,
			Currency:            l.Currency,
			SustainabilityScore: l.SustainabilityScore,
			EmissionsKgPerNight: perNight,
		})
	}

	return result
}

// summarizeFlight projects a candidate onto its first and last segment
func summarizeFlight(f models.CandidateFlight) models.FlightSummary {
	emissions := 0.0
	if f.EmissionsKg != nil {
		emissions = *f.EmissionsKg
	}

	summary := models.FlightSummary{
		ID:          f.ID,
		Carrier:     f.Carrier,
		Price:       f.Price,
		Currency:    f.Currency,
		Cabin:       string(f.Cabin),
		EmissionsKg: emissions,
		EcoScore:    FlightEcoScore(emissions),
	}

	if len(f.Segments) > 0 {
		first := f.Segments[0]
		last := f.Segments[len(f.Segments)-1]
		summary.Origin = first.Origin
		summary.Destination = last.Destination
		summary.Departure = first.Departure
		summary.Arrival = last.Arrival
		summary.Stops = len(f.Segments) - 1
	}

	return summary
}
