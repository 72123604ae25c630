package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ternarybob/greentrip/internal/models"
)

// synthesize asks the generative model for a plan and validates its
// output. The model is called once; a failure of any kind (transport,
// empty output, unparseable or wrong-shaped JSON) falls through to the
// deterministic plan. This stage never returns an error.
func (s *Service) synthesize(ctx context.Context, req models.TripRequest, weights models.ObjectiveWeights, set models.CandidateSet, tripDays int) models.PlanDraft {
	if s.generator == nil {
		return deterministicPlan(set, tripDays)
	}

	prompt := buildPrompt(req, weights, set, tripDays, s.topCandidates)

	raw, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		s.logger.Warn().Err(err).Str("provider", s.generator.Name()).Msg("Generation failed, using deterministic plan")
		return deterministicPlan(set, tripDays)
	}

	draft, err := parsePlanDraft(raw)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Model output rejected, using deterministic plan")
		return deterministicPlan(set, tripDays)
	}

	normalizeDays(draft, tripDays, set)
	if err := draft.Validate(tripDays); err != nil {
		s.logger.Warn().Err(err).Msg("Plan shape invalid after normalization, using deterministic plan")
		return deterministicPlan(set, tripDays)
	}

	return *draft
}

// parsePlanDraft tries a direct parse of the model output, then falls
// back to extracting the first balanced {...} span from the raw text.
func parsePlanDraft(raw string) (*models.PlanDraft, error) {
	var draft models.PlanDraft
	if err := json.Unmarshal([]byte(raw), &draft); err == nil && len(draft.Days) > 0 {
		return &draft, nil
	}

	span, ok := extractJSONObject(raw)
	if !ok {
		return nil, fmt.Errorf("no JSON object found in model output")
	}

	draft = models.PlanDraft{}
	if err := json.Unmarshal([]byte(span), &draft); err != nil {
		return nil, fmt.Errorf("extracted span is not valid JSON: %w", err)
	}
	if len(draft.Days) == 0 {
		return nil, fmt.Errorf("model output has no day entries")
	}
	return &draft, nil
}

// extractJSONObject returns the first balanced top-level {...} span,
// respecting string literals and escapes.
func extractJSONObject(raw string) (string, bool) {
	start := strings.IndexByte(raw, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		c := raw[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return raw[start : i+1], true
				}
			}
		}
	}
	return "", false
}

// normalizeDays renumbers the returned days 1..N, truncates extras and
// pads missing trailing days from the deterministic template, and
// fills missing totals from the cheapest candidates.
func normalizeDays(draft *models.PlanDraft, tripDays int, set models.CandidateSet) {
	if len(draft.Days) > tripDays {
		draft.Days = draft.Days[:tripDays]
	}
	for len(draft.Days) < tripDays {
		draft.Days = append(draft.Days, templateDay(len(draft.Days)+1, set))
	}
	for i := range draft.Days {
		draft.Days[i].Day = i + 1
	}
	if draft.Totals == nil {
		totals := deterministicTotals(set, tripDays)
		draft.Totals = &totals
	}
}

// deterministicPlan builds the guaranteed fallback: one templated
// entry per day and totals computed from the cheapest flight plus
// nightly rate times nights plus their emissions. Pure, no I/O, no
// second model call.
func deterministicPlan(set models.CandidateSet, tripDays int) models.PlanDraft {
	days := make([]models.PlanDay, 0, tripDays)
	for i := 1; i <= tripDays; i++ {
		days = append(days, templateDay(i, set))
	}
	totals := deterministicTotals(set, tripDays)
	return models.PlanDraft{
		Days:      days,
		Totals:    &totals,
		Rationale: "Itinerary assembled from the most affordable available options.",
	}
}

func templateDay(day int, set models.CandidateSet) models.PlanDay {
	afternoon := "Visit local attractions"
	if len(set.Attractions) > 0 {
		attraction := set.Attractions[(day-1)%len(set.Attractions)]
		afternoon = "Visit " + attraction.Name
	}
	return models.PlanDay{
		Day:       day,
		Morning:   "Explore the area",
		Afternoon: afternoon,
		Evening:   "Enjoy local cuisine",
	}
}

func deterministicTotals(set models.CandidateSet, tripDays int) models.PlanTotals {
	nights := tripDays - 1
	if nights < 1 {
		nights = 1
	}

	var totals models.PlanTotals

	if flight, ok := cheapestFlight(set.Flights); ok {
		totals.Cost += flight.Price
		if flight.EmissionsKg != nil {
			totals.EmissionsKg += *flight.EmissionsKg
		}
	}

	if lodge, ok := cheapestLodging(set.Lodging); ok {
		totals.Cost += lodge.NightlyRate * float64(nights)
		if lodge.EmissionsKgPerNight != nil {
			totals.EmissionsKg += *lodge.EmissionsKgPerNight * float64(nights)
		}
	}

	return totals
}

func cheapestFlight(flights []models.CandidateFlight) (models.CandidateFlight, bool) {
	if len(flights) == 0 {
		return models.CandidateFlight{}, false
	}
	best := flights[0]
	for _, f := range flights[1:] {
		if f.Price < best.Price {
			best = f
		}
	}
	return best, true
}

func cheapestLodging(lodging []models.CandidateLodging) (models.CandidateLodging, bool) {
	if len(lodging) == 0 {
		return models.CandidateLodging{}, false
	}
	best := lodging[0]
	for _, l := range lodging[1:] {
		if l.NightlyRate < best.NightlyRate {
			best = l
		}
	}
	return best, true
}
