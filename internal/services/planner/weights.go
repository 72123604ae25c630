package planner

import (
	"github.com/ternarybob/greentrip/internal/models"
)

// WeightsForMode maps a trip mode to the (price, emissions, preference)
// saliences passed to the synthesizer. The weights are guidance for the
// generative model, not solver coefficients; nothing downstream checks
// that the returned plan numerically satisfies them.
func WeightsForMode(mode models.TripMode) models.ObjectiveWeights {
	switch mode {
	case models.TripModePriceOptimal:
		return models.ObjectiveWeights{Price: 0.7, Emissions: 0.2, Preference: 0.1}
	default:
		return models.ObjectiveWeights{Price: 0.4, Emissions: 0.4, Preference: 0.2}
	}
}
