package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ternarybob/greentrip/internal/models"
)

func TestWeightsForMode(t *testing.T) {
	w := WeightsForMode(models.TripModePriceOptimal)
	assert.Equal(t, models.ObjectiveWeights{Price: 0.7, Emissions: 0.2, Preference: 0.1}, w)

	w = WeightsForMode(models.TripModeBalanced)
	assert.Equal(t, models.ObjectiveWeights{Price: 0.4, Emissions: 0.4, Preference: 0.2}, w)

	// Unknown modes behave as balanced
	w = WeightsForMode(models.TripMode("luxury"))
	assert.Equal(t, models.ObjectiveWeights{Price: 0.4, Emissions: 0.4, Preference: 0.2}, w)
}
