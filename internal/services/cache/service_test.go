package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/greentrip/internal/common"
	"github.com/ternarybob/greentrip/internal/models"
)

func newTestCache(t *testing.T) *Service {
	t.Helper()
	config := common.NewDefaultConfig()
	config.Cache.Path = "" // in-memory
	config.Cache.TTL = time.Minute

	s, err := NewService(config)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testItinerary(id string) *models.ItineraryResult {
	return &models.ItineraryResult{
		ID:       id,
		TripDays: 3,
		Plan: models.PlanDraft{
			Days:   []models.PlanDay{{Day: 1}, {Day: 2}, {Day: 3}},
			Totals: &models.PlanTotals{Cost: 1200, EmissionsKg: 600},
		},
		EcoScore: 40,
	}
}

func TestPutAndGet(t *testing.T) {
	s := newTestCache(t)

	require.NoError(t, s.Put(testItinerary("itin_abc")))

	got, err := s.Get("itin_abc")
	require.NoError(t, err)
	assert.Equal(t, "itin_abc", got.ID)
	assert.Equal(t, 3, got.TripDays)
	assert.Equal(t, 1200.0, got.Plan.Totals.Cost)
}

func TestGetMissing(t *testing.T) {
	s := newTestCache(t)

	_, err := s.Get("itin_missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLatestTracksMostRecent(t *testing.T) {
	s := newTestCache(t)

	_, err := s.Latest()
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Put(testItinerary("itin_first")))
	require.NoError(t, s.Put(testItinerary("itin_second")))

	latest, err := s.Latest()
	require.NoError(t, err)
	assert.Equal(t, "itin_second", latest.ID)
}
