package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/greentrip/internal/models"
	"github.com/ternarybob/greentrip/internal/services/cache"
)

type stubPlanner struct {
	result *models.ItineraryResult
	err    error
}

func (s *stubPlanner) Plan(ctx context.Context, req models.TripRequest) (*models.ItineraryResult, error) {
	return s.result, s.err
}

type memoryCache struct {
	latest *models.ItineraryResult
}

func (c *memoryCache) Put(result *models.ItineraryResult) error {
	c.latest = result
	return nil
}

func (c *memoryCache) Get(id string) (*models.ItineraryResult, error) {
	if c.latest != nil && c.latest.ID == id {
		return c.latest, nil
	}
	return nil, cache.ErrNotFound
}

func (c *memoryCache) Latest() (*models.ItineraryResult, error) {
	if c.latest == nil {
		return nil, cache.ErrNotFound
	}
	return c.latest, nil
}

func (c *memoryCache) Close() error { return nil }

func testResult() *models.ItineraryResult {
	return &models.ItineraryResult{
		ID:       "itin_test",
		TripDays: 3,
		Plan: models.PlanDraft{
			Days:   []models.PlanDay{{Day: 1}, {Day: 2}, {Day: 3}},
			Totals: &models.PlanTotals{Cost: 1400, EmissionsKg: 700},
		},
		EcoScore: 30,
	}
}

func TestPlanHandlerSuccess(t *testing.T) {
	store := &memoryCache{}
	h := NewPlanHandler(&stubPlanner{result: testResult()}, store)

	body := `{"destination":"Paris","num_days":3,"budget":2000,"mode":"balanced"}`
	req := httptest.NewRequest(http.MethodPost, "/api/plan", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.PlanHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result models.ItineraryResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "itin_test", result.ID)
	assert.Len(t, result.Plan.Days, 3)

	// The result is cached as the latest itinerary
	latest, err := store.Latest()
	require.NoError(t, err)
	assert.Equal(t, "itin_test", latest.ID)
}

func TestPlanHandlerRejectsBadRequests(t *testing.T) {
	h := NewPlanHandler(&stubPlanner{result: testResult()}, &memoryCache{})

	cases := map[string]string{
		"malformed JSON":      `{"destination":`,
		"missing budget":      `{"destination":"Paris","num_days":3}`,
		"no days or dates":    `{"destination":"Paris","budget":2000}`,
		"negative num_days":   `{"destination":"Paris","num_days":-1,"budget":2000}`,
		"missing destination": `{"num_days":3,"budget":2000}`,
	}

	for name, body := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/plan", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.PlanHandler(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, name)
	}
}

func TestPlanHandlerWrongMethod(t *testing.T) {
	h := NewPlanHandler(&stubPlanner{result: testResult()}, &memoryCache{})

	req := httptest.NewRequest(http.MethodGet, "/api/plan", nil)
	rec := httptest.NewRecorder()

	h.PlanHandler(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestLatestHandlerEmptyCache(t *testing.T) {
	h := NewPlanHandler(&stubPlanner{result: testResult()}, &memoryCache{})

	req := httptest.NewRequest(http.MethodGet, "/api/plan/latest", nil)
	rec := httptest.NewRecorder()

	h.LatestHandler(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
