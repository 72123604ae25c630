package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/greentrip/internal/common"
	"github.com/ternarybob/greentrip/internal/interfaces"
	"github.com/ternarybob/greentrip/internal/models"
	"github.com/ternarybob/greentrip/internal/services/cache"
)

// PlanHandler exposes the itinerary pipeline over HTTP
type PlanHandler struct {
	planner   interfaces.IPlannerService
	cache     interfaces.IItineraryCache
	validator *validator.Validate
	logger    arbor.ILogger
}

func NewPlanHandler(planner interfaces.IPlannerService, itineraries interfaces.IItineraryCache) *PlanHandler {
	return &PlanHandler{
		planner:   planner,
		cache:     itineraries,
		validator: validator.New(),
		logger:    common.GetLogger(),
	}
}

// PlanHandler accepts a trip request and returns a complete itinerary.
// Validation failures are client errors; anything the pipeline does not
// absorb internally surfaces as a generation failure.
func (h *PlanHandler) PlanHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	var req models.TripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request: malformed JSON")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	if !req.HasDateRange() && req.NumDays <= 0 {
		WriteError(w, http.StatusBadRequest, "invalid request: provide start_date and end_date or a positive num_days")
		return
	}

	result, err := h.planner.Plan(r.Context(), req)
	if err != nil {
		h.logger.Error().Err(err).Str("destination", req.Destination).Msg("Plan generation failed")
		WriteError(w, http.StatusInternalServerError, "generation failure")
		return
	}

	if h.cache != nil {
		if err := h.cache.Put(result); err != nil {
			h.logger.Warn().Err(err).Msg("Failed to cache itinerary")
		}
	}

	WriteJSON(w, http.StatusOK, result)
}

// LatestHandler returns the most recently generated itinerary
func (h *PlanHandler) LatestHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	if h.cache == nil {
		WriteError(w, http.StatusNotFound, "no itinerary available")
		return
	}

	result, err := h.cache.Latest()
	if errors.Is(err, cache.ErrNotFound) {
		WriteError(w, http.StatusNotFound, "no itinerary available")
		return
	}
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to read latest itinerary")
		WriteError(w, http.StatusInternalServerError, "failed to read itinerary")
		return
	}

	WriteJSON(w, http.StatusOK, result)
}

// GetHandler returns a stored itinerary by ID, from /api/plan/{id}
func (h *PlanHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	id := r.PathValue("id")
	if id == "" || h.cache == nil {
		WriteError(w, http.StatusNotFound, "itinerary not found")
		return
	}

	result, err := h.cache.Get(id)
	if errors.Is(err, cache.ErrNotFound) {
		WriteError(w, http.StatusNotFound, "itinerary not found")
		return
	}
	if err != nil {
		h.logger.Error().Err(err).Str("id", id).Msg("Failed to read itinerary")
		WriteError(w, http.StatusInternalServerError, "failed to read itinerary")
		return
	}

	WriteJSON(w, http.StatusOK, result)
}
