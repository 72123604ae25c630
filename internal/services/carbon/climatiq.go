package carbon

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/greentrip/internal/common"
	"github.com/ternarybob/greentrip/internal/httpclient"
)

const climatiqBaseURL = "https://api.climatiq.io"

// ErrNotConfigured is returned when no Climatiq API key is present,
// signalling the caller to use the local model instead.
var ErrNotConfigured = errors.New("climatiq API key not configured")

// ClimatiqService calls the Climatiq estimate API for flight and hotel
// stay emissions. The local model in estimator.go is the fallback.
type ClimatiqService struct {
	apiKey     string
	httpClient *http.Client
	logger     arbor.ILogger
}

// NewClimatiqService creates a Climatiq client from configuration
func NewClimatiqService(config *common.Config) *ClimatiqService {
	return &ClimatiqService{
		apiKey:     config.Climatiq.APIKey,
		httpClient: httpclient.NewDefaultClient(config.Climatiq.RequestTimeout),
		logger:     common.GetLogger(),
	}
}

type travelFlightRequest struct {
	Legs []travelFlightLeg `json:"legs"`
}

type travelFlightLeg struct {
	From       string `json:"from"`
	To         string `json:"to"`
	Passengers int    `json:"passengers"`
}

type hotelStayRequest struct {
	EmissionFactor struct {
		ActivityID  string `json:"activity_id"`
		DataVersion string `json:"data_version"`
	} `json:"emission_factor"`
	Parameters struct {
		Number int `json:"number"`
	} `json:"parameters"`
}

type estimateResponse struct {
	CO2eKg float64 `json:"co2e"`
}

// EstimateFlight asks Climatiq for the CO2e of a flight between two
// airports for the given passenger count.
func (s *ClimatiqService) EstimateFlight(ctx context.Context, origin, destination string, passengers int) (float64, error) {
	if s.apiKey == "" {
		return 0, ErrNotConfigured
	}
	if passengers <= 0 {
		passengers = 1
	}

	payload := travelFlightRequest{
		Legs: []travelFlightLeg{{From: origin, To: destination, Passengers: passengers}},
	}

	var resp estimateResponse
	if err := s.post(ctx, "/travel/flights", payload, &resp); err != nil {
		return 0, err
	}
	if resp.CO2eKg <= 0 {
		return 0, fmt.Errorf("climatiq returned non-positive estimate %.2f", resp.CO2eKg)
	}
	return resp.CO2eKg, nil
}

// EstimateLodging asks Climatiq for the CO2e of a hotel stay. The
// response covers the whole stay; callers divide by nights for a
// per-night figure.
func (s *ClimatiqService) EstimateLodging(ctx context.Context, nights int) (float64, error) {
	if s.apiKey == "" {
		return 0, ErrNotConfigured
	}
	if nights <= 0 {
		nights = 1
	}

	var payload hotelStayRequest
	payload.EmissionFactor.ActivityID = "accommodation_type_hotel_stay"
	payload.EmissionFactor.DataVersion = "^21"
	payload.Parameters.Number = nights

	var resp estimateResponse
	if err := s.post(ctx, "/data/v1/estimate", payload, &resp); err != nil {
		return 0, err
	}
	if resp.CO2eKg <= 0 {
		return 0, fmt.Errorf("climatiq returned non-positive estimate %.2f", resp.CO2eKg)
	}
	return resp.CO2eKg, nil
}

func (s *ClimatiqService) post(ctx context.Context, path string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, climatiqBaseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("climatiq request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("climatiq returned status %d: %s", resp.StatusCode, string(respBody))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode climatiq response: %w", err)
	}
	return nil
}
