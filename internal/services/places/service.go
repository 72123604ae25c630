package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/greentrip/internal/common"
	"github.com/ternarybob/greentrip/internal/httpclient"
	"github.com/ternarybob/greentrip/internal/interfaces"
	"github.com/ternarybob/greentrip/internal/models"
	"golang.org/x/time/rate"
)

const baseURL = "https://maps.googleapis.com/maps/api/place"

// Service wraps the Google Places API for destination geocoding and
// attraction search.
type Service struct {
	apiKey      string
	maxResults  int
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	logger      arbor.ILogger
}

// NewService creates a Places service from configuration
func NewService(config *common.Config) *Service {
	rps := config.Places.RateLimit
	if rps <= 0 {
		rps = 1
	}
	maxResults := config.Places.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}
	return &Service{
		apiKey:      config.Places.APIKey,
		maxResults:  maxResults,
		httpClient:  httpclient.NewDefaultClient(config.Places.RequestTimeout),
		rateLimiter: rate.NewLimiter(rate.Limit(rps), rps),
		logger:      common.GetLogger(),
	}
}

// Configured reports whether an API key is present
func (s *Service) Configured() bool {
	return s.apiKey != ""
}

// Geocode resolves free text to coordinates using a text search
func (s *Service) Geocode(ctx context.Context, text string) (float64, float64, error) {
	if !s.Configured() {
		return 0, 0, fmt.Errorf("places API key not configured")
	}

	params := url.Values{}
	params.Set("query", text)

	var resp textSearchResponse
	if err := s.get(ctx, "/textsearch/json", params, &resp); err != nil {
		return 0, 0, err
	}
	if len(resp.Results) == 0 {
		return 0, 0, fmt.Errorf("no geocode result for %q (status %s)", text, resp.Status)
	}

	loc := resp.Results[0].Geometry.Location
	return loc.Lat, loc.Lng, nil
}

// SearchAttractions finds tourist attractions near the destination. It
// combines a biased text search with a nearby search so well-known
// sights and local points of interest both appear.
func (s *Service) SearchAttractions(ctx context.Context, query interfaces.AttractionQuery) ([]models.CandidateAttraction, error) {
	if !s.Configured() {
		return nil, fmt.Errorf("places API key not configured")
	}

	limit := query.Limit
	if limit <= 0 || limit > s.maxResults {
		limit = s.maxResults
	}

	textParams := url.Values{}
	textParams.Set("query", "top attractions in "+query.Text)
	textParams.Set("type", "tourist_attraction")
	if query.Latitude != 0 || query.Longitude != 0 {
		textParams.Set("location", formatLatLng(query.Latitude, query.Longitude))
		textParams.Set("radius", "20000")
	}

	var textResp textSearchResponse
	if err := s.get(ctx, "/textsearch/json", textParams, &textResp); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	attractions := make([]models.CandidateAttraction, 0, limit)
	add := func(results []placeResult) {
		for _, result := range results {
			if len(attractions) >= limit || result.Name == "" || seen[result.Name] {
				continue
			}
			seen[result.Name] = true
			attractions = append(attractions, convertPlace(result))
		}
	}
	add(textResp.Results)

	// Supplement with a nearby search when the text search comes up short
	if len(attractions) < limit && (query.Latitude != 0 || query.Longitude != 0) {
		nearbyParams := url.Values{}
		nearbyParams.Set("location", formatLatLng(query.Latitude, query.Longitude))
		nearbyParams.Set("radius", "15000")
		nearbyParams.Set("type", "tourist_attraction")

		var nearbyResp textSearchResponse
		if err := s.get(ctx, "/nearbysearch/json", nearbyParams, &nearbyResp); err == nil {
			add(nearbyResp.Results)
		}
	}

	if len(attractions) == 0 {
		return nil, fmt.Errorf("no attractions found for %q", query.Text)
	}

	s.logger.Debug().Str("destination", query.Text).Int("attractions", len(attractions)).Msg("Attraction search completed")

	return attractions, nil
}

func (s *Service) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	if err := s.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait failed: %w", err)
	}

	params.Set("key", s.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("places request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("places API returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode places response: %w", err)
	}
	return nil
}

func convertPlace(result placeResult) models.CandidateAttraction {
	category := "attraction"
	for _, t := range result.Types {
		if t != "point_of_interest" && t != "establishment" {
			category = t
			break
		}
	}

	description := result.FormattedAddress
	if description == "" {
		description = result.Vicinity
	}

	lat := result.Geometry.Location.Lat
	lng := result.Geometry.Location.Lng

	return models.CandidateAttraction{
		Name:        result.Name,
		Category:    category,
		Latitude:    &lat,
		Longitude:   &lng,
		Rating:      result.Rating,
		Description: description,
		Source:      models.SourceProvider,
	}
}

func formatLatLng(lat, lng float64) string {
	return strconv.FormatFloat(lat, 'f', 4, 64) + "," + strconv.FormatFloat(lng, 'f', 4, 64)
}
