package planner

import (
	"context"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/greentrip/internal/common"
	"github.com/ternarybob/greentrip/internal/interfaces"
	"github.com/ternarybob/greentrip/internal/models"
)

// Service runs the itinerary pipeline: resolve the destination, fetch
// candidates concurrently, estimate emissions, synthesize a plan and
// assemble the result. Provider and synthesis failures degrade to
// fallback data; the pipeline itself only fails on programming defects.
type Service struct {
	resolver  interfaces.ILocationResolver
	flights   interfaces.FlightProvider
	lodging   interfaces.LodgingProvider
	weather   interfaces.WeatherProvider
	places    interfaces.PlacesProvider
	carbon    interfaces.CarbonEstimator
	generator interfaces.IGenerator

	fetchTimeout  time.Duration
	topCandidates int
	leadTimeDays  int
	logger        arbor.ILogger
}

// Deps collects the pipeline collaborators. Any provider may be nil;
// its stage then goes straight to fallback data.
type Deps struct {
	Resolver  interfaces.ILocationResolver
	Flights   interfaces.FlightProvider
	Lodging   interfaces.LodgingProvider
	Weather   interfaces.WeatherProvider
	Places    interfaces.PlacesProvider
	Carbon    interfaces.CarbonEstimator
	Generator interfaces.IGenerator
}

// NewService creates the planner from configuration and collaborators
func NewService(config *common.Config, deps Deps) *Service {
	fetchTimeout := config.Planner.FetchTimeout
	if fetchTimeout <= 0 {
		fetchTimeout = 20 * time.Second
	}
	topCandidates := config.Planner.TopCandidates
	if topCandidates <= 0 {
		topCandidates = 5
	}
	leadTimeDays := config.Planner.LeadTimeDays
	if leadTimeDays <= 0 {
		leadTimeDays = 30
	}

	return &Service{
		resolver:      deps.Resolver,
		flights:       deps.Flights,
		lodging:       deps.Lodging,
		weather:       deps.Weather,
		places:        deps.Places,
		carbon:        deps.Carbon,
		generator:     deps.Generator,
		fetchTimeout:  fetchTimeout,
		topCandidates: topCandidates,
		leadTimeDays:  leadTimeDays,
		logger:        common.GetLogger(),
	}
}

// Plan runs the full pipeline for one trip request
func (s *Service) Plan(ctx context.Context, req models.TripRequest) (*models.ItineraryResult, error) {
	req.Normalize()

	tripDays := req.TripDays()
	start, end := req.Window(time.Now(), s.leadTimeDays)

	s.logger.Info().
		Str("destination", req.Destination).
		Int("days", tripDays).
		Str("mode", string(req.Mode)).
		Msg("Planning trip")

	destination := s.resolveDestination(ctx, req.Destination)
	origin := s.resolveOrigin(ctx, req.Origin)

	set := s.aggregate(ctx, req, destination, origin, start, end)

	nights := tripDays - 1
	if nights < 1 {
		nights = 1
	}
	s.estimateEmissions(ctx, &set, req.Travelers, nights)

	weights := WeightsForMode(req.Mode)
	draft := s.synthesize(ctx, req, weights, set, tripDays)

	result := assemble(req, destination, weights, set, draft, tripDays, start, end)

	s.logger.Info().
		Str("itinerary", result.ID).
		Float64("eco_score", result.EcoScore).
		Msg("Trip planned")

	return result, nil
}

func (s *Service) resolveDestination(ctx context.Context, destination string) models.ResolvedLocation {
	if s.resolver == nil {
		return models.ResolvedLocation{}
	}
	return s.resolver.Resolve(ctx, destination)
}

// resolveOrigin resolves the optional origin city to an airport code
func (s *Service) resolveOrigin(ctx context.Context, origin string) string {
	if origin == "" || s.resolver == nil {
		return ""
	}
	return s.resolver.Resolve(ctx, origin).AirportCode
}
