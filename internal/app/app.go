package app

import (
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/greentrip/internal/common"
	"github.com/ternarybob/greentrip/internal/handlers"
	"github.com/ternarybob/greentrip/internal/interfaces"
	"github.com/ternarybob/greentrip/internal/services/amadeus"
	"github.com/ternarybob/greentrip/internal/services/cache"
	"github.com/ternarybob/greentrip/internal/services/carbon"
	"github.com/ternarybob/greentrip/internal/services/llm"
	"github.com/ternarybob/greentrip/internal/services/location"
	"github.com/ternarybob/greentrip/internal/services/places"
	"github.com/ternarybob/greentrip/internal/services/planner"
	"github.com/ternarybob/greentrip/internal/services/weather"
)

// App holds all application components and dependencies
type App struct {
	Config *common.Config
	Logger arbor.ILogger

	// Provider clients
	AmadeusClient  *amadeus.Client
	PlacesService  *places.Service
	WeatherService *weather.Service
	CarbonService  *carbon.ClimatiqService

	// Pipeline
	Resolver       *location.Resolver
	Generator      interfaces.IGenerator
	PlannerService interfaces.IPlannerService
	ItineraryCache interfaces.IItineraryCache

	// HTTP handlers
	APIHandler  *handlers.APIHandler
	PlanHandler *handlers.PlanHandler
}

// New wires the application from configuration. Providers without
// credentials are wired in anyway; their calls fail fast and the
// pipeline degrades to fallback data.
func New(config *common.Config, logger arbor.ILogger) (*App, error) {
	a := &App{
		Config: config,
		Logger: logger,
	}

	a.AmadeusClient = amadeus.NewClient(
		config.Amadeus.APIKey,
		config.Amadeus.APISecret,
		amadeus.WithBaseURL(config.Amadeus.BaseURL),
		amadeus.WithRateLimit(config.Amadeus.RateLimit),
	)
	a.PlacesService = places.NewService(config)
	a.WeatherService = weather.NewService(config)
	a.CarbonService = carbon.NewClimatiqService(config)

	a.Resolver = location.NewResolver(a.PlacesService, a.AmadeusClient)

	generator, err := llm.NewGenerator(config)
	if err != nil {
		// The planner falls back to the deterministic plan builder
		logger.Warn().Err(err).Msg("Generative model unavailable, plans will use the deterministic builder")
	} else {
		a.Generator = generator
	}

	itineraries, err := cache.NewService(config)
	if err != nil {
		return nil, err
	}
	a.ItineraryCache = itineraries

	a.PlannerService = planner.NewService(config, planner.Deps{
		Resolver:  a.Resolver,
		Flights:   a.AmadeusClient,
		Lodging:   a.AmadeusClient,
		Weather:   a.WeatherService,
		Places:    a.PlacesService,
		Carbon:    a.CarbonService,
		Generator: a.Generator,
	})

	a.APIHandler = handlers.NewAPIHandler()
	a.PlanHandler = handlers.NewPlanHandler(a.PlannerService, a.ItineraryCache)

	logger.Info().
		Bool("amadeus", a.AmadeusClient.Configured()).
		Bool("places", a.PlacesService.Configured()).
		Bool("weather", a.WeatherService.Configured()).
		Bool("generator", a.Generator != nil).
		Msg("Application wired")

	return a, nil
}

// Close releases application resources
func (a *App) Close() error {
	if a.ItineraryCache != nil {
		return a.ItineraryCache.Close()
	}
	return nil
}
