package interfaces

import (
	"context"

	"github.com/ternarybob/greentrip/internal/models"
)

// ILocationResolver turns a destination string into coordinates and,
// when possible, an airport code.
type ILocationResolver interface {
	Resolve(ctx context.Context, destination string) models.ResolvedLocation
}

// IGenerator is the generative text model behind plan synthesis
type IGenerator interface {
	// Generate runs a single bounded completion and returns raw text
	Generate(ctx context.Context, instruction string) (string, error)
	// Name identifies the backing provider for logging
	Name() string
}

// IPlannerService runs the full itinerary pipeline
type IPlannerService interface {
	Plan(ctx context.Context, req models.TripRequest) (*models.ItineraryResult, error)
}

// IItineraryCache stores completed itineraries with a bounded lifetime
type IItineraryCache interface {
	Put(result *models.ItineraryResult) error
	Get(id string) (*models.ItineraryResult, error)
	Latest() (*models.ItineraryResult, error)
	Close() error
}
