package interfaces

import (
	"context"

	"github.com/ternarybob/greentrip/internal/models"
)

// FlightQuery describes a flight search
type FlightQuery struct {
	Origin      string // IATA code
	Destination string // IATA code
	DepartDate  models.Date
	ReturnDate  models.Date // zero for one-way
	Passengers  int
	Cabin       models.CabinClass
}

// LodgingQuery describes a lodging search
type LodgingQuery struct {
	Latitude  float64
	Longitude float64
	CheckIn   models.Date
	CheckOut  models.Date
	Guests    int
}

// WeatherQuery describes a forecast request for a trip window
type WeatherQuery struct {
	Latitude  float64
	Longitude float64
	Start     models.Date
	End       models.Date
}

// AttractionQuery describes a point-of-interest search
type AttractionQuery struct {
	Text      string
	Latitude  float64
	Longitude float64
	Limit     int
}

// FlightProvider searches flight offers
type FlightProvider interface {
	SearchFlights(ctx context.Context, query FlightQuery) ([]models.CandidateFlight, error)
}

// LodgingProvider searches lodging offers
type LodgingProvider interface {
	SearchLodging(ctx context.Context, query LodgingQuery) ([]models.CandidateLodging, error)
}

// WeatherProvider returns per-day forecasts for a trip window
type WeatherProvider interface {
	Forecast(ctx context.Context, query WeatherQuery) ([]models.WeatherSnapshot, error)
}

// PlacesProvider geocodes free text and searches attractions
type PlacesProvider interface {
	Geocode(ctx context.Context, text string) (lat, lon float64, err error)
	SearchAttractions(ctx context.Context, query AttractionQuery) ([]models.CandidateAttraction, error)
}

// AirportLocator resolves airport codes from free text or coordinates
type AirportLocator interface {
	AirportByKeyword(ctx context.Context, keyword string) (string, error)
	AirportNear(ctx context.Context, lat, lon float64, radiusKm int) (string, error)
}

// CarbonEstimator provides external carbon estimates. Implementations
// return ErrNotConfigured-style errors when no API key is present so
// the local model can take over.
type CarbonEstimator interface {
	EstimateFlight(ctx context.Context, origin, destination string, passengers int) (float64, error)
	EstimateLodging(ctx context.Context, nights int) (float64, error)
}
