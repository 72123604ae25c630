package location

import (
	"context"
	"strings"
	"sync"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/greentrip/internal/common"
	"github.com/ternarybob/greentrip/internal/interfaces"
	"github.com/ternarybob/greentrip/internal/models"
)

const airportSearchRadiusKm = 200

// Resolver turns a destination string into coordinates and, when
// possible, an airport code. Airport lookups are cached per-process;
// coordinates are resolved fresh every time since accuracy matters
// more than the cost of a repeat geocode.
type Resolver struct {
	geocoder interfaces.PlacesProvider
	locator  interfaces.AirportLocator
	logger   arbor.ILogger

	mu        sync.RWMutex
	codeCache map[string]string
}

// NewResolver creates a resolver. Either collaborator may be nil, in
// which case the corresponding lookup layers are skipped.
func NewResolver(geocoder interfaces.PlacesProvider, locator interfaces.AirportLocator) *Resolver {
	return &Resolver{
		geocoder:  geocoder,
		locator:   locator,
		logger:    common.GetLogger(),
		codeCache: make(map[string]string),
	}
}

// Resolve never fails: missing coordinates degrade to a table or
// default value, and a missing airport code is reported as absent.
func (r *Resolver) Resolve(ctx context.Context, destination string) models.ResolvedLocation {
	lat, lon := r.resolveCoords(ctx, destination)

	location := models.ResolvedLocation{
		Latitude:  lat,
		Longitude: lon,
	}
	location.AirportCode = r.resolveAirport(ctx, destination, lat, lon)

	r.logger.Debug().
		Str("destination", destination).
		Str("airport", location.AirportCode).
		Msg("Destination resolved")

	return location
}

func (r *Resolver) resolveCoords(ctx context.Context, destination string) (float64, float64) {
	if r.geocoder != nil {
		if lat, lon, err := r.geocoder.Geocode(ctx, destination); err == nil {
			return lat, lon
		}
	}
	if entry, ok := cityCoords(destination); ok {
		return entry.Lat, entry.Lon
	}
	return table.DefaultCoords.Lat, table.DefaultCoords.Lon
}

// resolveAirport walks the lookup chain: static table, keyword search,
// radius search, absent.
func (r *Resolver) resolveAirport(ctx context.Context, destination string, lat, lon float64) string {
	cacheKey := strings.ToLower(strings.TrimSpace(destination))

	r.mu.RLock()
	if code, ok := r.codeCache[cacheKey]; ok {
		r.mu.RUnlock()
		return code
	}
	r.mu.RUnlock()

	code := r.lookupAirport(ctx, destination, lat, lon)
	if code != "" {
		r.mu.Lock()
		r.codeCache[cacheKey] = code
		r.mu.Unlock()
	}
	return code
}

func (r *Resolver) lookupAirport(ctx context.Context, destination string, lat, lon float64) string {
	if code, ok := cityAirport(destination); ok {
		return code
	}

	if r.locator != nil {
		if code, err := r.locator.AirportByKeyword(ctx, destination); err == nil && code != "" {
			return code
		}
		if code, err := r.locator.AirportNear(ctx, lat, lon, airportSearchRadiusKm); err == nil && code != "" {
			return code
		}
	}

	return ""
}
