package carbon

import (
	"math"

	"github.com/ternarybob/greentrip/internal/models"
)

const (
	earthRadiusKm = 6371.0

	// DEFRA-style emission factors in kg CO2 per passenger-km
	shortHaulFactor  = 0.158 // <= 1500 km
	mediumHaulFactor = 0.111 // <= 3500 km
	longHaulFactor   = 0.102 // > 3500 km

	// Radiative forcing index accounting for non-CO2 climate impact
	// of aviation at altitude
	radiativeForcingIndex = 1.9

	cruiseSpeedKmh    = 800.0
	minimumDistanceKm = 500.0
	defaultDistanceKm = 1500.0

	// Fixed heuristic for a hotel night when no external estimate is
	// available
	lodgingKgPerNight = 15.0
)

// CoordsFunc looks up airport coordinates by IATA code
type CoordsFunc func(code string) (lat, lon float64, ok bool)

// HaversineKm returns the great-circle distance between two points
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	rad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := rad(lat2 - lat1)
	dLon := rad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// FlightDistanceKm computes the total great-circle distance across all
// segments. When any segment's airport coordinates are unknown it falls
// back to a cruise-speed estimate from the flight duration, floored at
// 500 km, and to 1500 km when the duration is unusable too.
func FlightDistanceKm(segments []models.FlightSegment, durationMinutes int, coords CoordsFunc) float64 {
	total := 0.0
	for _, seg := range segments {
		lat1, lon1, ok1 := coords(seg.Origin)
		lat2, lon2, ok2 := coords(seg.Destination)
		if !ok1 || !ok2 {
			if durationMinutes > 0 {
				return math.Max(minimumDistanceKm, float64(durationMinutes)/60*cruiseSpeedKmh)
			}
			return defaultDistanceKm
		}
		total += HaversineKm(lat1, lon1, lat2, lon2)
	}
	if total <= 0 {
		return defaultDistanceKm
	}
	return total
}

// emissionFactor returns the kg CO2 per passenger-km for a distance
// band, including radiative forcing.
func emissionFactor(distanceKm float64) float64 {
	switch {
	case distanceKm <= 1500:
		return shortHaulFactor * radiativeForcingIndex
	case distanceKm <= 3500:
		return mediumHaulFactor * radiativeForcingIndex
	default:
		return longHaulFactor * radiativeForcingIndex
	}
}

// EstimateFlightKg computes per-passenger flight emissions from the
// local distance-band model.
func EstimateFlightKg(distanceKm float64, cabin models.CabinClass) float64 {
	return distanceKm * emissionFactor(distanceKm) * cabin.EmissionMultiplier()
}

// EstimateLodgingKgPerNight returns the heuristic nightly lodging
// emissions used when no external estimate is available.
func EstimateLodgingKgPerNight() float64 {
	return lodgingKgPerNight
}
