package planner

import (
	"context"

	"github.com/ternarybob/greentrip/internal/models"
	"github.com/ternarybob/greentrip/internal/services/carbon"
	"github.com/ternarybob/greentrip/internal/services/location"
)

// estimateEmissions populates emissions on every flight and lodging
// candidate, eagerly, right after aggregation. The external estimator
// is preferred when configured; the local model is the fallback. After
// this pass no candidate enters the synthesis prompt with a nil
// emissions figure.
func (s *Service) estimateEmissions(ctx context.Context, set *models.CandidateSet, passengers, nights int) {
	for i := range set.Flights {
		flight := &set.Flights[i]
		if flight.EmissionsKg != nil {
			continue
		}

		var kg float64
		estimated := false
		if s.carbon != nil && len(flight.Segments) > 0 {
			first := flight.Segments[0]
			if v, err := s.carbon.EstimateFlight(ctx, first.Origin, first.Destination, passengers); err == nil {
				kg = v
				estimated = true
			}
		}
		if !estimated {
			distance := carbon.FlightDistanceKm(flight.Segments, flight.DurationMinutes, location.AirportCoords)
			kg = carbon.EstimateFlightKg(distance, flight.Cabin) * float64(passengers)
		}
		flight.EmissionsKg = &kg
	}

	if nights < 1 {
		nights = 1
	}
	for i := range set.Lodging {
		lodge := &set.Lodging[i]
		if lodge.EmissionsKgPerNight != nil {
			continue
		}

		var perNight float64
		estimated := false
		if s.carbon != nil {
			// The external estimate covers the whole stay
			if total, err := s.carbon.EstimateLodging(ctx, nights); err == nil {
				perNight = total / float64(nights)
				estimated = true
			}
		}
		if !estimated {
			perNight = carbon.EstimateLodgingKgPerNight()
		}
		lodge.EmissionsKgPerNight = &perNight
	}
}
