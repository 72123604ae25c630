package planner

import (
	"context"
	"sync"

	"github.com/ternarybob/greentrip/internal/interfaces"
	"github.com/ternarybob/greentrip/internal/models"
)

// aggregate fans out to the four providers concurrently. Each fetch
// carries its own timeout and substitutes synthetic fallback data on
// any error, so one provider's failure never aborts the pipeline. Each
// goroutine writes to its own slot in the result, so no locking is
// needed beyond the join.
func (s *Service) aggregate(ctx context.Context, req models.TripRequest, loc models.ResolvedLocation, origin string, start, end models.Date) models.CandidateSet {
	var set models.CandidateSet
	var wg sync.WaitGroup
	wg.Add(4)

	tripDays := req.TripDays()

	go func() {
		defer wg.Done()
		set.Flights = s.fetchFlights(ctx, req, loc, origin, start, end)
	}()

	go func() {
		defer wg.Done()
		set.Lodging = s.fetchLodging(ctx, req, loc, start, end)
	}()

	go func() {
		defer wg.Done()
		set.Weather = s.fetchWeather(ctx, loc, start, end, tripDays)
	}()

	go func() {
		defer wg.Done()
		set.Attractions = s.fetchAttractions(ctx, req, loc)
	}()

	wg.Wait()
	return set
}

func (s *Service) fetchFlights(ctx context.Context, req models.TripRequest, loc models.ResolvedLocation, origin string, start, end models.Date) []models.CandidateFlight {
	ctx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	if s.flights != nil && loc.HasAirport() && origin != "" {
		flights, err := s.flights.SearchFlights(ctx, interfaces.FlightQuery{
			Origin:      origin,
			Destination: loc.AirportCode,
			DepartDate:  start,
			ReturnDate:  end,
			Passengers:  req.Travelers,
			Cabin:       models.CabinEconomy,
		})
		if err == nil && len(flights) > 0 {
			return flights
		}
		if err != nil {
			s.logger.Warn().Err(err).Msg("Flight search failed, using synthetic offers")
		}
	}

	return fallbackFlights(origin, loc.AirportCode, start, end, models.CabinEconomy)
}

func (s *Service) fetchLodging(ctx context.Context, req models.TripRequest, loc models.ResolvedLocation, start, end models.Date) []models.CandidateLodging {
	ctx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	if s.lodging != nil {
		lodging, err := s.lodging.SearchLodging(ctx, interfaces.LodgingQuery{
			Latitude:  loc.Latitude,
			Longitude: loc.Longitude,
			CheckIn:   start,
			CheckOut:  end,
			Guests:    req.Travelers,
		})
		if err == nil && len(lodging) > 0 {
			return lodging
		}
		if err != nil {
			s.logger.Warn().Err(err).Msg("Lodging search failed, using synthetic hotels")
		}
	}

	return fallbackLodging()
}

func (s *Service) fetchWeather(ctx context.Context, loc models.ResolvedLocation, start, end models.Date, tripDays int) []models.WeatherSnapshot {
	ctx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	if s.weather != nil {
		snapshots, err := s.weather.Forecast(ctx, interfaces.WeatherQuery{
			Latitude:  loc.Latitude,
			Longitude: loc.Longitude,
			Start:     start,
			End:       end,
		})
		if err == nil && len(snapshots) > 0 {
			return snapshots
		}
		if err != nil {
			s.logger.Warn().Err(err).Msg("Forecast failed, using placeholder weather")
		}
	}

	return fallbackWeather(start, tripDays)
}

func (s *Service) fetchAttractions(ctx context.Context, req models.TripRequest, loc models.ResolvedLocation) []models.CandidateAttraction {
	ctx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	if s.places != nil {
		attractions, err := s.places.SearchAttractions(ctx, interfaces.AttractionQuery{
			Text:      req.Destination,
			Latitude:  loc.Latitude,
			Longitude: loc.Longitude,
			Limit:     20,
		})
		if err == nil && len(attractions) > 0 {
			return attractions
		}
		if err != nil {
			s.logger.Warn().Err(err).Msg("Attraction search failed, using generic sights")
		}
	}

	return fallbackAttractions(req.Destination)
}
