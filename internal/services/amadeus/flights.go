package amadeus

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/ternarybob/greentrip/internal/interfaces"
	"github.com/ternarybob/greentrip/internal/models"
)

// SearchFlights queries flight offers for the given route and dates
func (c *Client) SearchFlights(ctx context.Context, query interfaces.FlightQuery) ([]models.CandidateFlight, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("amadeus credentials not configured")
	}
	if query.Origin == "" || query.Destination == "" {
		return nil, fmt.Errorf("flight search requires origin and destination airport codes")
	}

	passengers := query.Passengers
	if passengers <= 0 {
		passengers = 1
	}

	params := url.Values{}
	params.Set("originLocationCode", query.Origin)
	params.Set("destinationLocationCode", query.Destination)
	params.Set("departureDate", query.DepartDate.String())
	if !query.ReturnDate.IsZero() {
		params.Set("returnDate", query.ReturnDate.String())
	}
	params.Set("adults", strconv.Itoa(passengers))
	if query.Cabin != "" {
		params.Set("travelClass", strings.ToUpper(string(query.Cabin)))
	}
	params.Set("currencyCode", "USD")
	params.Set("max", "20")

	var resp flightOffersResponse
	if err := c.get(ctx, "/v2/shopping/flight-offers", params, &resp); err != nil {
		return nil, err
	}

	flights := make([]models.CandidateFlight, 0, len(resp.Data))
	for _, offer := range resp.Data {
		flight, ok := convertOffer(offer)
		if !ok {
			continue
		}
		flights = append(flights, flight)
	}

	c.logger.Debug().
		Str("origin", query.Origin).
		Str("destination", query.Destination).
		Int("offers", len(flights)).
		Msg("Flight search completed")

	return flights, nil
}

// convertOffer maps an Amadeus offer to a candidate flight. Offers with
// no segments or an unparseable price are skipped.
func convertOffer(offer flightOffer) (models.CandidateFlight, bool) {
	var segments []models.FlightSegment
	totalMinutes := 0
	for _, itin := range offer.Itineraries {
		totalMinutes += parseISODurationMinutes(itin.Duration)
		for _, seg := range itin.Segments {
			segments = append(segments, models.FlightSegment{
				Origin:       seg.Departure.IataCode,
				Destination:  seg.Arrival.IataCode,
				Departure:    seg.Departure.At,
				Arrival:      seg.Arrival.At,
				Carrier:      seg.CarrierCode,
				FlightNumber: seg.CarrierCode + seg.Number,
			})
		}
	}
	if len(segments) == 0 {
		return models.CandidateFlight{}, false
	}

	priceStr := offer.Price.GrandTotal
	if priceStr == "" {
		priceStr = offer.Price.Total
	}
	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		return models.CandidateFlight{}, false
	}

	carrier := segments[0].Carrier
	if len(offer.ValidatingAirlineCodes) > 0 {
		carrier = offer.ValidatingAirlineCodes[0]
	}

	return models.CandidateFlight{
		ID:              offer.ID,
		Carrier:         carrier,
		Segments:        segments,
		Price:           price,
		Currency:        offer.Price.Currency,
		Cabin:           cabinFromOffer(offer),
		DurationMinutes: totalMinutes,
		Source:          models.SourceProvider,
	}, true
}

func cabinFromOffer(offer flightOffer) models.CabinClass {
	for _, tp := range offer.TravelerPricings {
		for _, fd := range tp.FareDetailsBySegment {
			switch fd.Cabin {
			case "PREMIUM_ECONOMY":
				return models.CabinPremiumEconomy
			case "BUSINESS":
				return models.CabinBusiness
			case "FIRST":
				return models.CabinFirst
			case "ECONOMY":
				return models.CabinEconomy
			}
		}
	}
	return models.CabinEconomy
}

// parseISODurationMinutes parses durations like "PT7H35M". Returns 0 on
// anything it cannot read.
func parseISODurationMinutes(s string) int {
	s = strings.TrimPrefix(s, "PT")
	minutes := 0
	if idx := strings.Index(s, "H"); idx >= 0 {
		if h, err := strconv.Atoi(s[:idx]); err == nil {
			minutes += h * 60
		}
		s = s[idx+1:]
	}
	if idx := strings.Index(s, "M"); idx >= 0 {
		if m, err := strconv.Atoi(s[:idx]); err == nil {
			minutes += m
		}
	}
	return minutes
}
