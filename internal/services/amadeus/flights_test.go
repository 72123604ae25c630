package amadeus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/greentrip/internal/models"
)

func TestParseISODurationMinutes(t *testing.T) {
	assert.Equal(t, 455, parseISODurationMinutes("PT7H35M"))
	assert.Equal(t, 420, parseISODurationMinutes("PT7H"))
	assert.Equal(t, 45, parseISODurationMinutes("PT45M"))
	assert.Equal(t, 0, parseISODurationMinutes("bogus"))
}

func TestConvertOffer(t *testing.T) {
	offer := flightOffer{
		ID: "1",
		Itineraries: []flightItinerary{{
			Duration: "PT7H35M",
			Segments: []flightSegment{{
				Departure:   segmentPoint{IataCode: "JFK", At: "2025-06-01T18:30:00"},
				Arrival:     segmentPoint{IataCode: "CDG", At: "2025-06-02T07:05:00"},
				CarrierCode: "AF",
				Number:      "23",
			}},
		}},
		Price:                  offerPrice{Currency: "USD", GrandTotal: "512.30"},
		ValidatingAirlineCodes: []string{"AF"},
		TravelerPricings: []travelerPricing{{
			FareDetailsBySegment: []fareDetails{{Cabin: "ECONOMY"}},
		}},
	}

	flight, ok := convertOffer(offer)
	require.True(t, ok)

	assert.Equal(t, "AF", flight.Carrier)
	require.Len(t, flight.Segments, 1)
	assert.Equal(t, "AF23", flight.Segments[0].FlightNumber)
	assert.InDelta(t, 512.30, flight.Price, 0.001)
	assert.Equal(t, models.CabinEconomy, flight.Cabin)
	assert.Equal(t, 455, flight.DurationMinutes)
	assert.Equal(t, models.SourceProvider, flight.Source)
	assert.Nil(t, flight.EmissionsKg, "emissions are set later by the estimator")
}

func TestConvertOfferSkipsUnusable(t *testing.T) {
	_, ok := convertOffer(flightOffer{ID: "1", Price: offerPrice{GrandTotal: "100"}})
	assert.False(t, ok, "offer without segments is skipped")

	offer := flightOffer{
		ID: "2",
		Itineraries: []flightItinerary{{
			Segments: []flightSegment{{
				Departure: segmentPoint{IataCode: "JFK"}, Arrival: segmentPoint{IataCode: "CDG"}, CarrierCode: "AF",
			}},
		}},
		Price: offerPrice{GrandTotal: "not-a-number"},
	}
	_, ok = convertOffer(offer)
	assert.False(t, ok, "offer with an unparseable price is skipped")
}
