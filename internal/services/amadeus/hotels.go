package amadeus

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/ternarybob/greentrip/internal/common"
	"github.com/ternarybob/greentrip/internal/interfaces"
	"github.com/ternarybob/greentrip/internal/models"
)

const maxHotelIDs = 20

// SearchLodging finds hotels near the given coordinates and prices
// them for the stay window. Amadeus splits this into a reference-data
// lookup followed by an offer search on the returned hotel IDs.
func (c *Client) SearchLodging(ctx context.Context, query interfaces.LodgingQuery) ([]models.CandidateLodging, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("amadeus credentials not configured")
	}

	listParams := url.Values{}
	listParams.Set("latitude", strconv.FormatFloat(query.Latitude, 'f', 4, 64))
	listParams.Set("longitude", strconv.FormatFloat(query.Longitude, 'f', 4, 64))
	listParams.Set("radius", "20")
	listParams.Set("radiusUnit", "KM")

	var list hotelListResponse
	if err := c.get(ctx, "/v1/reference-data/locations/hotels/by-geocode", listParams, &list); err != nil {
		return nil, err
	}
	if len(list.Data) == 0 {
		return nil, fmt.Errorf("no hotels found near %.4f,%.4f", query.Latitude, query.Longitude)
	}

	ids := make([]string, 0, maxHotelIDs)
	for _, entry := range list.Data {
		if entry.HotelID == "" {
			continue
		}
		ids = append(ids, entry.HotelID)
		if len(ids) == maxHotelIDs {
			break
		}
	}

	guests := query.Guests
	if guests <= 0 {
		guests = 1
	}

	offerParams := url.Values{}
	offerParams.Set("hotelIds", strings.Join(ids, ","))
	offerParams.Set("checkInDate", query.CheckIn.String())
	offerParams.Set("checkOutDate", query.CheckOut.String())
	offerParams.Set("adults", strconv.Itoa(guests))
	offerParams.Set("currency", "USD")

	var offers hotelOffersResponse
	if err := c.get(ctx, "/v3/shopping/hotel-offers", offerParams, &offers); err != nil {
		return nil, err
	}

	nights := int(query.CheckOut.Sub(query.CheckIn.Time).Hours() / 24)
	if nights < 1 {
		nights = 1
	}

	lodging := make([]models.CandidateLodging, 0, len(offers.Data))
	for _, entry := range offers.Data {
		if len(entry.Offers) == 0 {
			continue
		}
		total, err := strconv.ParseFloat(entry.Offers[0].Price.Total, 64)
		if err != nil || total <= 0 {
			continue
		}
		address := entry.Hotel.Address.CityName
		if len(entry.Hotel.Address.Lines) > 0 {
			address = strings.Join(entry.Hotel.Address.Lines, ", ")
		}
		lodging = append(lodging, models.CandidateLodging{
			ID:          common.NewCandidateID(),
			Name:        entry.Hotel.Name,
			Address:     address,
			NightlyRate: total / float64(nights),
			Currency:    entry.Offers[0].Price.Currency,
			Source:      models.SourceProvider,
		})
	}

	c.logger.Debug().Int("hotels", len(lodging)).Msg("Hotel search completed")

	return lodging, nil
}
