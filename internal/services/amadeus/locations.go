package amadeus

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// AirportByKeyword searches airports matching a free-text keyword and
// returns the first result's IATA code.
func (c *Client) AirportByKeyword(ctx context.Context, keyword string) (string, error) {
	if !c.Configured() {
		return "", fmt.Errorf("amadeus credentials not configured")
	}

	params := url.Values{}
	params.Set("keyword", keyword)
	params.Set("subType", "AIRPORT")

	var resp locationsResponse
	if err := c.get(ctx, "/v1/reference-data/locations", params, &resp); err != nil {
		return "", err
	}

	for _, entry := range resp.Data {
		if entry.IataCode != "" {
			return entry.IataCode, nil
		}
	}
	return "", fmt.Errorf("no airport found for keyword %q", keyword)
}

// AirportNear returns the IATA code of the closest airport within
// radiusKm of the given coordinates.
func (c *Client) AirportNear(ctx context.Context, lat, lon float64, radiusKm int) (string, error) {
	if !c.Configured() {
		return "", fmt.Errorf("amadeus credentials not configured")
	}
	if radiusKm <= 0 {
		radiusKm = 200
	}

	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(lat, 'f', 4, 64))
	params.Set("longitude", strconv.FormatFloat(lon, 'f', 4, 64))
	params.Set("radius", strconv.Itoa(radiusKm))

	var resp locationsResponse
	if err := c.get(ctx, "/v1/reference-data/locations/airports", params, &resp); err != nil {
		return "", err
	}

	for _, entry := range resp.Data {
		if entry.IataCode != "" {
			return entry.IataCode, nil
		}
	}
	return "", fmt.Errorf("no airport within %dkm of %.4f,%.4f", radiusKm, lat, lon)
}
