package amadeus

// flightOffersResponse is the /v2/shopping/flight-offers payload,
// trimmed to the fields the planner consumes.
type flightOffersResponse struct {
	Data []flightOffer `json:"data"`
}

type flightOffer struct {
	ID                     string            `json:"id"`
	Itineraries            []flightItinerary `json:"itineraries"`
	Price                  offerPrice        `json:"price"`
	ValidatingAirlineCodes []string          `json:"validatingAirlineCodes"`
	TravelerPricings       []travelerPricing `json:"travelerPricings"`
}

type flightItinerary struct {
	Duration string          `json:"duration"` // ISO 8601, e.g. "PT7H35M"
	Segments []flightSegment `json:"segments"`
}

type flightSegment struct {
	Departure   segmentPoint `json:"departure"`
	Arrival     segmentPoint `json:"arrival"`
	CarrierCode string       `json:"carrierCode"`
	Number      string       `json:"number"`
}

type segmentPoint struct {
	IataCode string `json:"iataCode"`
	At       string `json:"at"`
}

type offerPrice struct {
	Currency   string `json:"currency"`
	GrandTotal string `json:"grandTotal"`
	Total      string `json:"total"`
}

type travelerPricing struct {
	FareDetailsBySegment []fareDetails `json:"fareDetailsBySegment"`
}

type fareDetails struct {
	Cabin string `json:"cabin"` // "ECONOMY", "PREMIUM_ECONOMY", "BUSINESS", "FIRST"
}

// hotelListResponse is the by-geocode reference-data payload
type hotelListResponse struct {
	Data []hotelListEntry `json:"data"`
}

type hotelListEntry struct {
	HotelID string       `json:"hotelId"`
	Name    string       `json:"name"`
	GeoCode hotelGeoCode `json:"geoCode"`
	Address hotelAddress `json:"address"`
}

type hotelGeoCode struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type hotelAddress struct {
	CountryCode string   `json:"countryCode"`
	Lines       []string `json:"lines"`
	CityName    string   `json:"cityName"`
}

// hotelOffersResponse is the /v3/shopping/hotel-offers payload
type hotelOffersResponse struct {
	Data []hotelOfferEntry `json:"data"`
}

type hotelOfferEntry struct {
	Hotel  hotelListEntry `json:"hotel"`
	Offers []hotelOffer   `json:"offers"`
}

type hotelOffer struct {
	ID           string     `json:"id"`
	CheckInDate  string     `json:"checkInDate"`
	CheckOutDate string     `json:"checkOutDate"`
	Price        offerPrice `json:"price"`
}

// locationsResponse is the reference-data locations payload used by
// both the keyword and radius airport lookups.
type locationsResponse struct {
	Data []locationEntry `json:"data"`
}

type locationEntry struct {
	IataCode string `json:"iataCode"`
	Name     string `json:"name"`
	SubType  string `json:"subType"`
}
