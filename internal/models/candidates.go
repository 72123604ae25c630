package models

// CandidateSource tags where a candidate list came from, so downstream
// code branches on an explicit variant instead of probing fields.
type CandidateSource string

const (
	// SourceProvider marks data returned by a live provider
	SourceProvider CandidateSource = "provider"
	// SourceFallback marks locally generated synthetic data
	SourceFallback CandidateSource = "fallback"
)

// CabinClass is a flight cabin class
type CabinClass string

const (
	CabinEconomy        CabinClass = "economy"
	CabinPremiumEconomy CabinClass = "premium_economy"
	CabinBusiness       CabinClass = "business"
	CabinFirst          CabinClass = "first"
)

// EmissionMultiplier returns the cabin-class factor applied to the
// per-passenger flight emission estimate.
func (c CabinClass) EmissionMultiplier() float64 {
	switch c {
	case CabinPremiumEconomy:
		return 1.15
	case CabinBusiness:
		return 1.5
	case CabinFirst:
		return 2.0
	default:
		return 1.0
	}
}

// PriceMultiplier returns the cabin-class factor applied to synthetic
// fallback fares.
func (c CabinClass) PriceMultiplier() float64 {
	switch c {
	case CabinPremiumEconomy:
		return 1.25
	case CabinBusiness:
		return 1.8
	case CabinFirst:
		return 2.6
	default:
		return 1.0
	}
}

// Rank orders cabins from cheapest to most premium.
func (c CabinClass) Rank() int {
	switch c {
	case CabinPremiumEconomy:
		return 1
	case CabinBusiness:
		return 2
	case CabinFirst:
		return 3
	default:
		return 0
	}
}

// FlightSegment is a single leg of a flight option
type FlightSegment struct {
	Origin       string `json:"origin"`
	Destination  string `json:"destination"`
	Departure    string `json:"departure"` // RFC 3339 local time from the provider
	Arrival      string `json:"arrival"`
	Carrier      string `json:"carrier"`
	FlightNumber string `json:"flight_number"`
}

// CandidateFlight is a flight option under consideration for the plan.
// EmissionsKg stays nil until the estimator runs; it is always set
// before the flight reaches the synthesis prompt.
type CandidateFlight struct {
	ID              string          `json:"id"`
	Carrier         string          `json:"carrier"`
	Segments        []FlightSegment `json:"segments"`
	Price           float64         `json:"price"`
	Currency        string          `json:"currency"`
	Cabin           CabinClass      `json:"cabin"`
	DurationMinutes int             `json:"duration_minutes,omitempty"`
	EmissionsKg     *float64        `json:"emissions_kg,omitempty"`
	Source          CandidateSource `json:"source"`
}

// CandidateLodging is a lodging option under consideration
type CandidateLodging struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Address             string          `json:"address"`
	NightlyRate         float64         `json:"nightly_rate"`
	Currency            string          `json:"currency"`
	SustainabilityScore *float64        `json:"sustainability_score,omitempty"` // 0..1
	EmissionsKgPerNight *float64        `json:"emissions_kg_per_night,omitempty"`
	Source              CandidateSource `json:"source"`
}

// CandidateAttraction is a point of interest near the destination
type CandidateAttraction struct {
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Latitude    *float64        `json:"latitude,omitempty"`
	Longitude   *float64        `json:"longitude,omitempty"`
	Rating      *float64        `json:"rating,omitempty"`
	Description string          `json:"description,omitempty"`
	Source      CandidateSource `json:"source"`
}

// DaypartSummary describes expected conditions for part of a day
type DaypartSummary struct {
	Summary    string  `json:"summary"`
	TempC      float64 `json:"temp_c"`
	PrecipProb float64 `json:"precip_prob"` // 0..1
}

// WeatherSnapshot is the expected weather for one trip day
type WeatherSnapshot struct {
	Date       Date            `json:"date"`
	HighC      float64         `json:"high_c"`
	LowC       float64         `json:"low_c"`
	PrecipProb float64         `json:"precip_prob"` // 0..1
	Summary    string          `json:"summary"`
	Morning    *DaypartSummary `json:"morning,omitempty"`
	Afternoon  *DaypartSummary `json:"afternoon,omitempty"`
	Evening    *DaypartSummary `json:"evening,omitempty"`
	Source     CandidateSource `json:"source"`
}

// CandidateSet is the aggregated output of the concurrent provider
// fetches. Each list is independently either provider data or fallback.
type CandidateSet struct {
	Flights     []CandidateFlight
	Lodging     []CandidateLodging
	Attractions []CandidateAttraction
	Weather     []WeatherSnapshot
}
