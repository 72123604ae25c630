package models

// ResolvedLocation is the destination resolved to coordinates and,
// when possible, an airport code. Computed once per request and never
// mutated afterwards.
type ResolvedLocation struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	AirportCode string  `json:"airport_code,omitempty"` // empty when unresolved
}

// HasAirport reports whether an airport code was resolved.
func (l ResolvedLocation) HasAirport() bool {
	return l.AirportCode != ""
}

// ObjectiveWeights are the relative saliences passed to the plan
// synthesizer. They are guidance, not solver coefficients, and need
// not sum to 1.
type ObjectiveWeights struct {
	Price      float64 `json:"price"`
	Emissions  float64 `json:"emissions"`
	Preference float64 `json:"preference"`
}

// FlightSummary is a compact display projection of a CandidateFlight
type FlightSummary struct {
	ID          string  `json:"id"`
	Carrier     string  `json:"carrier"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Departure   string  `json:"departure"`
	Arrival     string  `json:"arrival"`
	Stops       int     `json:"stops"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	Cabin       string  `json:"cabin"`
	EmissionsKg float64 `json:"emissions_kg"`
	EcoScore    float64 `json:"eco_score"` // per-flight, 0..100
}

// LodgingSummary is a compact display projection of a CandidateLodging
type LodgingSummary struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Address             string   `json:"address"`
	NightlyRate         float64  `json:"nightly_rate"`
	Currency            string   `json:"currency"`
	SustainabilityScore *float64 `json:"sustainability_score,omitempty"`
	EmissionsKgPerNight float64  `json:"emissions_kg_per_night"`
}

// BudgetBreakdown splits the trip budget into fixed costs and a
// discretionary allocation of whatever remains.
type BudgetBreakdown struct {
	Flights       float64 `json:"flights"`
	Lodging       float64 `json:"lodging"`
	Activities    float64 `json:"activities"`
	Dining        float64 `json:"dining"`
	Transit       float64 `json:"transit"`
	EmergencyFund float64 `json:"emergency_fund"`
	Currency      string  `json:"currency"`
}

// SustainabilityScore grades the trip's sustainability posture as
// points with a named tier and the reasons each point was awarded.
type SustainabilityScore struct {
	TotalPoints int      `json:"total_points"`
	Tier        string   `json:"tier"`
	Breakdown   []string `json:"breakdown"`
}

// ItineraryResult is the single object returned to callers. All
// intermediate pipeline objects stay private.
type ItineraryResult struct {
	ID             string              `json:"id"`
	Request        TripRequest         `json:"request"`
	Destination    ResolvedLocation    `json:"destination"`
	TripDays       int                 `json:"trip_days"`
	StartDate      Date                `json:"start_date"`
	EndDate        Date                `json:"end_date"`
	Weights        ObjectiveWeights    `json:"weights"`
	Plan           PlanDraft           `json:"plan"`
	EcoScore       float64             `json:"eco_score"` // 0..100
	Budget         BudgetBreakdown     `json:"budget_breakdown"`
	Sustainability SustainabilityScore `json:"sustainability"`
	Flights        []FlightSummary     `json:"flights"`
	Lodging        []LodgingSummary    `json:"lodging"`
	Weather        []WeatherSnapshot   `json:"weather"`
	CreatedAt      string              `json:"created_at"` // RFC 3339
}
