package places

// textSearchResponse is the Places text/nearby search payload, trimmed
// to the fields the planner consumes.
type textSearchResponse struct {
	Results []placeResult `json:"results"`
	Status  string        `json:"status"`
}

type placeResult struct {
	Name             string        `json:"name"`
	FormattedAddress string        `json:"formatted_address"`
	Vicinity         string        `json:"vicinity"`
	Rating           *float64      `json:"rating"`
	UserRatingsTotal int           `json:"user_ratings_total"`
	Types            []string      `json:"types"`
	Geometry         placeGeometry `json:"geometry"`
}

type placeGeometry struct {
	Location placeLocation `json:"location"`
}

type placeLocation struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
