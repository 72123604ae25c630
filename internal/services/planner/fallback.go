package planner

import (
	"fmt"
	"sort"
	"time"

	"github.com/ternarybob/greentrip/internal/common"
	"github.com/ternarybob/greentrip/internal/models"
)

// Synthetic data used when a provider is unreachable. Values are
// procedurally varied so the candidate lists stay plausible and the
// prompt never sees an empty section.

var fallbackCarriers = []string{"AA", "DL", "UA", "BA", "AF"}
var fallbackBasePrices = []float64{399, 429, 475, 515, 559}
var fallbackDepartTimes = []string{"06:30", "09:15", "12:45", "15:20", "20:10"}
var fallbackDurationsMin = []int{380, 420, 455, 495, 540}
var fallbackReturnTimes = []string{"07:10", "11:00", "13:35", "17:25", "21:15"}
var fallbackReturnDurations = []int{395, 430, 465, 505, 545}

type fallbackHotel struct {
	name           string
	nightlyRate    float64
	sustainability float64
}

var fallbackHotels = []fallbackHotel{
	{"Hilton Garden Inn Signature", 189, 0.7},
	{"Marriott Select Suites", 215, 0.75},
	{"Anderson Boutique Hotel", 245, 0.82},
	{"The Heritage Collection", 260, 0.78},
	{"Summit Grand Residences", 305, 0.8},
}

// fallbackFlights builds five synthetic offers with distinct carriers,
// times and strictly increasing prices, sorted cheapest first.
func fallbackFlights(origin, destination string, depart, ret models.Date, cabin models.CabinClass) []models.CandidateFlight {
	if origin == "" {
		origin = "ORG"
	}
	if destination == "" {
		destination = "DST"
	}
	if cabin == "" {
		cabin = models.CabinEconomy
	}

	flights := make([]models.CandidateFlight, 0, len(fallbackCarriers))
	for i, carrier := range fallbackCarriers {
		price := fallbackBasePrices[i] * cabin.PriceMultiplier()
		duration := fallbackDurationsMin[i]

		departAt := syntheticTime(depart, fallbackDepartTimes[i])
		segments := []models.FlightSegment{{
			Origin:       origin,
			Destination:  destination,
			Departure:    departAt,
			Arrival:      syntheticArrival(departAt, duration),
			Carrier:      carrier,
			FlightNumber: fmt.Sprintf("%s%d", carrier, 1000+i),
		}}

		totalDuration := duration
		if !ret.IsZero() {
			returnAt := syntheticTime(ret, fallbackReturnTimes[i])
			segments = append(segments, models.FlightSegment{
				Origin:       destination,
				Destination:  origin,
				Departure:    returnAt,
				Arrival:      syntheticArrival(returnAt, fallbackReturnDurations[i]),
				Carrier:      carrier,
				FlightNumber: fmt.Sprintf("%s%d", carrier, 2000+i),
			})
			totalDuration += fallbackReturnDurations[i]
		}

		flights = append(flights, models.CandidateFlight{
			ID:              common.NewCandidateID(),
			Carrier:         carrier,
			Segments:        segments,
			Price:           price,
			Currency:        "USD",
			Cabin:           cabin,
			DurationMinutes: totalDuration,
			Source:          models.SourceFallback,
		})
	}

	sort.Slice(flights, func(i, j int) bool { return flights[i].Price < flights[j].Price })
	return flights
}

// fallbackLodging builds five synthetic hotels in the city center
func fallbackLodging() []models.CandidateLodging {
	lodging := make([]models.CandidateLodging, 0, len(fallbackHotels))
	for _, h := range fallbackHotels {
		score := h.sustainability
		lodging = append(lodging, models.CandidateLodging{
			ID:                  common.NewCandidateID(),
			Name:                h.name,
			Address:             "City Center",
			NightlyRate:         h.nightlyRate,
			Currency:            "USD",
			SustainabilityScore: &score,
			Source:              models.SourceFallback,
		})
	}
	return lodging
}

// fallbackWeather produces mild placeholder conditions for each trip day
func fallbackWeather(start models.Date, days int) []models.WeatherSnapshot {
	snapshots := make([]models.WeatherSnapshot, 0, days)
	for i := 0; i < days; i++ {
		snapshots = append(snapshots, models.WeatherSnapshot{
			Date:       start.AddDays(i),
			HighC:      22,
			LowC:       14,
			PrecipProb: 0.1,
			Summary:    "Warm and pleasant",
			Source:     models.SourceFallback,
		})
	}
	return snapshots
}

// fallbackAttractions names generic sights so the plan prompt always
// has something to place in each daypart.
func fallbackAttractions(destination string) []models.CandidateAttraction {
	names := []struct {
		name     string
		category string
	}{
		{"Old Town Walking Route", "neighborhood"},
		{destination + " History Museum", "museum"},
		{"Central Market Hall", "market"},
		{"Riverside Promenade", "park"},
		{"Panorama Viewpoint", "viewpoint"},
	}
	attractions := make([]models.CandidateAttraction, 0, len(names))
	for _, n := range names {
		attractions = append(attractions, models.CandidateAttraction{
			Name:        n.name,
			Category:    n.category,
			Description: "Popular with visitors year round",
			Source:      models.SourceFallback,
		})
	}
	return attractions
}

func syntheticTime(date models.Date, hhmm string) string {
	if date.IsZero() {
		date = models.Date{Time: time.Now().UTC().Truncate(24 * time.Hour)}
	}
	return date.String() + "T" + hhmm + ":00"
}

func syntheticArrival(departure string, durationMinutes int) string {
	t, err := time.Parse("2006-01-02T15:04:05", departure)
	if err != nil {
		return departure
	}
	return t.Add(time.Duration(durationMinutes) * time.Minute).Format("2006-01-02T15:04:05")
}
