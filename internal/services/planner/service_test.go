package planner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/greentrip/internal/common"
	"github.com/ternarybob/greentrip/internal/interfaces"
	"github.com/ternarybob/greentrip/internal/models"
)

var errDown = errors.New("provider unreachable")

type failingProviders struct{}

func (failingProviders) SearchFlights(ctx context.Context, q interfaces.FlightQuery) ([]models.CandidateFlight, error) {
	return nil, errDown
}

func (failingProviders) SearchLodging(ctx context.Context, q interfaces.LodgingQuery) ([]models.CandidateLodging, error) {
	return nil, errDown
}

func (failingProviders) Forecast(ctx context.Context, q interfaces.WeatherQuery) ([]models.WeatherSnapshot, error) {
	return nil, errDown
}

func (failingProviders) Geocode(ctx context.Context, text string) (float64, float64, error) {
	return 0, 0, errDown
}

func (failingProviders) SearchAttractions(ctx context.Context, q interfaces.AttractionQuery) ([]models.CandidateAttraction, error) {
	return nil, errDown
}

func (failingProviders) EstimateFlight(ctx context.Context, origin, destination string, passengers int) (float64, error) {
	return 0, errDown
}

func (failingProviders) EstimateLodging(ctx context.Context, nights int) (float64, error) {
	return 0, errDown
}

type failingGenerator struct{}

func (failingGenerator) Generate(ctx context.Context, instruction string) (string, error) {
	return "", errDown
}

func (failingGenerator) Name() string { return "failing" }

type staticResolver struct {
	loc models.ResolvedLocation
}

func (r staticResolver) Resolve(ctx context.Context, destination string) models.ResolvedLocation {
	return r.loc
}

type cannedGenerator struct {
	output string
}

func (g cannedGenerator) Generate(ctx context.Context, instruction string) (string, error) {
	return g.output, nil
}

func (g cannedGenerator) Name() string { return "canned" }

func newTestService(generator interfaces.IGenerator) *Service {
	var down failingProviders
	return NewService(common.NewDefaultConfig(), Deps{
		Resolver:  staticResolver{loc: models.ResolvedLocation{Latitude: 48.8566, Longitude: 2.3522, AirportCode: "CDG"}},
		Flights:   down,
		Lodging:   down,
		Weather:   down,
		Places:    down,
		Carbon:    down,
		Generator: generator,
	})
}

func TestPlanAllProvidersDown(t *testing.T) {
	service := newTestService(failingGenerator{})

	req := models.TripRequest{
		Destination: "Paris",
		NumDays:     3,
		Budget:      2000,
		Mode:        models.TripModeBalanced,
	}

	result, err := service.Plan(context.Background(), req)
	require.NoError(t, err, "the pipeline must absorb provider failures")
	require.NotNil(t, result)

	assert.Len(t, result.Plan.Days, 3)
	require.NotNil(t, result.Plan.Totals)
	assert.Greater(t, result.Plan.Totals.Cost, 0.0)
	assert.Greater(t, result.Plan.Totals.EmissionsKg, 0.0)
	assert.GreaterOrEqual(t, result.EcoScore, 0.0)
	assert.LessOrEqual(t, result.EcoScore, 100.0)

	// Every candidate carries emissions after the estimation pass
	require.NotEmpty(t, result.Flights)
	for _, f := range result.Flights {
		assert.Greater(t, f.EmissionsKg, 0.0)
	}
	require.NotEmpty(t, result.Lodging)
	for _, l := range result.Lodging {
		assert.Greater(t, l.EmissionsKgPerNight, 0.0)
	}

	assert.Len(t, result.Weather, 3)
}

func TestPlanUsesModelOutputWhenValid(t *testing.T) {
	output := `{"days":[` +
		`{"day":1,"morning":"Louvre","afternoon":"Tuileries","evening":"Seine cruise"},` +
		`{"day":2,"morning":"Montmartre","afternoon":"Orsay","evening":"Bistro"},` +
		`{"day":3,"morning":"Versailles","afternoon":"Gardens","evening":"Return"}],` +
		`"totals":{"cost":1450,"emissions_kg":860},"rationale":"balances cost and footprint"}`

	service := newTestService(cannedGenerator{output: output})

	result, err := service.Plan(context.Background(), models.TripRequest{
		Destination: "Paris", NumDays: 3, Budget: 2000,
	})
	require.NoError(t, err)

	assert.Equal(t, "Louvre", result.Plan.Days[0].Morning)
	assert.Equal(t, 1450.0, result.Plan.Totals.Cost)
	assert.InDelta(t, 100-860.0/10, result.EcoScore, 0.01)
}

func TestPlanWrongDayCountFromModelIsNormalized(t *testing.T) {
	// Model returns one day for a three-day trip
	output := `{"days":[{"day":1,"morning":"a","afternoon":"b","evening":"c"}],` +
		`"totals":{"cost":900,"emissions_kg":500},"rationale":"short"}`

	service := newTestService(cannedGenerator{output: output})

	result, err := service.Plan(context.Background(), models.TripRequest{
		Destination: "Paris", NumDays: 3, Budget: 2000,
	})
	require.NoError(t, err)

	assert.Len(t, result.Plan.Days, 3)
	assert.NoError(t, result.Plan.Validate(3))
}

func TestPlanDateRangeWins(t *testing.T) {
	service := newTestService(failingGenerator{})

	result, err := service.Plan(context.Background(), models.TripRequest{
		Destination: "Paris",
		StartDate:   models.NewDate(2025, 6, 1),
		EndDate:     models.NewDate(2025, 6, 5),
		NumDays:     2,
		Budget:      2000,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, result.TripDays)
	assert.Len(t, result.Plan.Days, 5)
	assert.Equal(t, "2025-06-01", result.StartDate.String())
	assert.Equal(t, "2025-06-05", result.EndDate.String())
}
