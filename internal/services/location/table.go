package location

import (
	_ "embed"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed airports.yaml
var airportsYAML []byte

type coordEntry struct {
	Lat float64 `yaml:"lat"`
	Lon float64 `yaml:"lon"`
}

type airportTable struct {
	Cities        map[string]string     `yaml:"cities"`
	Airports      map[string]coordEntry `yaml:"airports"`
	CityCoords    map[string]coordEntry `yaml:"city_coords"`
	DefaultCoords coordEntry            `yaml:"default_coords"`
}

var table airportTable

func init() {
	if err := yaml.Unmarshal(airportsYAML, &table); err != nil {
		panic("location: invalid embedded airports table: " + err.Error())
	}
}

// AirportCoords returns the coordinates of a known airport code
func AirportCoords(code string) (lat, lon float64, ok bool) {
	entry, found := table.Airports[strings.ToUpper(code)]
	if !found {
		return 0, 0, false
	}
	return entry.Lat, entry.Lon, true
}

// cityAirport looks up the static city table, case-insensitively, then
// retries with any trailing ", region" qualifier stripped.
func cityAirport(city string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(city))
	if code, ok := table.Cities[key]; ok {
		return code, true
	}
	if idx := strings.Index(key, ","); idx >= 0 {
		if code, ok := table.Cities[strings.TrimSpace(key[:idx])]; ok {
			return code, true
		}
	}
	return "", false
}

// cityCoords looks up the fallback coordinate table the same way
func cityCoords(city string) (coordEntry, bool) {
	key := strings.ToLower(strings.TrimSpace(city))
	if entry, ok := table.CityCoords[key]; ok {
		return entry, true
	}
	if idx := strings.Index(key, ","); idx >= 0 {
		if entry, ok := table.CityCoords[strings.TrimSpace(key[:idx])]; ok {
			return entry, true
		}
	}
	return coordEntry{}, false
}
