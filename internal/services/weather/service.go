package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/greentrip/internal/common"
	"github.com/ternarybob/greentrip/internal/httpclient"
	"github.com/ternarybob/greentrip/internal/interfaces"
	"github.com/ternarybob/greentrip/internal/models"
)

const forecastURL = "https://api.openweathermap.org/data/2.5/forecast"

// Service wraps the OpenWeather 5-day/3-hour forecast API and folds
// the 3-hourly feed into per-day, per-daypart summaries.
type Service struct {
	apiKey     string
	httpClient *http.Client
	logger     arbor.ILogger
}

// NewService creates a weather service from configuration
func NewService(config *common.Config) *Service {
	return &Service{
		apiKey:     config.OpenWeather.APIKey,
		httpClient: httpclient.NewDefaultClient(config.OpenWeather.RequestTimeout),
		logger:     common.GetLogger(),
	}
}

// Configured reports whether an API key is present
func (s *Service) Configured() bool {
	return s.apiKey != ""
}

type forecastResponse struct {
	List []forecastEntry `json:"list"`
}

type forecastEntry struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp    float64 `json:"temp"`
		TempMin float64 `json:"temp_min"`
		TempMax float64 `json:"temp_max"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Pop float64 `json:"pop"` // precipitation probability 0..1
}

// Forecast returns one WeatherSnapshot per day of the trip window.
// OpenWeather only forecasts ~5 days out, so distant trip days are
// simply absent from the result.
func (s *Service) Forecast(ctx context.Context, query interfaces.WeatherQuery) ([]models.WeatherSnapshot, error) {
	if !s.Configured() {
		return nil, fmt.Errorf("openweather API key not configured")
	}

	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(query.Latitude, 'f', 4, 64))
	params.Set("lon", strconv.FormatFloat(query.Longitude, 'f', 4, 64))
	params.Set("units", "metric")
	params.Set("appid", s.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, forecastURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("forecast request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openweather returned status %d: %s", resp.StatusCode, string(body))
	}

	var payload forecastResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode forecast: %w", err)
	}

	snapshots := groupByDay(payload.List, query.Start, query.End)
	if len(snapshots) == 0 {
		return nil, fmt.Errorf("forecast window does not cover the trip dates")
	}

	s.logger.Debug().Int("days", len(snapshots)).Msg("Forecast retrieved")

	return snapshots, nil
}

// groupByDay folds 3-hourly entries into daily snapshots with morning
// (06-12), afternoon (12-18) and evening dayparts.
func groupByDay(entries []forecastEntry, start, end models.Date) []models.WeatherSnapshot {
	byDay := make(map[string][]forecastEntry)
	for _, entry := range entries {
		day := time.Unix(entry.Dt, 0).UTC().Format("2006-01-02")
		byDay[day] = append(byDay[day], entry)
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	var snapshots []models.WeatherSnapshot
	for _, day := range days {
		date, err := models.ParseDate(day)
		if err != nil {
			continue
		}
		if !start.IsZero() && date.Before(start.Time) {
			continue
		}
		if !end.IsZero() && date.After(end.Time) {
			continue
		}

		dayEntries := byDay[day]
		snapshot := models.WeatherSnapshot{
			Date:   date,
			HighC:  dayEntries[0].Main.TempMax,
			LowC:   dayEntries[0].Main.TempMin,
			Source: models.SourceProvider,
		}

		var morning, afternoon, evening []forecastEntry
		maxPop := 0.0
		for _, entry := range dayEntries {
			if entry.Main.TempMax > snapshot.HighC {
				snapshot.HighC = entry.Main.TempMax
			}
			if entry.Main.TempMin < snapshot.LowC {
				snapshot.LowC = entry.Main.TempMin
			}
			if entry.Pop > maxPop {
				maxPop = entry.Pop
			}
			hour := time.Unix(entry.Dt, 0).UTC().Hour()
			switch {
			case hour >= 6 && hour < 12:
				morning = append(morning, entry)
			case hour >= 12 && hour < 18:
				afternoon = append(afternoon, entry)
			default:
				evening = append(evening, entry)
			}
		}

		snapshot.Morning = summarizeDaypart(morning)
		snapshot.Afternoon = summarizeDaypart(afternoon)
		snapshot.Evening = summarizeDaypart(evening)
		snapshot.PrecipProb = maxPop
		snapshot.Summary = summaryPhrase(maxPop, snapshot.HighC)

		snapshots = append(snapshots, snapshot)
	}
	return snapshots
}

func summarizeDaypart(entries []forecastEntry) *models.DaypartSummary {
	if len(entries) == 0 {
		return nil
	}
	tempSum := 0.0
	maxPop := 0.0
	condition := ""
	for _, entry := range entries {
		tempSum += entry.Main.Temp
		if entry.Pop > maxPop {
			maxPop = entry.Pop
		}
		if condition == "" && len(entry.Weather) > 0 {
			condition = entry.Weather[0].Description
		}
	}
	if condition == "" {
		condition = "clear"
	}
	return &models.DaypartSummary{
		Summary:    condition,
		TempC:      tempSum / float64(len(entries)),
		PrecipProb: maxPop,
	}
}

// summaryPhrase mirrors how the plan prompt describes a day
func summaryPhrase(precipProb, highC float64) string {
	switch {
	case precipProb >= 0.6:
		return "Rain likely, plan indoor options"
	case precipProb >= 0.3:
		return "Chance of showers"
	case highC >= 30:
		return "Hot and sunny"
	case highC >= 20:
		return "Warm and pleasant"
	case highC >= 10:
		return "Mild, bring a layer"
	default:
		return "Cold, dress warmly"
	}
}
