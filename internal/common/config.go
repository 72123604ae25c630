package common

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Environment string            `toml:"environment"` // "development" or "production"
	Server      ServerConfig      `toml:"server"`
	Logging     LoggingConfig     `toml:"logging"`
	Amadeus     AmadeusConfig     `toml:"amadeus"`
	Places      PlacesConfig      `toml:"places"`
	OpenWeather OpenWeatherConfig `toml:"openweather"`
	Climatiq    ClimatiqConfig    `toml:"climatiq"`
	Gemini      GeminiConfig      `toml:"gemini"`
	Claude      ClaudeConfig      `toml:"claude"`
	LLM         LLMConfig         `toml:"llm"`
	Cache       CacheConfig       `toml:"cache"`
	Planner     PlannerConfig     `toml:"planner"`
}

type ServerConfig struct {
	Port int    `toml:"port"`
	Host string `toml:"host"`
}

type LoggingConfig struct {
	Level      string   `toml:"level"`       // "debug", "info", "warn", "error"
	Output     []string `toml:"output"`      // "stdout", "file"
	TimeFormat string   `toml:"time_format"` // Time format for logs (default: "15:04:05")
}

// AmadeusConfig contains Amadeus API configuration (flights, hotels, airport lookup)
type AmadeusConfig struct {
	APIKey         string        `toml:"api_key"`         // Amadeus client ID
	APISecret      string        `toml:"api_secret"`      // Amadeus client secret
	BaseURL        string        `toml:"base_url"`        // Override for the test vs live environment
	RequestTimeout time.Duration `toml:"request_timeout"` // HTTP request timeout
	RateLimit      int           `toml:"rate_limit"`      // Max requests per second
}

// PlacesConfig contains Google Places API configuration (geocoding, attractions)
type PlacesConfig struct {
	APIKey         string        `toml:"api_key"`
	RequestTimeout time.Duration `toml:"request_timeout"`
	RateLimit      int           `toml:"rate_limit"` // Max requests per second
	MaxResults     int           `toml:"max_results"`
}

// OpenWeatherConfig contains OpenWeather API configuration
type OpenWeatherConfig struct {
	APIKey         string        `toml:"api_key"`
	RequestTimeout time.Duration `toml:"request_timeout"`
}

// ClimatiqConfig contains Climatiq carbon-estimate API configuration.
// When the key is empty the local emissions model is used exclusively.
type ClimatiqConfig struct {
	APIKey         string        `toml:"api_key"`
	RequestTimeout time.Duration `toml:"request_timeout"`
}

// GeminiConfig contains Google Gemini API configuration
type GeminiConfig struct {
	APIKey      string  `toml:"api_key"`
	Model       string  `toml:"model"`       // default: "gemini-3-flash-preview"
	MaxTokens   int     `toml:"max_tokens"`  // Maximum tokens in response
	Timeout     string  `toml:"timeout"`     // Operation timeout as duration string
	Temperature float32 `toml:"temperature"` // Completion temperature
}

// ClaudeConfig contains Anthropic Claude API configuration
type ClaudeConfig struct {
	APIKey      string  `toml:"api_key"`
	Model       string  `toml:"model"`       // default: "claude-haiku-3-5-20241022"
	MaxTokens   int     `toml:"max_tokens"`  // Maximum tokens in response
	Timeout     string  `toml:"timeout"`     // Operation timeout as duration string
	Temperature float32 `toml:"temperature"` // Completion temperature
}

// LLMProvider represents the AI provider type
type LLMProvider string

const (
	// LLMProviderGemini uses Google Gemini API
	LLMProviderGemini LLMProvider = "gemini"
	// LLMProviderClaude uses Anthropic Claude API
	LLMProviderClaude LLMProvider = "claude"
)

// LLMConfig contains unified configuration for all AI providers
type LLMConfig struct {
	DefaultProvider LLMProvider `toml:"default_provider"` // "gemini" or "claude"
}

// CacheConfig contains itinerary cache configuration
type CacheConfig struct {
	Path          string        `toml:"path"`           // Badger directory; empty = in-memory
	TTL           time.Duration `toml:"ttl"`            // Entry time-to-live
	SweepSchedule string        `toml:"sweep_schedule"` // Cron schedule for value-log GC
}

// PlannerConfig contains itinerary pipeline tuning
type PlannerConfig struct {
	FetchTimeout  time.Duration `toml:"fetch_timeout"`  // Per-provider fetch timeout in the aggregator
	TopCandidates int           `toml:"top_candidates"` // Candidates of each kind serialized into the prompt
	LeadTimeDays  int           `toml:"lead_time_days"` // Trip start offset when only num_days is given
}

// NewDefaultConfig creates a configuration with default values.
// Technical parameters are hardcoded here for production stability;
// only user-facing settings should be exposed in greentrip.toml.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Port: 8080,
			Host: "localhost",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Output:     []string{"stdout", "file"},
			TimeFormat: "15:04:05",
		},
		Amadeus: AmadeusConfig{
			BaseURL:        "https://test.api.amadeus.com",
			RequestTimeout: 15 * time.Second,
			RateLimit:      5,
		},
		Places: PlacesConfig{
			RequestTimeout: 10 * time.Second,
			RateLimit:      1,
			MaxResults:     20,
		},
		OpenWeather: OpenWeatherConfig{
			RequestTimeout: 10 * time.Second,
		},
		Climatiq: ClimatiqConfig{
			RequestTimeout: 15 * time.Second,
		},
		Gemini: GeminiConfig{
			Model:       "gemini-3-flash-preview",
			MaxTokens:   8192,
			Timeout:     "2m",
			Temperature: 0.7,
		},
		Claude: ClaudeConfig{
			Model:       "claude-haiku-3-5-20241022",
			MaxTokens:   8192,
			Timeout:     "2m",
			Temperature: 0.7,
		},
		LLM: LLMConfig{
			DefaultProvider: LLMProviderGemini,
		},
		Cache: CacheConfig{
			Path:          "", // in-memory by default
			TTL:           30 * time.Minute,
			SweepSchedule: "@every 10m",
		},
		Planner: PlannerConfig{
			FetchTimeout:  20 * time.Second,
			TopCandidates: 5,
			LeadTimeDays:  30,
		},
	}
}

// LoadFromFiles loads configuration from multiple files with priority:
// default -> file1 -> file2 -> ... -> env. Later files override earlier files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies GREENTRIP_* environment variables over file values.
// API keys also honor the providers' conventional variable names.
func applyEnvOverrides(config *Config) {
	if v := os.Getenv("GREENTRIP_SERVER_HOST"); v != "" {
		config.Server.Host = v
	}
	if v := os.Getenv("GREENTRIP_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			config.Server.Port = port
		}
	}
	if v := os.Getenv("GREENTRIP_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}

	setIfEnv := func(dst *string, names ...string) {
		for _, name := range names {
			if v := os.Getenv(name); v != "" {
				*dst = v
				return
			}
		}
	}

	setIfEnv(&config.Amadeus.APIKey, "GREENTRIP_AMADEUS_API_KEY", "AMADEUS_API_KEY")
	setIfEnv(&config.Amadeus.APISecret, "GREENTRIP_AMADEUS_API_SECRET", "AMADEUS_API_SECRET")
	setIfEnv(&config.Places.APIKey, "GREENTRIP_PLACES_API_KEY", "GOOGLE_PLACES_KEY")
	setIfEnv(&config.OpenWeather.APIKey, "GREENTRIP_OPENWEATHER_API_KEY", "OPENWEATHER_KEY")
	setIfEnv(&config.Climatiq.APIKey, "GREENTRIP_CLIMATIQ_API_KEY", "CLIMATIQ_KEY")
	setIfEnv(&config.Gemini.APIKey, "GREENTRIP_GEMINI_API_KEY", "GEMINI_API_KEY")
	setIfEnv(&config.Claude.APIKey, "GREENTRIP_CLAUDE_API_KEY", "ANTHROPIC_API_KEY")
}
