package weather

import (
	"os"
	"strconv"
)

// Config holds the weather gateway settings. The API key is only ever read
// from the environment.
type Config struct {
	APIKey    string
	City      string
	Endpoint  string
	TimeoutMs int
	LogCalls  bool
}

// DefaultConfig returns a Config with sensible defaults and no API key.
func DefaultConfig() Config {
	return Config{
		City:      "Surigao City,PH",
		Endpoint:  "https://api.openweathermap.org",
		TimeoutMs: 5000,
	}
}

// LoadConfig reads gateway configuration from environment variables,
// falling back to defaults for any unset or invalid values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("SPROUT_WEATHER_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("SPROUT_WEATHER_CITY"); v != "" {
		cfg.City = v
	}
	if v := os.Getenv("SPROUT_WEATHER_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("SPROUT_WEATHER_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("SPROUT_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	return cfg
}
