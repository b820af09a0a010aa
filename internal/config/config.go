package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	ClientID     string
	ClientSecret string

	TokenURL string
	DataURL  string

	// Global fetch window, RFC 3339 with zone offset.
	StartDate string
	EndDate   string

	Timezone string
	Interval time.Duration
	Port     string
}

// Default RTE open API endpoints
const (
	defaultTokenURL = "https://digital.iservices.rte-france.com/token/oauth/"
	defaultDataURL  = "https://digital.iservices.rte-france.com/open_api/generation_forecast/v2/forecasts"
)

func Load() (*Config, error) {
	clientID := os.Getenv("RTE_CLIENT_ID")
	clientSecret := os.Getenv("RTE_CLIENT_SECRET")
	if clientID == "" || clientSecret == "" {
		return nil, fmt.Errorf("RTE_CLIENT_ID and RTE_CLIENT_SECRET environment variables are required")
	}

	intervalHours, err := strconv.Atoi(getEnv("COLLECT_INTERVAL_HOURS", "3"))
	if err != nil || intervalHours <= 0 {
		return nil, fmt.Errorf("invalid COLLECT_INTERVAL_HOURS: %q", os.Getenv("COLLECT_INTERVAL_HOURS"))
	}

	return &Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     getEnv("RTE_TOKEN_URL", defaultTokenURL),
		DataURL:      getEnv("RTE_DATA_URL", defaultDataURL),
		StartDate:    getEnv("FETCH_START_DATE", "2024-01-01T00:00:00+01:00"),
		EndDate:      getEnv("FETCH_END_DATE", "2024-10-01T00:00:00+02:00"),
		Timezone:     getEnv("RTE_TIMEZONE", "Europe/Paris"),
		Interval:     time.Duration(intervalHours) * time.Hour,
		Port:         getEnv("PORT", "8080"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
