package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
)

// Config holds all application configuration values
type Config struct {
	Port              string
	GinMode           string
	AdmissionsAPIURL  string
	LogLevel          string
	LogFormat         string
	LogFile           string
	CORSAllowedOrigin string
}

// LoadConfig reads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Port:              getEnv("PORT", "8080"),
		GinMode:           getEnv("GIN_MODE", "debug"),
		AdmissionsAPIURL:  os.Getenv("ADMISSIONS_API_URL"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "json"),
		LogFile:           os.Getenv("LOG_FILE"),
		CORSAllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "*"),
	}
}

// Validate reports settings the server cannot start without.
func (c *Config) Validate() error {
	if c.AdmissionsAPIURL == "" {
		return errors.New("ADMISSIONS_API_URL is required")
	}

	u, err := url.Parse(c.AdmissionsAPIURL)
	if err != nil {
		return fmt.Errorf("invalid ADMISSIONS_API_URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return fmt.Errorf("invalid ADMISSIONS_API_URL %q: want an http(s) base URL", c.AdmissionsAPIURL)
	}

	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("invalid LOG_FORMAT %q", c.LogFormat)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
