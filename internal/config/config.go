// Package config loads and validates environment variables at startup.
// Fail-fast: if a required variable is missing, the process exits with an error.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all runtime configuration for the listing service.
type Config struct {
	Port               string
	DatabaseURL        string
	RedisURL           string
	SiteHost           string // apex form, e.g. "glowboard.com"
	SiteName           string
	SweepIntervalHours int    // how often the visibility sweep fires
	RedirectsFile      string // optional: where to write the deploy rules file
}

// Load reads environment variables and returns a validated Config.
func Load() (*Config, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		return nil, fmt.Errorf("REDIS_URL is required")
	}

	port := os.Getenv("LISTING_PORT")
	if port == "" {
		port = "8083"
	}

	// Host is stored apex-form; canonical output always adds the www.
	host := strings.TrimPrefix(os.Getenv("SITE_HOST"), "www.")
	if host == "" {
		host = "glowboard.com"
	}

	name := os.Getenv("SITE_NAME")
	if name == "" {
		name = "Glowboard"
	}

	interval := 6
	if s := os.Getenv("SWEEP_INTERVAL_HOURS"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("SWEEP_INTERVAL_HOURS must be a positive integer, got %q", s)
		}
		interval = v
	}

	return &Config{
		Port:               port,
		DatabaseURL:        dbURL,
		RedisURL:           redisURL,
		SiteHost:           host,
		SiteName:           name,
		SweepIntervalHours: interval,
		RedirectsFile:      os.Getenv("REDIRECTS_FILE"),
	}, nil
}
