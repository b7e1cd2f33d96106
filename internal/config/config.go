// Package config centralizes application configuration: typed structs with
// constructor defaults, overlaid with environment variables so the binary
// runs locally with zero setup.
package config

import (
	"os"
	"strings"
	"time"
)

const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

type Config struct {
	Server  ServerConfig
	Latency LatencyConfig

	// Environment selects error-report routing: production sends failure
	// records to the external monitoring sink instead of the local log.
	Environment string

	// DemoMode serves every operation from the in-memory simulation layer.
	DemoMode bool

	// APIBaseURL is the real backend root used when demo mode is off.
	APIBaseURL string

	LogLevel string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// LatencyConfig is the simulated network delay per demo operation. The
// values mirror the deployed demo client so the UX feels identical.
type LatencyConfig struct {
	CreateRide     time.Duration
	RideHistory    time.Duration
	AvailableRides time.Duration
	DriverStatus   time.Duration
	Search         time.Duration
	Login          time.Duration
}

func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Latency: LatencyConfig{
			CreateRide:     800 * time.Millisecond,
			RideHistory:    500 * time.Millisecond,
			AvailableRides: 500 * time.Millisecond,
			DriverStatus:   300 * time.Millisecond,
			Search:         300 * time.Millisecond,
			Login:          500 * time.Millisecond,
		},
		Environment: EnvDevelopment,
		DemoMode:    true,
		APIBaseURL:  "http://localhost:5000/api",
		LogLevel:    "info",
	}
}

// Load returns the defaults overlaid with environment variables.
func Load() *Config {
	cfg := NewDefaultConfig()

	setStringFromEnv(&cfg.Server.Port, "PORT")
	setDurationFromEnv(&cfg.Server.ReadTimeout, "HTTP_READ_TIMEOUT")
	setDurationFromEnv(&cfg.Server.WriteTimeout, "HTTP_WRITE_TIMEOUT")

	setStringFromEnv(&cfg.Environment, "ENVIRONMENT")
	setStringFromEnv(&cfg.APIBaseURL, "API_BASE_URL")
	setStringFromEnv(&cfg.LogLevel, "LOG_LEVEL")

	if v := os.Getenv("DEMO_MODE"); v != "" {
		cfg.DemoMode = strings.EqualFold(v, "true")
	}

	return cfg
}

func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

func setStringFromEnv(target *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*target = v
	}
}

func setDurationFromEnv(target *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*target = d
		}
	}
}
