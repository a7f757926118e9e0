package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Global singleton for components that cannot take injected config.
var globalConfig *Config

// Config holds all environment backed configuration for the video gateway.
type Config struct {
	// HTTP Server
	HTTPPort    int `env:"HTTP_PORT" envDefault:"8080"`
	MetricsPort int `env:"METRICS_PORT" envDefault:"9091"`

	// Upstream providers. Empty credentials are not an error: they switch
	// the owning adapter into mock mode.
	FalAPIKey         string `env:"FAL_API_KEY"`
	FalBaseURL        string `env:"FAL_BASE_URL" envDefault:"https://fal.run"`
	ReplicateAPIToken string `env:"REPLICATE_API_TOKEN"`
	ReplicateBaseURL  string `env:"REPLICATE_BASE_URL" envDefault:"https://api.replicate.com/v1"`

	// Generation behavior
	GenerationTimeout time.Duration `env:"GENERATION_TIMEOUT" envDefault:"120s"`
	PollInterval      time.Duration `env:"POLL_INTERVAL" envDefault:"2s"`
	PollMaxAttempts   int           `env:"POLL_MAX_ATTEMPTS" envDefault:"60"`

	// Observability / Logging
	OTLPEndpoint     string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTLPHeaders      string `env:"OTEL_EXPORTER_OTLP_HEADERS"`
	ServiceName      string `env:"SERVICE_NAME" envDefault:"video-gateway"`
	ServiceNamespace string `env:"SERVICE_NAMESPACE" envDefault:"dropfly"`
	Environment      string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat        string `env:"LOG_FORMAT" envDefault:"console"`
}

// Load parses environment variables into Config and performs minimal validation.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if _, err := url.ParseRequestURI(cfg.FalBaseURL); err != nil {
		return nil, fmt.Errorf("invalid FAL_BASE_URL: %w", err)
	}
	if _, err := url.ParseRequestURI(cfg.ReplicateBaseURL); err != nil {
		return nil, fmt.Errorf("invalid REPLICATE_BASE_URL: %w", err)
	}
	if cfg.PollMaxAttempts <= 0 {
		return nil, errors.New("POLL_MAX_ATTEMPTS must be positive")
	}
	if cfg.PollInterval <= 0 {
		return nil, errors.New("POLL_INTERVAL must be positive")
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	globalConfig = cfg

	return cfg, nil
}

// GetGlobal returns the global config instance.
func GetGlobal() *Config {
	return globalConfig
}

var Version = "dev"

func IsDev() bool {
	return strings.HasPrefix(Version, "dev")
}
