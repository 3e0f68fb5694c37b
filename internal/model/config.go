package model

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"
)

// Version is the service version reported by /api and the version command
const Version = "2.0.0"

// Config holds all runtime configuration
type Config struct {
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Council   CouncilConfig   `yaml:"council" mapstructure:"council"`
	Golden    GoldenConfig    `yaml:"golden" mapstructure:"golden"`
	Cache     CacheConfig     `yaml:"cache" mapstructure:"cache"`
	RateLimit RateLimitConfig `yaml:"rate_limit" mapstructure:"rate_limit"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
	Telemetry TelemetryConfig `yaml:"telemetry" mapstructure:"telemetry"`
}

// ServerConfig controls the HTTP listener
type ServerConfig struct {
	Host            string        `yaml:"host" mapstructure:"host"`
	Port            int           `yaml:"port" mapstructure:"port"`
	Mode            string        `yaml:"mode" mapstructure:"mode"` // gin mode: debug, release, test
	ReadTimeout     time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
	CORSOrigins     []string      `yaml:"cors_origins" mapstructure:"cors_origins"`
}

// CouncilConfig controls question validation and aspect selection
type CouncilConfig struct {
	MaxQuestionLength int    `yaml:"max_question_length" mapstructure:"max_question_length"` // In runes
	FallbackAspect    string `yaml:"fallback_aspect" mapstructure:"fallback_aspect"`         // Used when no keyword matches
}

// GoldenConfig bounds golden-ratio progressions
type GoldenConfig struct {
	MaxTerms int `yaml:"max_terms" mapstructure:"max_terms"`
}

// CacheConfig controls the in-memory response cache
type CacheConfig struct {
	Enabled         bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL             time.Duration `yaml:"ttl" mapstructure:"ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" mapstructure:"cleanup_interval"`
}

// RateLimitConfig controls per-client request limiting
type RateLimitConfig struct {
	Enabled           bool          `yaml:"enabled" mapstructure:"enabled"`
	RequestsPerSecond float64       `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int           `yaml:"burst" mapstructure:"burst"`
	IdleTTL           time.Duration `yaml:"idle_ttl" mapstructure:"idle_ttl"` // Forget clients idle this long
}

// LogConfig controls structured logging
type LogConfig struct {
	Mode string `yaml:"mode" mapstructure:"mode"` // development or production
}

// TelemetryConfig controls OpenTelemetry tracing
type TelemetryConfig struct {
	Enabled     bool    `yaml:"enabled" mapstructure:"enabled"`
	ServiceName string  `yaml:"service_name" mapstructure:"service_name"`
	Endpoint    string  `yaml:"endpoint" mapstructure:"endpoint"` // OTLP/HTTP endpoint; stdout exporter when empty
	Insecure    bool    `yaml:"insecure" mapstructure:"insecure"`
	SampleRatio float64 `yaml:"sample_ratio" mapstructure:"sample_ratio"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8000,
			Mode:            "release",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			CORSOrigins:     []string{"*"},
		},
		Council: CouncilConfig{
			MaxQuestionLength: 1000,
			FallbackAspect:    string(AspectSewu),
		},
		Golden: GoldenConfig{
			MaxTerms: 100,
		},
		Cache: CacheConfig{
			Enabled:         true,
			TTL:             10 * time.Minute,
			CleanupInterval: 10 * time.Minute,
		},
		RateLimit: RateLimitConfig{
			Enabled:           false,
			RequestsPerSecond: 10,
			Burst:             20,
			IdleTTL:           10 * time.Minute,
		},
		Log: LogConfig{
			Mode: "development",
		},
		Telemetry: TelemetryConfig{
			Enabled:     false,
			ServiceName: "benkhawiya",
			SampleRatio: 0.1,
		},
	}
}

// Validate checks the configuration for values the service cannot run with
func (c Config) Validate() error {
	var errs []error

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be in 1..65535, got %d", c.Server.Port))
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		errs = append(errs, fmt.Errorf("server.mode must be debug, release or test, got %q", c.Server.Mode))
	}
	if c.Council.MaxQuestionLength <= 0 {
		errs = append(errs, fmt.Errorf("council.max_question_length must be positive, got %d", c.Council.MaxQuestionLength))
	}
	if _, err := ParseAspect(c.Council.FallbackAspect); err != nil {
		errs = append(errs, fmt.Errorf("council.fallback_aspect: %w", err))
	}
	if c.Golden.MaxTerms <= 0 {
		errs = append(errs, fmt.Errorf("golden.max_terms must be positive, got %d", c.Golden.MaxTerms))
	}
	if c.RateLimit.Enabled && c.RateLimit.RequestsPerSecond <= 0 {
		errs = append(errs, fmt.Errorf("rate_limit.requests_per_second must be positive, got %v", c.RateLimit.RequestsPerSecond))
	}
	if c.Telemetry.SampleRatio < 0 || c.Telemetry.SampleRatio > 1 {
		errs = append(errs, fmt.Errorf("telemetry.sample_ratio must be in [0,1], got %v", c.Telemetry.SampleRatio))
	}

	return errors.Join(errs...)
}

// Addr returns the host:port listen address
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
