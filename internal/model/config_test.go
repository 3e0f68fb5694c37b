package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:8000", cfg.Server.Addr())
	assert.Equal(t, 100, cfg.Golden.MaxTerms)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero port", func(c *Config) { c.Server.Port = 0 }},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }},
		{"gin mode unknown", func(c *Config) { c.Server.Mode = "production" }},
		{"empty gin mode", func(c *Config) { c.Server.Mode = "" }},
		{"zero question length", func(c *Config) { c.Council.MaxQuestionLength = 0 }},
		{"unknown fallback", func(c *Config) { c.Council.FallbackAspect = "nope" }},
		{"zero golden terms", func(c *Config) { c.Golden.MaxTerms = 0 }},
		{"rate limit without rate", func(c *Config) {
			c.RateLimit.Enabled = true
			c.RateLimit.RequestsPerSecond = 0
		}},
		{"sample ratio above one", func(c *Config) { c.Telemetry.SampleRatio = 1.5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestServerConfig_Addr(t *testing.T) {
	tests := []struct {
		host string
		port int
		want string
	}{
		{"0.0.0.0", 8000, "0.0.0.0:8000"},
		{"localhost", 9000, "localhost:9000"},
		{"::1", 8000, "[::1]:8000"},
		{"", 8080, ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, ServerConfig{Host: tt.host, Port: tt.port}.Addr())
		})
	}
}

func TestParseAspect(t *testing.T) {
	a, err := ParseAspect(" PELU ")
	require.NoError(t, err)
	assert.Equal(t, AspectPelu, a)
	assert.Equal(t, "PELU", a.Label())
	assert.Equal(t, "Truth, Boundaries, Integrity", a.Theme())

	_, err = ParseAspect("quux")
	assert.Error(t, err)
}

func TestAspects_PriorityOrder(t *testing.T) {
	assert.Equal(t, []Aspect{AspectSewu, AspectPelu, AspectRuwa, AspectTemu}, Aspects)
	for _, a := range Aspects {
		assert.True(t, a.Valid())
		assert.NotEmpty(t, a.Theme())
	}
}
