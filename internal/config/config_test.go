// internal/config/config_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("RECIPE_PROVIDER", "")
	t.Setenv("TRACING_EXPORTER", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, RecipeProviderGemini, cfg.Recipe.Provider)
	assert.Equal(t, "gemini-2.5-flash", cfg.Recipe.Gemini.Model)
	assert.Equal(t, "none", cfg.Telemetry.Exporter)
	assert.False(t, cfg.IsProduction())
}

func TestValidateRejectsUnknownProvider(t *testing.T) {
	cfg := &Config{
		Recipe:    RecipeConfig{Provider: "oracle"},
		Telemetry: TelemetryConfig{Exporter: "none"},
		RateLimit: RateLimitConfig{RequestsPerSecond: 1, Burst: 1},
	}
	assert.Error(t, cfg.Validate())
}

func TestValidateRequiresGeminiKeyInProduction(t *testing.T) {
	cfg := &Config{
		Environment: "production",
		Recipe:      RecipeConfig{Provider: RecipeProviderGemini},
		Telemetry:   TelemetryConfig{Exporter: "none"},
		RateLimit:   RateLimitConfig{RequestsPerSecond: 1, Burst: 1},
	}
	assert.Error(t, cfg.Validate())

	cfg.Recipe.Gemini.APIKey = "key"
	assert.NoError(t, cfg.Validate())
}

func TestBrokerList(t *testing.T) {
	e := EventsConfig{Brokers: " kafka-1:9092, ,kafka-2:9092"}
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, e.BrokerList())
	assert.True(t, e.Enabled())

	assert.False(t, (&EventsConfig{}).Enabled())
}

func TestGetEnvAsList(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, getEnvAsList("CORS_ALLOWED_ORIGINS", nil))
}
