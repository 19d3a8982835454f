// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Log         LogConfig
	Catalog     CatalogConfig
	Recipe      RecipeConfig
	Events      EventsConfig
	Telemetry   TelemetryConfig
	RateLimit   RateLimitConfig
	CORS        CORSConfig
	I18n        I18nConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

type LogConfig struct {
	Level  string
	Format string
}

type CatalogConfig struct {
	// SeedPath overrides the embedded catalog when set.
	SeedPath string
}

type RecipeConfig struct {
	Provider  string
	MaxTokens int
	Gemini    GeminiConfig
	Bedrock   BedrockConfig
}

type GeminiConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type BedrockConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	ModelID         string
}

type EventsConfig struct {
	Brokers  string
	Topic    string
	ClientID string
}

type TelemetryConfig struct {
	Exporter     string
	OTLPEndpoint string
	ServiceName  string
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
	RecipesPerMinute  int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type I18nConfig struct {
	DefaultLocale string
}

const (
	RecipeProviderGemini   = "gemini"
	RecipeProviderBedrock  = "bedrock"
	RecipeProviderDisabled = "disabled"
)

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 90),
			IdleTimeout:  getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", ""),
		},
		Catalog: CatalogConfig{
			SeedPath: getEnv("CATALOG_SEED_PATH", ""),
		},
		Recipe: RecipeConfig{
			Provider:  strings.ToLower(getEnv("RECIPE_PROVIDER", RecipeProviderGemini)),
			MaxTokens: getEnvAsInt("RECIPE_MAX_TOKENS", 1024),
			Gemini: GeminiConfig{
				APIKey:  getEnv("GEMINI_API_KEY", getEnv("API_KEY", "")),
				BaseURL: getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
				Model:   getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			},
			Bedrock: BedrockConfig{
				Region:          getEnv("AWS_REGION", "us-east-1"),
				AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
				SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
				ModelID:         getEnv("BEDROCK_MODEL_ID", "anthropic.claude-3-haiku-20240307-v1:0"),
			},
		},
		Events: EventsConfig{
			Brokers:  getEnv("KAFKA_BROKERS", ""),
			Topic:    getEnv("KAFKA_ORDER_TOPIC", "grocer.orders"),
			ClientID: getEnv("KAFKA_CLIENT_ID", "grocer"),
		},
		Telemetry: TelemetryConfig{
			Exporter:     strings.ToLower(getEnv("TRACING_EXPORTER", "none")),
			OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
			ServiceName:  getEnv("OTEL_SERVICE_NAME", "grocer"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: getEnvAsFloat("RATE_LIMIT_RPS", 10),
			Burst:             getEnvAsInt("RATE_LIMIT_BURST", 20),
			RecipesPerMinute:  getEnvAsInt("RATE_LIMIT_RECIPES_PER_MINUTE", 6),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),
		},
		I18n: I18nConfig{
			DefaultLocale: getEnv("DEFAULT_LOCALE", "en"),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	switch c.Recipe.Provider {
	case RecipeProviderGemini:
		if c.Recipe.Gemini.APIKey == "" && c.Environment == "production" {
			return fmt.Errorf("GEMINI_API_KEY is required in production when RECIPE_PROVIDER=gemini")
		}
	case RecipeProviderBedrock:
		if c.Recipe.Bedrock.Region == "" {
			return fmt.Errorf("AWS_REGION is required when RECIPE_PROVIDER=bedrock")
		}
	case RecipeProviderDisabled:
	default:
		return fmt.Errorf("unknown recipe provider %q", c.Recipe.Provider)
	}

	switch c.Telemetry.Exporter {
	case "none", "stdout", "otlp":
	default:
		return fmt.Errorf("unknown tracing exporter %q", c.Telemetry.Exporter)
	}

	if c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0 {
		return fmt.Errorf("rate limit must be positive")
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
