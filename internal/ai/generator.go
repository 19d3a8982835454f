// internal/ai/generator.go
package ai

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/grocer/internal/config"
	"github.com/javajoker/grocer/internal/models"
)

type Generator interface {
	GenerateRecipe(ctx context.Context, prompt string) (models.Recipe, error)
}

// New returns the configured recipe generator, or nil when generation is disabled.
func New(cfg config.RecipeConfig, logger *logrus.Logger) (Generator, error) {
	switch cfg.Provider {
	case config.RecipeProviderGemini:
		return NewGeminiClient(cfg.Gemini.APIKey, cfg.Gemini.BaseURL, cfg.Gemini.Model, cfg.MaxTokens, logger), nil
	case config.RecipeProviderBedrock:
		client, err := NewBedrockClient(cfg.Bedrock.Region, cfg.Bedrock.AccessKeyID, cfg.Bedrock.SecretAccessKey,
			cfg.Bedrock.ModelID, cfg.MaxTokens, logger)
		if err != nil {
			return nil, err
		}
		return client, nil
	case config.RecipeProviderDisabled, "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown recipe provider %q", cfg.Provider)
	}
}
