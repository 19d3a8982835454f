// internal/ai/recipe_schema_test.go
package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/grocer/internal/config"
)

func TestParseRecipe(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{"plain json", `{"recipeName":"A","description":"B","ingredients":["x"],"instructions":["y"]}`, false},
		{"fenced json", "```json\n{\"recipeName\":\"A\",\"description\":\"B\",\"ingredients\":[\"x\"],\"instructions\":[\"y\"]}\n```", false},
		{"not json", "Here is a recipe!", true},
		{"missing name", `{"description":"B","ingredients":["x"],"instructions":["y"]}`, true},
		{"blank description", `{"recipeName":"A","description":"  ","ingredients":["x"],"instructions":["y"]}`, true},
		{"empty ingredients", `{"recipeName":"A","description":"B","ingredients":[],"instructions":["y"]}`, true},
		{"missing instructions", `{"recipeName":"A","description":"B","ingredients":["x"]}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipe, err := parseRecipe(tt.text)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRecipe)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "A", recipe.RecipeName)
			assert.False(t, recipe.Failed())
		})
	}
}

func TestNew(t *testing.T) {
	gen, err := New(config.RecipeConfig{Provider: config.RecipeProviderDisabled}, nil)
	require.NoError(t, err)
	assert.Nil(t, gen)

	gen, err = New(config.RecipeConfig{
		Provider:  config.RecipeProviderGemini,
		MaxTokens: 100,
		Gemini:    config.GeminiConfig{APIKey: "k", Model: "m"},
	}, nil)
	require.NoError(t, err)
	assert.IsType(t, &GeminiClient{}, gen)

	_, err = New(config.RecipeConfig{Provider: "openai"}, nil)
	assert.Error(t, err)
}
