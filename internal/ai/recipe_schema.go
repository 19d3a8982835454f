// internal/ai/recipe_schema.go
package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/javajoker/grocer/internal/models"
)

// recipePayload is the wire shape every provider is asked to return.
type recipePayload struct {
	RecipeName   *string  `json:"recipeName"`
	Description  *string  `json:"description"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
}

// recipeResponseSchema is the Gemini responseSchema for recipePayload.
var recipeResponseSchema = map[string]interface{}{
	"type": "OBJECT",
	"properties": map[string]interface{}{
		"recipeName": map[string]interface{}{
			"type":        "STRING",
			"description": "The name of the recipe.",
		},
		"description": map[string]interface{}{
			"type":        "STRING",
			"description": "A brief, appealing description of the dish.",
		},
		"ingredients": map[string]interface{}{
			"type":        "ARRAY",
			"items":       map[string]interface{}{"type": "STRING"},
			"description": "A list of ingredients required for the recipe.",
		},
		"instructions": map[string]interface{}{
			"type":        "ARRAY",
			"items":       map[string]interface{}{"type": "STRING"},
			"description": "The step-by-step cooking instructions.",
		},
	},
	"required": []string{"recipeName", "description", "ingredients", "instructions"},
}

// recipeJSONInstruction asks providers without schema enforcement for the same shape.
const recipeJSONInstruction = `Respond with a single JSON object and nothing else. ` +
	`It must have exactly these fields, all required: ` +
	`"recipeName" (string), "description" (string), "ingredients" (array of strings), "instructions" (array of strings).`

var ErrInvalidRecipe = errors.New("invalid recipe response")

// parseRecipe decodes provider text into a Recipe, enforcing the required fields.
func parseRecipe(text string) (models.Recipe, error) {
	text = stripCodeFence(text)

	var payload recipePayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return models.Recipe{}, fmt.Errorf("%w: %v", ErrInvalidRecipe, err)
	}

	var missing []string
	if payload.RecipeName == nil || strings.TrimSpace(*payload.RecipeName) == "" {
		missing = append(missing, "recipeName")
	}
	if payload.Description == nil || strings.TrimSpace(*payload.Description) == "" {
		missing = append(missing, "description")
	}
	if len(payload.Ingredients) == 0 {
		missing = append(missing, "ingredients")
	}
	if len(payload.Instructions) == 0 {
		missing = append(missing, "instructions")
	}
	if len(missing) > 0 {
		return models.Recipe{}, fmt.Errorf("%w: missing %s", ErrInvalidRecipe, strings.Join(missing, ", "))
	}

	return models.Recipe{
		RecipeName:   *payload.RecipeName,
		Description:  *payload.Description,
		Ingredients:  payload.Ingredients,
		Instructions: payload.Instructions,
	}, nil
}

func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	if nl := strings.IndexByte(text, '\n'); nl >= 0 {
		text = text[nl+1:]
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), "```"))
}
