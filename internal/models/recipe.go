// internal/models/recipe.go
package models

// RecipeErrorMessage is what a failed generation publishes in place of a recipe.
const RecipeErrorMessage = "Sorry, I couldn't generate a recipe right now. Please try again later."

// Recipe holds either a generated recipe or, when Error is set, only the error.
type Recipe struct {
	RecipeName   string   `json:"recipe_name,omitempty"`
	Description  string   `json:"description,omitempty"`
	Ingredients  []string `json:"ingredients,omitempty"`
	Instructions []string `json:"instructions,omitempty"`
	Error        string   `json:"error,omitempty"`
}

func (r Recipe) Failed() bool {
	return r.Error != ""
}

func FailedRecipe(message string) Recipe {
	return Recipe{Error: message}
}
