// internal/handlers/recipe.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/grocer/internal/i18n"
	"github.com/javajoker/grocer/internal/services"
	"github.com/javajoker/grocer/internal/utils"
)

type RecipeHandler struct {
	recipeService *services.RecipeService
}

func NewRecipeHandler(recipeService *services.RecipeService) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
	}
}

// POST /recipes
// Answers 202 once generation has started, or waits for the result with ?wait=true.
func (h *RecipeHandler) RequestRecipe(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	done, err := h.recipeService.RequestRecipe(c.Request.Context())
	if err != nil {
		if errors.Is(err, services.ErrRecipeInFlight) {
			utils.ConflictResponse(c, i18n.T(lang, i18n.KeyRecipeInFlight))
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	if done == nil {
		utils.SuccessResponse(c, gin.H{
			"message": i18n.T(lang, i18n.KeyRecipeNotEnoughItems),
			"recipe":  h.state(lang),
		})
		return
	}

	if wait, _ := strconv.ParseBool(c.Query("wait")); wait {
		select {
		case <-done:
		case <-c.Request.Context().Done():
			return
		}
		utils.SuccessResponse(c, h.state(lang))
		return
	}

	utils.AcceptedResponse(c, h.state(lang))
}

// GET /recipes
func (h *RecipeHandler) GetState(c *gin.Context) {
	utils.SuccessResponse(c, h.state(utils.GetLangFromContext(c)))
}

// DELETE /recipes
func (h *RecipeHandler) Close(c *gin.Context) {
	h.recipeService.Close()
	utils.SuccessResponse(c, h.state(utils.GetLangFromContext(c)))
}

// state localizes the generic failure message; the underlying error is only logged.
func (h *RecipeHandler) state(lang string) services.RecipeState {
	state := h.recipeService.State()
	if state.Recipe != nil && state.Recipe.Failed() {
		state.Recipe.Error = i18n.T(lang, i18n.KeyRecipeGenerationFailed)
	}
	return state
}
