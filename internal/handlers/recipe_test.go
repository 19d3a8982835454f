// internal/handlers/recipe_test.go
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/grocer/internal/i18n"
	"github.com/javajoker/grocer/internal/models"
	"github.com/javajoker/grocer/internal/services"
	"github.com/javajoker/grocer/internal/utils"
)

type blockingGenerator struct {
	release chan struct{}
}

func (g *blockingGenerator) GenerateRecipe(ctx context.Context, prompt string) (models.Recipe, error) {
	<-g.release
	return models.Recipe{
		RecipeName:   "Toast",
		Description:  "Crunchy.",
		Ingredients:  []string{"Bread"},
		Instructions: []string{"Toast it"},
	}, nil
}

func TestRecipeHandler_InFlight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	require.NoError(t, i18n.Initialize("en"))

	gen := &blockingGenerator{release: make(chan struct{})}
	app := services.NewStorefront(services.StorefrontOptions{
		Seed: []models.Product{
			{ID: 1, Name: "Bread", Price: 3, Category: "Bakery"},
			{ID: 2, Name: "Butter", Price: 2, Category: "Dairy"},
		},
		Generator: gen,
	})
	app.Cart.AddToCart(models.Product{ID: 1, Name: "Bread", Price: 3})
	app.Cart.AddToCart(models.Product{ID: 2, Name: "Butter", Price: 2})

	h := NewRecipeHandler(app.Recipes)
	r := gin.New()
	r.POST("/recipes", h.RequestRecipe)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/recipes", nil))
	require.Equal(t, http.StatusAccepted, w.Code)

	var resp struct {
		Data services.RecipeState `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.Open)
	assert.True(t, resp.Data.Generating)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/recipes", nil))
	assert.Equal(t, http.StatusConflict, w.Code)

	var conflict utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &conflict))
	assert.Equal(t, i18n.T("en", i18n.KeyRecipeInFlight), conflict.Error.Message)

	close(gen.release)
	assert.Eventually(t, func() bool {
		st := app.Recipes.State()
		return !st.Generating && st.Recipe != nil && st.Recipe.RecipeName == "Toast"
	}, time.Second, 10*time.Millisecond)
}

func TestParseID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/items/:id", func(c *gin.Context) {
		if id, ok := parseID(c, "id"); ok {
			c.JSON(http.StatusOK, gin.H{"id": id})
		}
	})

	for target, want := range map[string]int{
		"/items/7":   http.StatusOK,
		"/items/0":   http.StatusBadRequest,
		"/items/-3":  http.StatusBadRequest,
		"/items/abc": http.StatusBadRequest,
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, want, w.Code, target)
	}
}
