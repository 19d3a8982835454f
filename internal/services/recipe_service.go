// internal/services/recipe_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/javajoker/grocer/internal/models"
)

const tracerName = "github.com/javajoker/grocer/internal/services"

// MinRecipeIngredients is the number of distinct cart lines a recipe request needs.
const MinRecipeIngredients = 2

// RecipeGenerator turns a prompt into a structured recipe with one external call.
type RecipeGenerator interface {
	GenerateRecipe(ctx context.Context, prompt string) (models.Recipe, error)
}

type RecipeState struct {
	Open       bool           `json:"open"`
	Generating bool           `json:"generating"`
	Recipe     *models.Recipe `json:"recipe"`
}

type RecipeService struct {
	mu        sync.Mutex
	cart      *CartService
	generator RecipeGenerator
	logger    *logrus.Entry
	state     RecipeState
}

func NewRecipeService(cart *CartService, generator RecipeGenerator, logger *logrus.Logger) *RecipeService {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &RecipeService{
		cart:      cart,
		generator: generator,
		logger:    logger.WithField("component", "recipes"),
	}
}

// RequestRecipe starts generation from the current cart and returns a channel closed
// once the result is published. With fewer than MinRecipeIngredients lines nothing
// happens and the channel is nil. A second request while one is generating gets
// ErrRecipeInFlight. The external call is detached from ctx cancellation.
func (s *RecipeService) RequestRecipe(ctx context.Context) (<-chan struct{}, error) {
	items := s.cart.Items()
	if len(items) < MinRecipeIngredients {
		return nil, nil
	}

	s.mu.Lock()
	if s.state.Generating {
		s.mu.Unlock()
		return nil, ErrRecipeInFlight
	}
	s.state = RecipeState{Open: true, Generating: true}
	s.mu.Unlock()

	prompt := BuildRecipePrompt(items)
	done := make(chan struct{})
	go func() {
		defer close(done)
		recipe := s.generate(context.WithoutCancel(ctx), prompt)

		s.mu.Lock()
		s.state.Recipe = &recipe
		s.state.Generating = false
		s.mu.Unlock()
	}()

	return done, nil
}

// Close hides the recipe view. An in-flight call keeps running and still publishes.
func (s *RecipeService) Close() RecipeState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Open = false
	s.state.Recipe = nil
	return s.snapshot()
}

func (s *RecipeService) State() RecipeState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot()
}

func (s *RecipeService) snapshot() RecipeState {
	st := s.state
	if st.Recipe != nil {
		r := *st.Recipe
		st.Recipe = &r
	}
	return st
}

func (s *RecipeService) generate(ctx context.Context, prompt string) (recipe models.Recipe) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "recipes.generate")
	defer span.End()
	span.SetAttributes(attribute.Int("recipe.prompt_length", len(prompt)))

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("recipe generator panicked: %v", r)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			s.logger.WithError(err).Error("Failed to generate recipe")
			recipe = models.FailedRecipe(models.RecipeErrorMessage)
		}
	}()

	if s.generator == nil {
		err := errors.New("no recipe generator configured")
		span.RecordError(err)
		s.logger.WithError(err).Warn("Recipe requested but generation is disabled")
		return models.FailedRecipe(models.RecipeErrorMessage)
	}

	result, err := s.generator.GenerateRecipe(ctx, prompt)
	if err == nil {
		err = checkRecipe(result)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.WithError(err).Error("Failed to generate recipe")
		return models.FailedRecipe(models.RecipeErrorMessage)
	}

	span.SetAttributes(attribute.String("recipe.name", result.RecipeName))
	result.Error = ""
	return result
}

// BuildRecipePrompt names every cart line and asks for a recipe limited to them.
func BuildRecipePrompt(items []models.CartItem) string {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	return fmt.Sprintf("Generate a simple recipe using ONLY the following ingredients: %s. "+
		"You can assume pantry staples like oil, salt, and pepper are available. "+
		"Provide a creative recipe name, a short, appealing description, a list of ingredients "+
		"(including the ones provided), and step-by-step instructions.", strings.Join(names, ", "))
}

func checkRecipe(r models.Recipe) error {
	switch {
	case r.RecipeName == "":
		return errors.New("recipe response missing recipeName")
	case r.Description == "":
		return errors.New("recipe response missing description")
	case len(r.Ingredients) == 0:
		return errors.New("recipe response missing ingredients")
	case len(r.Instructions) == 0:
		return errors.New("recipe response missing instructions")
	}
	return nil
}
