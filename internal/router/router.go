// internal/router/router.go
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/javajoker/grocer/internal/config"
	"github.com/javajoker/grocer/internal/handlers"
	"github.com/javajoker/grocer/internal/middleware"
	"github.com/javajoker/grocer/internal/services"
)

// Router is the HTTP surface of one storefront. Stop releases the rate limiters.
type Router struct {
	*gin.Engine
	limiters []*middleware.RateLimiter
}

func (r *Router) Stop() {
	for _, l := range r.limiters {
		l.Stop()
	}
}

func Initialize(app *services.Storefront, cfg *config.Config, logger *logrus.Logger) *Router {
	// Initialize handlers
	productHandler := handlers.NewProductHandler(app.Catalog)
	cartHandler := handlers.NewCartHandler(app.Cart, app.Catalog)
	checkoutHandler := handlers.NewCheckoutHandler(app.Checkout)
	orderHandler := handlers.NewOrderHandler(app.Orders)
	recipeHandler := handlers.NewRecipeHandler(app.Recipes)
	adminHandler := handlers.NewAdminHandler(app.Admin)

	generalLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
	recipeLimiter := middleware.RecipeRateLimiter(cfg.RateLimit.RecipesPerMinute)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.I18nMiddleware(cfg.I18n.DefaultLocale))
	r.Use(generalLimiter.Middleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
			"time":    time.Now().UTC(),
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Catalog routes
		v1.GET("/categories", productHandler.GetCategories)
		products := v1.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/:id", productHandler.GetProduct)
			products.POST("/:id/reviews", productHandler.AddReview)
		}

		// Cart routes
		cart := v1.Group("/cart")
		{
			cart.GET("", cartHandler.GetCart)
			cart.POST("/items", cartHandler.AddItem)
			cart.PUT("/items/:id", cartHandler.UpdateItem)
			cart.DELETE("/items/:id", cartHandler.RemoveItem)
		}

		// Checkout routes
		checkout := v1.Group("/checkout")
		{
			checkout.GET("", checkoutHandler.GetState)
			checkout.POST("", checkoutHandler.Begin)
			checkout.DELETE("", checkoutHandler.Close)
			checkout.POST("/shipping", checkoutHandler.SubmitShipping)
			checkout.POST("/payment", checkoutHandler.SubmitPayment)
			checkout.POST("/back", checkoutHandler.Back)
			checkout.POST("/place", checkoutHandler.PlaceOrder)
		}

		// Order history routes
		orders := v1.Group("/orders")
		{
			orders.GET("", orderHandler.GetOrders)
			orders.GET("/:id", orderHandler.GetOrder)
		}

		// Recipe routes
		recipes := v1.Group("/recipes")
		{
			recipes.GET("", recipeHandler.GetState)
			recipes.POST("", recipeLimiter.Middleware(), recipeHandler.RequestRecipe)
			recipes.DELETE("", recipeHandler.Close)
		}

		// Admin routes
		admin := v1.Group("/admin")
		{
			admin.GET("/editor", adminHandler.GetEditor)
			admin.POST("/editor", adminHandler.OpenCreate)
			admin.DELETE("/editor", adminHandler.CloseEditor)
			admin.POST("/editor/save", adminHandler.Save)
			admin.POST("/editor/:id", adminHandler.OpenEdit)
			admin.DELETE("/products/:id", middleware.ConfirmationRequired(), adminHandler.DeleteProduct)
		}
	}

	return &Router{Engine: r, limiters: []*middleware.RateLimiter{generalLimiter, recipeLimiter}}
}
