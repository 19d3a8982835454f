// internal/services/storefront.go
package services

import (
	"github.com/sirupsen/logrus"

	"github.com/javajoker/grocer/internal/models"
)

// Storefront is the whole state of one shopping session. Handlers receive it by
// pointer; nothing in this package keeps session state in globals.
type Storefront struct {
	Catalog       *CatalogService
	Cart          *CartService
	Orders        *OrderService
	Checkout      *CheckoutService
	Recipes       *RecipeService
	Admin         *AdminService
	Notifications *NotificationService
}

type StorefrontOptions struct {
	Seed      []models.Product
	Generator RecipeGenerator
	Publisher EventPublisher
	Logger    *logrus.Logger
}

func NewStorefront(opts StorefrontOptions) *Storefront {
	catalog := NewCatalogService(opts.Seed)
	cart := NewCartService()
	notifications := NewNotificationService(opts.Publisher, opts.Logger)
	orders := NewOrderService(cart, notifications)

	return &Storefront{
		Catalog:       catalog,
		Cart:          cart,
		Orders:        orders,
		Checkout:      NewCheckoutService(cart, orders),
		Recipes:       NewRecipeService(cart, opts.Generator, opts.Logger),
		Admin:         NewAdminService(catalog),
		Notifications: notifications,
	}
}
