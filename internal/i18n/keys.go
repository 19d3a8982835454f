// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess = "success"
	KeyError   = "error"

	// Catalog
	KeyProductNotFound = "product.not_found"
	KeyProductCreated  = "product.created"
	KeyProductUpdated  = "product.updated"
	KeyProductDeleted  = "product.deleted"
	KeyReviewAdded     = "review.added"

	// Cart
	KeyCartItemAdded       = "cart.item_added"
	KeyCartItemNotFound    = "cart.item_not_found"
	KeyCartInvalidQuantity = "cart.invalid_quantity"
	KeyCartEmpty           = "cart.empty"

	// Checkout
	KeyCheckoutInvalidStep    = "checkout.invalid_step"
	KeyCheckoutPaymentInvalid = "checkout.payment_invalid"
	KeyOrderPlaced            = "order.placed"
	KeyOrderNotFound          = "order.not_found"

	// Recipes
	KeyRecipeInFlight         = "recipe.in_flight"
	KeyRecipeNotEnoughItems   = "recipe.not_enough_items"
	KeyRecipeGenerationFailed = "recipe.generation_failed"

	// Admin
	KeyAdminEditorClosed        = "admin.editor_closed"
	KeyAdminConfirmationMissing = "admin.confirmation_required"

	// Validation
	KeyValidationRequired = "validation.required"
	KeyValidationInvalid  = "validation.invalid"

	// Rate limiting
	KeyRateLimited = "rate_limit.exceeded"
)
