// internal/services/errors.go
package services

import "errors"

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidQuantity   = errors.New("quantity must not be negative")
	ErrInvalidTransition = errors.New("invalid checkout transition")
	ErrInvalidPayment    = errors.New("unsupported payment method")
	ErrRecipeInFlight    = errors.New("recipe generation already in progress")
	ErrEditorClosed      = errors.New("product editor is closed")
)
