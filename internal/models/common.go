// internal/models/common.go
package models

// CategoryAll is the sentinel category that selects the whole catalog.
const CategoryAll = "All"

// Enums
type CheckoutStep string

const (
	CheckoutStepShipping     CheckoutStep = "SHIPPING"
	CheckoutStepPayment      CheckoutStep = "PAYMENT"
	CheckoutStepReview       CheckoutStep = "REVIEW"
	CheckoutStepConfirmation CheckoutStep = "CONFIRMATION"
)

type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

type PaymentMethod string

const (
	PaymentMethodCreditCard PaymentMethod = "Credit Card"
	PaymentMethodPayPal     PaymentMethod = "PayPal"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodCreditCard || m == PaymentMethodPayPal
}

type EditorMode string

const (
	EditorModeClosed   EditorMode = "closed"
	EditorModeCreating EditorMode = "creating"
	EditorModeEditing  EditorMode = "editing"
)
