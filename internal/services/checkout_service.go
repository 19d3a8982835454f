// internal/services/checkout_service.go
package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/javajoker/grocer/internal/models"
)

// CheckoutService drives SHIPPING -> PAYMENT -> REVIEW -> CONFIRMATION for one attempt.
type CheckoutService struct {
	mu            sync.Mutex
	cart          *CartService
	orders        *OrderService
	open          bool
	step          models.CheckoutStep
	shipping      models.ShippingInfo
	paymentMethod models.PaymentMethod
	lastOrder     *models.Order
}

type SubmitPaymentRequest struct {
	PaymentMethod models.PaymentMethod `json:"payment_method" validate:"required,oneof='Credit Card' PayPal"`
}

type CheckoutState struct {
	Open          bool                 `json:"open"`
	Step          models.CheckoutStep  `json:"step"`
	ShippingInfo  models.ShippingInfo  `json:"shipping_info"`
	PaymentMethod models.PaymentMethod `json:"payment_method"`
	Items         []models.CartItem    `json:"items"`
	Total         float64              `json:"total"`
	Order         *models.Order        `json:"order,omitempty"`
}

func NewCheckoutService(cart *CartService, orders *OrderService) *CheckoutService {
	s := &CheckoutService{cart: cart, orders: orders}
	s.reset()
	return s
}

// Begin opens checkout; it needs at least one cart line.
func (s *CheckoutService) Begin() (CheckoutState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cart.Len() == 0 {
		return s.state(), ErrEmptyCart
	}
	s.reset()
	s.open = true
	return s.state(), nil
}

func (s *CheckoutService) SubmitShipping(info models.ShippingInfo) (CheckoutState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.expect(models.CheckoutStepShipping); err != nil {
		return s.state(), err
	}
	s.shipping = info
	s.step = models.CheckoutStepPayment
	return s.state(), nil
}

func (s *CheckoutService) SubmitPayment(method models.PaymentMethod) (CheckoutState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.expect(models.CheckoutStepPayment); err != nil {
		return s.state(), err
	}
	if !method.Valid() {
		return s.state(), ErrInvalidPayment
	}
	s.paymentMethod = method
	s.step = models.CheckoutStepReview
	return s.state(), nil
}

// Back allows PAYMENT -> SHIPPING and REVIEW -> PAYMENT only.
func (s *CheckoutService) Back() (CheckoutState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return s.state(), fmt.Errorf("checkout is not open: %w", ErrInvalidTransition)
	}
	switch s.step {
	case models.CheckoutStepPayment:
		s.step = models.CheckoutStepShipping
	case models.CheckoutStepReview:
		s.step = models.CheckoutStepPayment
	default:
		return s.state(), fmt.Errorf("cannot go back from %s: %w", s.step, ErrInvalidTransition)
	}
	return s.state(), nil
}

// PlaceOrder is the irreversible REVIEW -> CONFIRMATION step. The order event is
// sent after the checkout lock is released.
func (s *CheckoutService) PlaceOrder(ctx context.Context) (models.Order, error) {
	order, err := s.confirm(ctx)
	if err != nil {
		return models.Order{}, err
	}

	s.orders.notify(ctx, order)
	return order, nil
}

func (s *CheckoutService) confirm(ctx context.Context) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.expect(models.CheckoutStepReview); err != nil {
		return models.Order{}, err
	}

	order, err := s.orders.record(ctx, s.shipping, s.paymentMethod)
	if err != nil {
		return models.Order{}, err
	}

	s.lastOrder = &order
	s.step = models.CheckoutStepConfirmation
	return order.Clone(), nil
}

// Close ends the attempt from any step and clears the shipping form.
func (s *CheckoutService) Close() CheckoutState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reset()
	return s.state()
}

func (s *CheckoutService) State() CheckoutState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state()
}

func (s *CheckoutService) expect(step models.CheckoutStep) error {
	if !s.open {
		return fmt.Errorf("checkout is not open: %w", ErrInvalidTransition)
	}
	if s.step != step {
		return fmt.Errorf("expected step %s, at %s: %w", step, s.step, ErrInvalidTransition)
	}
	return nil
}

func (s *CheckoutService) reset() {
	s.open = false
	s.step = models.CheckoutStepShipping
	s.shipping = models.ShippingInfo{}
	s.paymentMethod = models.PaymentMethodCreditCard
	s.lastOrder = nil
}

func (s *CheckoutService) state() CheckoutState {
	st := CheckoutState{
		Open:          s.open,
		Step:          s.step,
		ShippingInfo:  s.shipping,
		PaymentMethod: s.paymentMethod,
		Items:         s.cart.Items(),
	}
	st.Total = cartTotal(st.Items)
	if s.lastOrder != nil {
		o := s.lastOrder.Clone()
		st.Order = &o
	}
	return st
}
