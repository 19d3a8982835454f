// internal/services/order_service.go
package services

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/javajoker/grocer/internal/models"
)

// OrderNotifier is told about every order after it has been recorded.
type OrderNotifier interface {
	OrderPlaced(ctx context.Context, order models.Order)
}

type OrderService struct {
	mu       sync.Mutex
	cart     *CartService
	orders   []models.Order
	notifier OrderNotifier
	now      func() time.Time
}

func NewOrderService(cart *CartService, notifier OrderNotifier) *OrderService {
	return &OrderService{
		cart:     cart,
		orders:   []models.Order{},
		notifier: notifier,
		now:      time.Now,
	}
}

// PlaceOrder snapshots and empties the cart, appends a Processing order to the history
// and then notifies. Shipping info is trusted: the HTTP boundary has already validated it.
func (s *OrderService) PlaceOrder(ctx context.Context, shipping models.ShippingInfo, method models.PaymentMethod) (models.Order, error) {
	order, err := s.record(ctx, shipping, method)
	if err != nil {
		return models.Order{}, err
	}
	s.notify(ctx, order)
	return order, nil
}

// record is the atomic part of PlaceOrder; it takes no lock other than the order and cart locks.
func (s *OrderService) record(ctx context.Context, shipping models.ShippingInfo, method models.PaymentMethod) (models.Order, error) {
	_, span := otel.Tracer(tracerName).Start(ctx, "orders.place")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cart.Len() == 0 {
		span.RecordError(ErrEmptyCart)
		return models.Order{}, ErrEmptyCart
	}

	items, total := s.cart.drain()
	now := s.now()
	order := models.Order{
		ID:            s.nextOrderID(now),
		Date:          now,
		Items:         items,
		Total:         total,
		ShippingInfo:  shipping,
		PaymentMethod: method,
		Status:        models.OrderStatusProcessing,
	}
	s.orders = append(s.orders, order)

	span.SetAttributes(
		attribute.String("order.id", order.ID),
		attribute.Int("order.lines", len(order.Items)),
		attribute.Float64("order.total", order.Total),
	)
	return order.Clone(), nil
}

// notify may block on the event publisher, so callers must not hold any service lock.
func (s *OrderService) notify(ctx context.Context, order models.Order) {
	if s.notifier != nil {
		s.notifier.OrderPlaced(ctx, order.Clone())
	}
}

func (s *OrderService) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Order, len(s.orders))
	for i, o := range s.orders {
		out[i] = o.Clone()
	}
	return out
}

func (s *OrderService) GetOrder(id string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.orders {
		if o.ID == id {
			return o.Clone(), nil
		}
	}
	return models.Order{}, fmt.Errorf("order %s: %w", id, ErrOrderNotFound)
}

// nextOrderID renders "#" plus the last six digits of the millisecond clock,
// stepping forward a millisecond while the id is already taken.
func (s *OrderService) nextOrderID(now time.Time) string {
	ms := now.UnixMilli()
	for {
		digits := strconv.FormatInt(ms, 10)
		if len(digits) > 6 {
			digits = digits[len(digits)-6:]
		}
		id := "#" + digits
		if !s.hasOrder(id) {
			return id
		}
		ms++
	}
}

func (s *OrderService) hasOrder(id string) bool {
	for _, o := range s.orders {
		if o.ID == id {
			return true
		}
	}
	return false
}
