// internal/services/cart_service.go
package services

import (
	"sync"

	"github.com/javajoker/grocer/internal/models"
)

// CartService holds the cart lines in insertion order, one line per product id.
type CartService struct {
	mu    sync.Mutex
	items []models.CartItem
}

type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

type AddToCartRequest struct {
	ProductID int64 `json:"product_id" validate:"required"`
}

func NewCartService() *CartService {
	return &CartService{items: []models.CartItem{}}
}

// AddToCart increments the line for product.ID or appends a new line with quantity 1.
// The line keeps its own copy of the product, so later catalog edits do not reach it.
func (s *CartService) AddToCart(product models.Product) models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(product.ID); i >= 0 {
		s.items[i].Quantity++
		return s.items[i].Clone()
	}

	item := models.CartItem{Product: product.Clone(), Quantity: 1}
	s.items = append(s.items, item)
	return item.Clone()
}

// UpdateQuantity sets the quantity of a line. Zero removes the line, negative values
// are rejected with ErrInvalidQuantity and unknown ids are ignored.
func (s *CartService) UpdateQuantity(productID int64, quantity int) error {
	if quantity < 0 {
		return ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(productID)
	if i < 0 {
		return nil
	}
	if quantity == 0 {
		s.removeAt(i)
		return nil
	}
	s.items[i].Quantity = quantity
	return nil
}

func (s *CartService) RemoveItem(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(productID); i >= 0 {
		s.removeAt(i)
	}
}

func (s *CartService) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	return cloneItems(s.items)
}

func (s *CartService) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return cartTotal(s.items)
}

func (s *CartService) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// Len is the number of distinct lines.
func (s *CartService) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.items)
}

// drain snapshots the cart with its total and empties it in one step.
func (s *CartService) drain() ([]models.CartItem, float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := cloneItems(s.items)
	total := cartTotal(s.items)
	s.items = []models.CartItem{}
	return snapshot, total
}

func (s *CartService) indexOf(productID int64) int {
	for i := range s.items {
		if s.items[i].ID == productID {
			return i
		}
	}
	return -1
}

func (s *CartService) removeAt(i int) {
	s.items = append(s.items[:i], s.items[i+1:]...)
}

func cartTotal(items []models.CartItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Subtotal()
	}
	return total
}

func cloneItems(items []models.CartItem) []models.CartItem {
	out := make([]models.CartItem, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}
