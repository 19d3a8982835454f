// internal/services/catalog_service.go
package services

import (
	"sync"

	"github.com/javajoker/grocer/internal/models"
)

// CatalogService owns the products and their embedded reviews.
type CatalogService struct {
	mu           sync.RWMutex
	products     []models.Product
	nextProduct  int64
	nextReviewID int64
}

type CreateReviewRequest struct {
	Author  string `json:"author" validate:"required,notblank"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required,notblank"`
}

func NewCatalogService(seed []models.Product) *CatalogService {
	s := &CatalogService{products: make([]models.Product, 0, len(seed))}
	for _, p := range seed {
		p = p.Clone()
		if p.Reviews == nil {
			p.Reviews = []models.Review{}
		}
		if p.ID > s.nextProduct {
			s.nextProduct = p.ID
		}
		for _, r := range p.Reviews {
			if r.ID > s.nextReviewID {
				s.nextReviewID = r.ID
			}
		}
		s.products = append(s.products, p)
	}
	return s
}

func (s *CatalogService) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneProducts(s.products)
}

func (s *CatalogService) GetProduct(id int64) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.products[i].Clone(), true
	}
	return models.Product{}, false
}

// FilterByCategory returns every product for models.CategoryAll, else the exact matches.
func (s *CatalogService) FilterByCategory(category string) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if category == models.CategoryAll || category == "" {
		return cloneProducts(s.products)
	}

	filtered := []models.Product{}
	for _, p := range s.products {
		if p.Category == category {
			filtered = append(filtered, p.Clone())
		}
	}
	return filtered
}

// Categories lists models.CategoryAll followed by each category in first-seen order.
func (s *CatalogService) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := []string{models.CategoryAll}
	seen := make(map[string]bool)
	for _, p := range s.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories
}

func (s *CatalogService) AddProduct(fields models.ProductFields) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextProduct++
	product := models.Product{
		ID:       s.nextProduct,
		Name:     fields.Name,
		Price:    fields.Price,
		Category: fields.Category,
		Image:    fields.Image,
		Reviews:  []models.Review{},
	}
	s.products = append(s.products, product)

	return product.Clone()
}

// UpdateProduct replaces the mutable fields; a missing id leaves the catalog untouched.
func (s *CatalogService) UpdateProduct(id int64, fields models.ProductFields) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Product{}, false
	}

	p := &s.products[i]
	p.Name = fields.Name
	p.Price = fields.Price
	p.Category = fields.Category
	p.Image = fields.Image

	return p.Clone(), true
}

// RemoveProduct assumes the caller already passed the confirmation gate.
func (s *CatalogService) RemoveProduct(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.products = append(s.products[:i], s.products[i+1:]...)
	return true
}

func (s *CatalogService) AddReview(productID int64, req CreateReviewRequest) (models.Review, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(productID)
	if i < 0 {
		return models.Review{}, false
	}

	s.nextReviewID++
	review := models.Review{
		ID:      s.nextReviewID,
		Author:  req.Author,
		Rating:  req.Rating,
		Comment: req.Comment,
	}
	s.products[i].Reviews = append(s.products[i].Reviews, review)

	return review, true
}

func (s *CatalogService) indexOf(id int64) int {
	for i := range s.products {
		if s.products[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneProducts(products []models.Product) []models.Product {
	out := make([]models.Product, len(products))
	for i, p := range products {
		out[i] = p.Clone()
	}
	return out
}
