// internal/services/admin_service.go
package services

import (
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/javajoker/grocer/internal/models"
)

// EditorState is the admin form's tri-state: closed, creating, or editing one product.
type EditorState struct {
	Mode      models.EditorMode `json:"mode"`
	ProductID int64             `json:"product_id,omitempty"`
	Product   *models.Product   `json:"product,omitempty"`
}

// ProductForm is the raw admin form. Price stays a string so that it can be parsed leniently.
type ProductForm struct {
	Name     string `json:"name" validate:"required,notblank"`
	Price    string `json:"price"`
	Category string `json:"category" validate:"required,notblank"`
	Image    string `json:"image" validate:"required,notblank"`
}

type AdminService struct {
	mu      sync.Mutex
	catalog *CatalogService
	mode    models.EditorMode
	editing int64
}

func NewAdminService(catalog *CatalogService) *AdminService {
	return &AdminService{catalog: catalog, mode: models.EditorModeClosed}
}

func (s *AdminService) OpenCreate() EditorState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mode = models.EditorModeCreating
	s.editing = 0
	return s.state()
}

func (s *AdminService) OpenEdit(productID int64) (EditorState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.catalog.GetProduct(productID); !ok {
		return s.state(), ErrProductNotFound
	}
	s.mode = models.EditorModeEditing
	s.editing = productID
	return s.state(), nil
}

func (s *AdminService) Close() EditorState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mode = models.EditorModeClosed
	s.editing = 0
	return s.state()
}

func (s *AdminService) Editor() EditorState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state()
}

// Save submits the form to the catalog according to the editor mode and closes the editor.
// Saving an edit for a product deleted meanwhile is a no-op that reports found=false.
func (s *AdminService) Save(form ProductForm) (product models.Product, found bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fields := form.Fields()
	switch s.mode {
	case models.EditorModeCreating:
		product, found = s.catalog.AddProduct(fields), true
	case models.EditorModeEditing:
		product, found = s.catalog.UpdateProduct(s.editing, fields)
	default:
		return models.Product{}, false, ErrEditorClosed
	}

	s.mode = models.EditorModeClosed
	s.editing = 0
	return product, found, nil
}

// RemoveProduct deletes a product once the confirmation gate has been passed.
// If the product is open in the editor, the editor closes.
func (s *AdminService) RemoveProduct(productID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode == models.EditorModeEditing && s.editing == productID {
		s.mode = models.EditorModeClosed
		s.editing = 0
	}
	return s.catalog.RemoveProduct(productID)
}

func (s *AdminService) state() EditorState {
	st := EditorState{Mode: s.mode}
	if s.mode == models.EditorModeEditing {
		st.ProductID = s.editing
		if p, ok := s.catalog.GetProduct(s.editing); ok {
			st.Product = &p
		}
	}
	return st
}

func (f ProductForm) Fields() models.ProductFields {
	return models.ProductFields{
		Name:     strings.TrimSpace(f.Name),
		Price:    ParsePrice(f.Price),
		Category: strings.TrimSpace(f.Category),
		Image:    strings.TrimSpace(f.Image),
	}
}

// ParsePrice maps anything that is not a finite non-negative number to 0.
func ParsePrice(raw string) float64 {
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0
	}
	return price
}
