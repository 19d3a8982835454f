// internal/handlers/product.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/grocer/internal/i18n"
	"github.com/javajoker/grocer/internal/models"
	"github.com/javajoker/grocer/internal/services"
	"github.com/javajoker/grocer/internal/utils"
)

// ProductView is a product as shown on a card or detail page.
type ProductView struct {
	models.Product
	AverageRating float64 `json:"average_rating"`
}

func NewProductView(p models.Product) ProductView {
	return ProductView{Product: p, AverageRating: p.AverageRating()}
}

type ProductHandler struct {
	catalogService *services.CatalogService
}

func NewProductHandler(catalogService *services.CatalogService) *ProductHandler {
	return &ProductHandler{
		catalogService: catalogService,
	}
}

// GET /categories
func (h *ProductHandler) GetCategories(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"categories": h.catalogService.Categories(),
	})
}

// GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	if params.Category == "" {
		params.Category = models.CategoryAll
	}

	products := h.catalogService.FilterByCategory(params.Category)
	views := make([]ProductView, len(products))
	for i, p := range products {
		views[i] = NewProductView(p)
	}

	result := utils.CreatePaginationResult(utils.Paginate(views, params), int64(len(views)), params)
	utils.PaginatedResponse(c, result)
}

// GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	product, found := h.catalogService.GetProduct(id)
	if !found {
		utils.NotFoundResponse(c, i18n.KeyProductNotFound)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product": NewProductView(product),
	})
}

// POST /products/:id/reviews
func (h *ProductHandler) AddReview(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req services.CreateReviewRequest
	if !bindAndValidate(c, &req) {
		return
	}

	review, found := h.catalogService.AddReview(id, req)
	if !found {
		utils.NotFoundResponse(c, i18n.KeyProductNotFound)
		return
	}

	product, _ := h.catalogService.GetProduct(id)
	utils.CreatedResponse(c, gin.H{
		"message":        i18n.T(lang, i18n.KeyReviewAdded),
		"review":         review,
		"average_rating": product.AverageRating(),
	})
}
