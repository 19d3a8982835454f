// internal/handlers/cart.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/grocer/internal/i18n"
	"github.com/javajoker/grocer/internal/models"
	"github.com/javajoker/grocer/internal/services"
	"github.com/javajoker/grocer/internal/utils"
)

type CartView struct {
	Items     []models.CartItem `json:"items"`
	Total     float64           `json:"total"`
	ItemCount int               `json:"item_count"`
}

type CartHandler struct {
	cartService    *services.CartService
	catalogService *services.CatalogService
}

func NewCartHandler(cartService *services.CartService, catalogService *services.CatalogService) *CartHandler {
	return &CartHandler{
		cartService:    cartService,
		catalogService: catalogService,
	}
}

func (h *CartHandler) view() CartView {
	items := h.cartService.Items()
	return CartView{
		Items:     items,
		Total:     h.cartService.Total(),
		ItemCount: h.cartService.ItemCount(),
	}
}

// GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	utils.SuccessResponse(c, h.view())
}

// POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.AddToCartRequest
	if !bindAndValidate(c, &req) {
		return
	}

	product, found := h.catalogService.GetProduct(req.ProductID)
	if !found {
		utils.NotFoundResponse(c, i18n.KeyProductNotFound)
		return
	}

	item := h.cartService.AddToCart(product)
	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCartItemAdded),
		"item":    item,
		"cart":    h.view(),
	})
}

// PUT /cart/items/:id
func (h *CartHandler) UpdateItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req services.UpdateQuantityRequest
	if !bindAndValidate(c, &req) {
		return
	}

	if err := h.cartService.UpdateQuantity(id, *req.Quantity); err != nil {
		if errors.Is(err, services.ErrInvalidQuantity) {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyCartInvalidQuantity), nil)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, h.view())
}

// DELETE /cart/items/:id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	h.cartService.RemoveItem(id)
	utils.SuccessResponse(c, h.view())
}
