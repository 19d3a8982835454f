// internal/handlers/order.go
package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/grocer/internal/i18n"
	"github.com/javajoker/grocer/internal/services"
	"github.com/javajoker/grocer/internal/utils"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// GET /orders
// Orders are listed in placement order.
func (h *OrderHandler) GetOrders(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	orders := h.orderService.Orders()

	result := utils.CreatePaginationResult(utils.Paginate(orders, params), int64(len(orders)), params)
	utils.PaginatedResponse(c, result)
}

// GET /orders/:id
// The id may be sent with its leading '#' percent-encoded or without it.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id := c.Param("id")
	if !strings.HasPrefix(id, "#") {
		id = "#" + id
	}

	order, err := h.orderService.GetOrder(id)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			utils.NotFoundResponse(c, i18n.KeyOrderNotFound)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"order": order,
	})
}
