// internal/handlers/checkout.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/grocer/internal/i18n"
	"github.com/javajoker/grocer/internal/models"
	"github.com/javajoker/grocer/internal/services"
	"github.com/javajoker/grocer/internal/utils"
)

type CheckoutHandler struct {
	checkoutService *services.CheckoutService
}

func NewCheckoutHandler(checkoutService *services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

// GET /checkout
func (h *CheckoutHandler) GetState(c *gin.Context) {
	utils.SuccessResponse(c, h.checkoutService.State())
}

// POST /checkout
func (h *CheckoutHandler) Begin(c *gin.Context) {
	state, err := h.checkoutService.Begin()
	if err != nil {
		h.checkoutError(c, err)
		return
	}
	utils.SuccessResponse(c, state)
}

// POST /checkout/shipping
func (h *CheckoutHandler) SubmitShipping(c *gin.Context) {
	var req models.ShippingInfo
	if !bindAndValidate(c, &req) {
		return
	}

	state, err := h.checkoutService.SubmitShipping(req)
	if err != nil {
		h.checkoutError(c, err)
		return
	}
	utils.SuccessResponse(c, state)
}

// POST /checkout/payment
func (h *CheckoutHandler) SubmitPayment(c *gin.Context) {
	var req services.SubmitPaymentRequest
	if !bindAndValidate(c, &req) {
		return
	}

	state, err := h.checkoutService.SubmitPayment(req.PaymentMethod)
	if err != nil {
		h.checkoutError(c, err)
		return
	}
	utils.SuccessResponse(c, state)
}

// POST /checkout/back
func (h *CheckoutHandler) Back(c *gin.Context) {
	state, err := h.checkoutService.Back()
	if err != nil {
		h.checkoutError(c, err)
		return
	}
	utils.SuccessResponse(c, state)
}

// POST /checkout/place
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	order, err := h.checkoutService.PlaceOrder(c.Request.Context())
	if err != nil {
		h.checkoutError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":  i18n.T(lang, i18n.KeyOrderPlaced),
		"order":    order,
		"checkout": h.checkoutService.State(),
	})
}

// DELETE /checkout
func (h *CheckoutHandler) Close(c *gin.Context) {
	utils.SuccessResponse(c, h.checkoutService.Close())
}

func (h *CheckoutHandler) checkoutError(c *gin.Context, err error) {
	lang := utils.GetLangFromContext(c)
	switch {
	case errors.Is(err, services.ErrEmptyCart):
		utils.ConflictResponse(c, i18n.T(lang, i18n.KeyCartEmpty))
	case errors.Is(err, services.ErrInvalidTransition):
		utils.ConflictResponse(c, i18n.T(lang, i18n.KeyCheckoutInvalidStep))
	case errors.Is(err, services.ErrInvalidPayment):
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyCheckoutPaymentInvalid), nil)
	default:
		utils.InternalErrorResponse(c, err.Error())
	}
}
