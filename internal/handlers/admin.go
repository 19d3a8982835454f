// internal/handlers/admin.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/grocer/internal/i18n"
	"github.com/javajoker/grocer/internal/models"
	"github.com/javajoker/grocer/internal/services"
	"github.com/javajoker/grocer/internal/utils"
)

type AdminHandler struct {
	adminService *services.AdminService
}

func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

// GET /admin/editor
func (h *AdminHandler) GetEditor(c *gin.Context) {
	utils.SuccessResponse(c, h.adminService.Editor())
}

// POST /admin/editor
func (h *AdminHandler) OpenCreate(c *gin.Context) {
	utils.SuccessResponse(c, h.adminService.OpenCreate())
}

// POST /admin/editor/:id
func (h *AdminHandler) OpenEdit(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	state, err := h.adminService.OpenEdit(id)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, i18n.KeyProductNotFound)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, state)
}

// DELETE /admin/editor
func (h *AdminHandler) CloseEditor(c *gin.Context) {
	utils.SuccessResponse(c, h.adminService.Close())
}

// POST /admin/editor/save
func (h *AdminHandler) Save(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.ProductForm
	if !bindAndValidate(c, &req) {
		return
	}

	mode := h.adminService.Editor().Mode
	product, found, err := h.adminService.Save(req)
	if err != nil {
		if errors.Is(err, services.ErrEditorClosed) {
			utils.ConflictResponse(c, i18n.T(lang, i18n.KeyAdminEditorClosed))
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	if !found {
		utils.NotFoundResponse(c, i18n.KeyProductNotFound)
		return
	}

	if mode == models.EditorModeCreating {
		utils.CreatedResponse(c, gin.H{
			"message": i18n.T(lang, i18n.KeyProductCreated),
			"product": NewProductView(product),
		})
		return
	}
	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductUpdated),
		"product": NewProductView(product),
	})
}

// DELETE /admin/products/:id
// Deleting an unknown id is a no-op and still succeeds.
func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	removed := h.adminService.RemoveProduct(id)
	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductDeleted),
		"removed": removed,
	})
}
