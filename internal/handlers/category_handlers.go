package handlers

import (
	"storeadmin/internal/models"
	"storeadmin/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type CategoryHandlers struct {
	resourceHandlers[models.Category, models.CategoryInput]
	svc services.CategoryService
}

func NewCategoryHandlers(svc services.CategoryService, logger *zap.Logger) *CategoryHandlers {
	return &CategoryHandlers{resourceHandlers: newResourceHandlers[models.Category, models.CategoryInput](svc, logger), svc: svc}
}

// CreateCategory godoc
// @Summary  Create a category
// @Tags     categories
// @Accept   json
// @Produce  json
// @Param    storeId path string true "Store ID"
// @Param    body body models.CategoryInput true "Category"
// @Success  200 {object} models.Category
// @Router   /{storeId}/categories [post]
func (h *CategoryHandlers) CreateCategory(c echo.Context) error { return h.create(c) }

// UpdateCategory godoc
// @Summary  Update a category
// @Tags     categories
// @Param    storeId path string true "Store ID"
// @Param    id path string true "Category ID"
// @Param    body body models.CategoryInput true "Category"
// @Success  200 {object} models.Category
// @Router   /{storeId}/categories/{id} [patch]
func (h *CategoryHandlers) UpdateCategory(c echo.Context) error { return h.update(c) }

// DeleteCategory godoc
// @Summary  Delete a category
// @Tags     categories
// @Param    storeId path string true "Store ID"
// @Param    id path string true "Category ID"
// @Success  200 {object} DeleteResponse
// @Router   /{storeId}/categories/{id} [delete]
func (h *CategoryHandlers) DeleteCategory(c echo.Context) error { return h.delete(c) }

// GetCategory godoc
// @Summary  Get a category with its billboard, or null
// @Tags     categories
// @Param    id path string true "Category ID"
// @Success  200 {object} models.Category
// @Router   /categories/{id} [get]
func (h *CategoryHandlers) GetCategory(c echo.Context) error { return h.get(c) }

func (h *CategoryHandlers) GetCategoryInStore(c echo.Context) error { return h.getInStore(c) }

// ListCategories godoc
// @Summary  List a store's categories
// @Tags     categories
// @Param    storeId path string true "Store ID"
// @Success  200 {array} models.Category
// @Router   /{storeId}/categories [get]
func (h *CategoryHandlers) ListCategories(c echo.Context) error {
	items, err := h.svc.ListPublic(c.Request().Context(), c.Param("storeId"))
	return listed(c, h.logger, items, err)
}
