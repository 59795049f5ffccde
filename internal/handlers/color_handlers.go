package handlers

import (
	"storeadmin/internal/models"
	"storeadmin/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ColorHandlers struct {
	resourceHandlers[models.Color, models.ColorInput]
	svc services.ColorService
}

func NewColorHandlers(svc services.ColorService, logger *zap.Logger) *ColorHandlers {
	return &ColorHandlers{resourceHandlers: newResourceHandlers[models.Color, models.ColorInput](svc, logger), svc: svc}
}

// CreateColor godoc
// @Summary  Create a color
// @Tags     colors
// @Accept   json
// @Produce  json
// @Param    storeId path string true "Store ID"
// @Param    body body models.ColorInput true "Color"
// @Success  200 {object} models.Color
// @Router   /{storeId}/colors [post]
func (h *ColorHandlers) CreateColor(c echo.Context) error { return h.create(c) }

// UpdateColor godoc
// @Summary  Update a color
// @Tags     colors
// @Param    storeId path string true "Store ID"
// @Param    id path string true "Color ID"
// @Param    body body models.ColorInput true "Color"
// @Success  200 {object} models.Color
// @Router   /{storeId}/colors/{id} [patch]
func (h *ColorHandlers) UpdateColor(c echo.Context) error { return h.update(c) }

// DeleteColor godoc
// @Summary  Delete a color
// @Tags     colors
// @Param    storeId path string true "Store ID"
// @Param    id path string true "Color ID"
// @Success  200 {object} DeleteResponse
// @Router   /{storeId}/colors/{id} [delete]
func (h *ColorHandlers) DeleteColor(c echo.Context) error { return h.delete(c) }

// GetColor godoc
// @Summary  Get a color, or null
// @Tags     colors
// @Param    id path string true "Color ID"
// @Success  200 {object} models.Color
// @Router   /colors/{id} [get]
func (h *ColorHandlers) GetColor(c echo.Context) error { return h.get(c) }

func (h *ColorHandlers) GetColorInStore(c echo.Context) error { return h.getInStore(c) }

// ListColors godoc
// @Summary  List a store's colors
// @Tags     colors
// @Param    storeId path string true "Store ID"
// @Success  200 {array} models.Color
// @Router   /{storeId}/colors [get]
func (h *ColorHandlers) ListColors(c echo.Context) error {
	items, err := h.svc.ListPublic(c.Request().Context(), c.Param("storeId"))
	return listed(c, h.logger, items, err)
}
