package handlers

import (
	"storeadmin/internal/models"
	"storeadmin/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type SizeHandlers struct {
	resourceHandlers[models.Size, models.SizeInput]
	svc services.SizeService
}

func NewSizeHandlers(svc services.SizeService, logger *zap.Logger) *SizeHandlers {
	return &SizeHandlers{resourceHandlers: newResourceHandlers[models.Size, models.SizeInput](svc, logger), svc: svc}
}

// CreateSize godoc
// @Summary  Create a size
// @Tags     sizes
// @Accept   json
// @Produce  json
// @Param    storeId path string true "Store ID"
// @Param    body body models.SizeInput true "Size"
// @Success  200 {object} models.Size
// @Router   /{storeId}/sizes [post]
func (h *SizeHandlers) CreateSize(c echo.Context) error { return h.create(c) }

// UpdateSize godoc
// @Summary  Update a size
// @Tags     sizes
// @Param    storeId path string true "Store ID"
// @Param    id path string true "Size ID"
// @Param    body body models.SizeInput true "Size"
// @Success  200 {object} models.Size
// @Router   /{storeId}/sizes/{id} [patch]
func (h *SizeHandlers) UpdateSize(c echo.Context) error { return h.update(c) }

// DeleteSize godoc
// @Summary  Delete a size
// @Tags     sizes
// @Param    storeId path string true "Store ID"
// @Param    id path string true "Size ID"
// @Success  200 {object} DeleteResponse
// @Router   /{storeId}/sizes/{id} [delete]
func (h *SizeHandlers) DeleteSize(c echo.Context) error { return h.delete(c) }

// GetSize godoc
// @Summary  Get a size, or null
// @Tags     sizes
// @Param    id path string true "Size ID"
// @Success  200 {object} models.Size
// @Router   /sizes/{id} [get]
func (h *SizeHandlers) GetSize(c echo.Context) error { return h.get(c) }

func (h *SizeHandlers) GetSizeInStore(c echo.Context) error { return h.getInStore(c) }

// ListSizes godoc
// @Summary  List a store's sizes
// @Tags     sizes
// @Param    storeId path string true "Store ID"
// @Success  200 {array} models.Size
// @Router   /{storeId}/sizes [get]
func (h *SizeHandlers) ListSizes(c echo.Context) error {
	items, err := h.svc.ListPublic(c.Request().Context(), c.Param("storeId"))
	return listed(c, h.logger, items, err)
}
