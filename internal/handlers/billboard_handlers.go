package handlers

import (
	"storeadmin/internal/models"
	"storeadmin/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type BillboardHandlers struct {
	resourceHandlers[models.Billboard, models.BillboardInput]
	svc services.BillboardService
}

func NewBillboardHandlers(svc services.BillboardService, logger *zap.Logger) *BillboardHandlers {
	return &BillboardHandlers{resourceHandlers: newResourceHandlers[models.Billboard, models.BillboardInput](svc, logger), svc: svc}
}

// CreateBillboard godoc
// @Summary  Create a billboard
// @Tags     billboards
// @Accept   json
// @Produce  json
// @Param    storeId path string true "Store ID"
// @Param    body body models.BillboardInput true "Billboard"
// @Success  200 {object} models.Billboard
// @Router   /{storeId}/billboards [post]
func (h *BillboardHandlers) CreateBillboard(c echo.Context) error { return h.create(c) }

// UpdateBillboard godoc
// @Summary  Update a billboard
// @Tags     billboards
// @Param    storeId path string true "Store ID"
// @Param    id path string true "Billboard ID"
// @Param    body body models.BillboardInput true "Billboard"
// @Success  200 {object} models.Billboard
// @Router   /{storeId}/billboards/{id} [patch]
func (h *BillboardHandlers) UpdateBillboard(c echo.Context) error { return h.update(c) }

// DeleteBillboard godoc
// @Summary  Delete a billboard
// @Tags     billboards
// @Param    storeId path string true "Store ID"
// @Param    id path string true "Billboard ID"
// @Success  200 {object} DeleteResponse
// @Router   /{storeId}/billboards/{id} [delete]
func (h *BillboardHandlers) DeleteBillboard(c echo.Context) error { return h.delete(c) }

// GetBillboard godoc
// @Summary  Get a billboard, or null
// @Tags     billboards
// @Param    id path string true "Billboard ID"
// @Success  200 {object} models.Billboard
// @Router   /billboards/{id} [get]
func (h *BillboardHandlers) GetBillboard(c echo.Context) error { return h.get(c) }

func (h *BillboardHandlers) GetBillboardInStore(c echo.Context) error { return h.getInStore(c) }

// ListBillboards godoc
// @Summary  List a store's billboards
// @Tags     billboards
// @Param    storeId path string true "Store ID"
// @Success  200 {array} models.Billboard
// @Router   /{storeId}/billboards [get]
func (h *BillboardHandlers) ListBillboards(c echo.Context) error {
	items, err := h.svc.ListPublic(c.Request().Context(), c.Param("storeId"))
	return listed(c, h.logger, items, err)
}
