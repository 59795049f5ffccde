package handlers

import (
	"net/http"

	"storeadmin/internal/middleware"
	"storeadmin/internal/models"
	"storeadmin/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// StoreHandlers handles the owner-only store routes. Stores are never public: the row
// carries the payment key.
type StoreHandlers struct {
	storeService services.StoreService
	logger       *zap.Logger
}

func NewStoreHandlers(storeService services.StoreService, logger *zap.Logger) *StoreHandlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StoreHandlers{storeService: storeService, logger: logger}
}

// CreateStore godoc
// @Summary  Create a store owned by the caller
// @Tags     stores
// @Accept   json
// @Produce  json
// @Param    body body models.StoreInput true "Store"
// @Success  200 {object} models.Store
// @Failure  401 {object} common.ErrorResponse
// @Failure  404 {object} common.ErrorResponse
// @Router   /stores [post]
func (h *StoreHandlers) CreateStore(c echo.Context) error {
	input := decodeBody[models.StoreInput](c)
	store, err := h.storeService.Create(c.Request().Context(), middleware.UserIDFrom(c), input)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, store)
}

// ListStores godoc
// @Summary  List the caller's stores
// @Tags     stores
// @Success  200 {array} models.Store
// @Router   /stores [get]
func (h *StoreHandlers) ListStores(c echo.Context) error {
	stores, err := h.storeService.List(c.Request().Context(), middleware.UserIDFrom(c))
	return listed(c, h.logger, stores, err)
}

// GetStore godoc
// @Summary  Get one of the caller's stores
// @Tags     stores
// @Param    storeId path string true "Store ID"
// @Success  200 {object} models.Store
// @Router   /stores/{storeId} [get]
func (h *StoreHandlers) GetStore(c echo.Context) error {
	store, err := h.storeService.Get(c.Request().Context(), middleware.UserIDFrom(c), c.Param("storeId"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, store)
}

// UpdateStore godoc
// @Summary  Update a store
// @Tags     stores
// @Param    storeId path string true "Store ID"
// @Param    body body models.StoreInput true "Store"
// @Success  200 {object} models.Store
// @Router   /stores/{storeId} [patch]
func (h *StoreHandlers) UpdateStore(c echo.Context) error {
	input := decodeBody[models.StoreInput](c)
	store, err := h.storeService.Update(c.Request().Context(), middleware.UserIDFrom(c), c.Param("storeId"), input)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, store)
}

// DeleteStore godoc
// @Summary  Delete a store and its whole catalog
// @Tags     stores
// @Param    storeId path string true "Store ID"
// @Success  200 {object} DeleteResponse
// @Router   /stores/{storeId} [delete]
func (h *StoreHandlers) DeleteStore(c echo.Context) error {
	count, err := h.storeService.Delete(c.Request().Context(), middleware.UserIDFrom(c), c.Param("storeId"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, DeleteResponse{Count: count})
}
