package handlers

import (
	"net/http"

	"storeadmin/internal/middleware"
	"storeadmin/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ExportHandlers struct {
	exportService services.ExportService
	logger        *zap.Logger
}

func NewExportHandlers(exportService services.ExportService, logger *zap.Logger) *ExportHandlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportHandlers{exportService: exportService, logger: logger}
}

// CreateExport godoc
// @Summary  Snapshot a store's catalog to object storage
// @Tags     exports
// @Param    storeId path string true "Store ID"
// @Success  200 {object} models.CatalogExport
// @Failure  503 {object} common.ErrorResponse
// @Router   /stores/{storeId}/exports [post]
func (h *ExportHandlers) CreateExport(c echo.Context) error {
	export, err := h.exportService.Export(c.Request().Context(), middleware.UserIDFrom(c), c.Param("storeId"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, export)
}
