package handlers

import (
	"net/http"

	"storeadmin/internal/common"
	"storeadmin/internal/middleware"
	"storeadmin/internal/models"
	"storeadmin/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AuditLogsHandlers handles audit logs related HTTP requests
type AuditLogsHandlers struct {
	auditLogsService services.AuditLogsService
	logger           *zap.Logger
}

// NewAuditLogsHandlers creates a new audit logs handlers instance
func NewAuditLogsHandlers(auditLogsService services.AuditLogsService, logger *zap.Logger) *AuditLogsHandlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuditLogsHandlers{auditLogsService: auditLogsService, logger: logger}
}

// ListAuditLogs godoc
// @Summary  List a store's audit trail, newest first
// @Tags     audit
// @Param    storeId path string true "Store ID"
// @Param    entity query string false "Entity filter"
// @Param    limit query int false "Page size (max 200)"
// @Param    offset query int false "Page offset"
// @Success  200 {array} models.AuditLog
// @Router   /stores/{storeId}/audit-logs [get]
func (h *AuditLogsHandlers) ListAuditLogs(c echo.Context) error {
	var filter models.AuditLogFilter
	if err := c.Bind(&filter); err != nil {
		return respondError(c, h.logger, common.NewValidationError("query", "invalid query parameters"))
	}

	logs, err := h.auditLogsService.List(c.Request().Context(), middleware.UserIDFrom(c), c.Param("storeId"), filter)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	if logs == nil {
		logs = []*models.AuditLog{}
	}
	return c.JSON(http.StatusOK, logs)
}
