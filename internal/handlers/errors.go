package handlers

import (
	"errors"
	"io"
	"net/http"

	"storeadmin/internal/common"
	"storeadmin/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// respondError renders err in the shared error envelope. Anything outside the error
// taxonomy is a 500 and is logged with its cause.
func respondError(c echo.Context, log *zap.Logger, err error) error {
	var verr *common.ValidationError
	var herr *echo.HTTPError

	switch {
	case errors.Is(err, common.ErrUnauthenticated):
		return c.JSON(http.StatusUnauthorized, common.CreateErrorResponse("UNAUTHENTICATED", "Unauthenticated", nil))
	case errors.Is(err, common.ErrForbidden):
		return c.JSON(http.StatusForbidden, common.CreateErrorResponse("FORBIDDEN", "Unauthorized", nil))
	case errors.Is(err, common.ErrNotFound):
		return c.JSON(http.StatusNotFound, common.CreateErrorResponse("NOT_FOUND", "Not found", nil))
	case errors.Is(err, common.ErrConflict):
		return c.JSON(http.StatusConflict, common.CreateErrorResponse("CONFLICT", "Resource is still referenced", nil))
	case errors.Is(err, services.ErrExportUnavailable):
		return c.JSON(http.StatusServiceUnavailable, common.CreateErrorResponse("EXPORT_UNAVAILABLE", err.Error(), nil))
	case errors.As(err, &verr):
		if verr.Missing {
			return c.JSON(http.StatusNotFound, common.CreateErrorResponse("MISSING_FIELD", "Required field missing", verr.Fields))
		}
		return c.JSON(http.StatusBadRequest, common.CreateErrorResponse("VALIDATION_ERROR", "Invalid request body", verr.Fields))
	case errors.As(err, &herr):
		return herr
	}

	log.Error("request failed",
		zap.String("method", c.Request().Method),
		zap.String("route", c.Path()),
		zap.Error(err))
	return c.JSON(http.StatusInternalServerError, common.CreateErrorResponse("INTERNAL", "Internal error", nil))
}

// decodeBody decodes a JSON body without insisting on a Content-Type. An empty body
// decodes to the zero value so the schema check reports the missing fields. A body
// that does not decode comes back nil; services reject it as malformed only after
// the identity and ownership checks.
func decodeBody[In any](c echo.Context) *In {
	input := new(In)
	err := c.Echo().JSONSerializer.Deserialize(c, input)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil
	}
	return input
}
