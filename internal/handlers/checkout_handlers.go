package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// CheckoutPreflight answers the storefront's cross-origin preflight for checkout. The
// checkout POST itself is not served.
func CheckoutPreflight(c echo.Context) error {
	h := c.Response().Header()
	h.Set(echo.HeaderAccessControlAllowOrigin, "*")
	h.Set(echo.HeaderAccessControlAllowMethods, "GET, POST, OPTIONS, PUT, PATCH, DELETE")
	h.Set(echo.HeaderAccessControlAllowHeaders, "Content-Type, Authorization")
	return c.JSON(http.StatusOK, map[string]interface{}{})
}
