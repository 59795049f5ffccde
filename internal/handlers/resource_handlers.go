package handlers

import (
	"context"
	"net/http"

	"storeadmin/internal/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// catalogService is the lifecycle every store-scoped resource shares.
type catalogService[T, In any] interface {
	Create(ctx context.Context, userID, storeID string, input *In) (*T, error)
	Update(ctx context.Context, userID, storeID, id string, input *In) (*T, error)
	Delete(ctx context.Context, userID, storeID, id string) (int64, error)
	GetPublic(ctx context.Context, id string) (*T, error)
	GetPublicInStore(ctx context.Context, storeID, id string) (*T, error)
}

// resourceHandlers serves the mutation and single-read routes of one resource. The
// resource id always comes from the path; ids in the body are ignored.
type resourceHandlers[T, In any] struct {
	svc    catalogService[T, In]
	logger *zap.Logger
}

func newResourceHandlers[T, In any](svc catalogService[T, In], logger *zap.Logger) resourceHandlers[T, In] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return resourceHandlers[T, In]{svc: svc, logger: logger}
}

// DeleteResponse is the body of every delete.
type DeleteResponse struct {
	Count int64 `json:"count"`
}

func (h resourceHandlers[T, In]) create(c echo.Context) error {
	input := decodeBody[In](c)
	entity, err := h.svc.Create(c.Request().Context(), middleware.UserIDFrom(c), c.Param("storeId"), input)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, entity)
}

func (h resourceHandlers[T, In]) update(c echo.Context) error {
	input := decodeBody[In](c)
	entity, err := h.svc.Update(c.Request().Context(), middleware.UserIDFrom(c), c.Param("storeId"), c.Param("id"), input)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, entity)
}

func (h resourceHandlers[T, In]) delete(c echo.Context) error {
	count, err := h.svc.Delete(c.Request().Context(), middleware.UserIDFrom(c), c.Param("storeId"), c.Param("id"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, DeleteResponse{Count: count})
}

// get renders the entity, or null when nothing matches.
func (h resourceHandlers[T, In]) get(c echo.Context) error {
	entity, err := h.svc.GetPublic(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, entity)
}

func (h resourceHandlers[T, In]) getInStore(c echo.Context) error {
	entity, err := h.svc.GetPublicInStore(c.Request().Context(), c.Param("storeId"), c.Param("id"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, entity)
}

// listed renders a storefront list, never null.
func listed[T any](c echo.Context, log *zap.Logger, items []*T, err error) error {
	if err != nil {
		return respondError(c, log, err)
	}
	if items == nil {
		items = []*T{}
	}
	return c.JSON(http.StatusOK, items)
}
