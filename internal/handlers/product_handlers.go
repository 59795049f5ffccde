package handlers

import (
	"strconv"

	"storeadmin/internal/common"
	"storeadmin/internal/models"
	"storeadmin/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ProductHandlers handles product-related HTTP requests
type ProductHandlers struct {
	resourceHandlers[models.Product, models.ProductInput]
	svc services.ProductService
}

func NewProductHandlers(svc services.ProductService, logger *zap.Logger) *ProductHandlers {
	return &ProductHandlers{resourceHandlers: newResourceHandlers[models.Product, models.ProductInput](svc, logger), svc: svc}
}

// CreateProduct godoc
// @Summary  Create a product with its images
// @Tags     products
// @Accept   json
// @Produce  json
// @Param    storeId path string true "Store ID"
// @Param    body body models.ProductInput true "Product"
// @Success  200 {object} models.Product
// @Router   /{storeId}/products [post]
func (h *ProductHandlers) CreateProduct(c echo.Context) error { return h.create(c) }

// UpdateProduct godoc
// @Summary  Update a product, replacing its image set
// @Tags     products
// @Param    storeId path string true "Store ID"
// @Param    id path string true "Product ID"
// @Param    body body models.ProductInput true "Product"
// @Success  200 {object} models.Product
// @Router   /{storeId}/products/{id} [patch]
func (h *ProductHandlers) UpdateProduct(c echo.Context) error { return h.update(c) }

// DeleteProduct godoc
// @Summary  Delete a product and its images
// @Tags     products
// @Param    storeId path string true "Store ID"
// @Param    id path string true "Product ID"
// @Success  200 {object} DeleteResponse
// @Router   /{storeId}/products/{id} [delete]
func (h *ProductHandlers) DeleteProduct(c echo.Context) error { return h.delete(c) }

// GetProduct godoc
// @Summary  Get a product with images, category, color and size, or null
// @Tags     products
// @Param    id path string true "Product ID"
// @Success  200 {object} models.Product
// @Router   /products/{id} [get]
func (h *ProductHandlers) GetProduct(c echo.Context) error { return h.get(c) }

func (h *ProductHandlers) GetProductInStore(c echo.Context) error { return h.getInStore(c) }

// ListProducts godoc
// @Summary  List a store's unarchived products
// @Tags     products
// @Param    storeId path string true "Store ID"
// @Param    categoryId query string false "Category filter"
// @Param    colorId query string false "Color filter"
// @Param    sizeId query string false "Size filter"
// @Param    isFeatured query bool false "Featured filter"
// @Param    limit query int false "Page size"
// @Param    offset query int false "Page offset"
// @Success  200 {array} models.Product
// @Router   /{storeId}/products [get]
func (h *ProductHandlers) ListProducts(c echo.Context) error {
	filter, err := productFilterFrom(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	products, err := h.svc.ListPublic(c.Request().Context(), c.Param("storeId"), filter)
	return listed(c, h.logger, products, err)
}

func productFilterFrom(c echo.Context) (models.ProductFilter, error) {
	var filter models.ProductFilter
	err := echo.QueryParamsBinder(c).
		String("categoryId", &filter.CategoryID).
		String("colorId", &filter.ColorID).
		String("sizeId", &filter.SizeID).
		Int("limit", &filter.Limit).
		Int("offset", &filter.Offset).
		BindError()
	if err != nil {
		return filter, common.NewValidationError("query", "limit and offset must be integers")
	}

	if raw := c.QueryParam("isFeatured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, common.NewValidationError("isFeatured", "must be true or false")
		}
		filter.IsFeatured = &featured
	}
	return filter, nil
}
