package handlers

import (
	"storeadmin/internal/middleware"

	"github.com/labstack/echo/v4"
)

// Handlers is everything the router mounts.
type Handlers struct {
	Identity   middleware.IdentityProvider
	Stores     *StoreHandlers
	Billboards *BillboardHandlers
	Categories *CategoryHandlers
	Colors     *ColorHandlers
	Sizes      *SizeHandlers
	Products   *ProductHandlers
	AuditLogs  *AuditLogsHandlers
	Exports    *ExportHandlers
	Health     *HealthHandlers
}

// Register mounts the API. Identity is resolved for every catalog route but never
// required by the router: each operation decides whether an anonymous caller may proceed,
// so public reads answer identically with or without credentials.
func Register(e *echo.Echo, h Handlers) {
	if h.Health != nil {
		e.GET("/health", h.Health.LivenessCheck)
		e.GET("/health/ready", h.Health.ReadinessCheck)
	}

	api := e.Group("", middleware.Identity(h.Identity))

	api.POST("/stores", h.Stores.CreateStore)
	api.GET("/stores", h.Stores.ListStores)
	api.GET("/stores/:storeId", h.Stores.GetStore)
	api.PATCH("/stores/:storeId", h.Stores.UpdateStore)
	api.DELETE("/stores/:storeId", h.Stores.DeleteStore)
	api.GET("/stores/:storeId/audit-logs", h.AuditLogs.ListAuditLogs)
	api.POST("/stores/:storeId/exports", h.Exports.CreateExport)

	api.GET("/billboards/:id", h.Billboards.GetBillboard)
	api.GET("/:storeId/billboards", h.Billboards.ListBillboards)
	api.GET("/:storeId/billboards/:id", h.Billboards.GetBillboardInStore)
	api.POST("/:storeId/billboards", h.Billboards.CreateBillboard)
	api.PATCH("/:storeId/billboards/:id", h.Billboards.UpdateBillboard)
	api.DELETE("/:storeId/billboards/:id", h.Billboards.DeleteBillboard)

	api.GET("/categories/:id", h.Categories.GetCategory)
	api.GET("/:storeId/categories", h.Categories.ListCategories)
	api.GET("/:storeId/categories/:id", h.Categories.GetCategoryInStore)
	api.POST("/:storeId/categories", h.Categories.CreateCategory)
	api.PATCH("/:storeId/categories/:id", h.Categories.UpdateCategory)
	api.DELETE("/:storeId/categories/:id", h.Categories.DeleteCategory)

	api.GET("/colors/:id", h.Colors.GetColor)
	api.GET("/:storeId/colors", h.Colors.ListColors)
	api.GET("/:storeId/colors/:id", h.Colors.GetColorInStore)
	api.POST("/:storeId/colors", h.Colors.CreateColor)
	api.PATCH("/:storeId/colors/:id", h.Colors.UpdateColor)
	api.DELETE("/:storeId/colors/:id", h.Colors.DeleteColor)

	api.GET("/sizes/:id", h.Sizes.GetSize)
	api.GET("/:storeId/sizes", h.Sizes.ListSizes)
	api.GET("/:storeId/sizes/:id", h.Sizes.GetSizeInStore)
	api.POST("/:storeId/sizes", h.Sizes.CreateSize)
	api.PATCH("/:storeId/sizes/:id", h.Sizes.UpdateSize)
	api.DELETE("/:storeId/sizes/:id", h.Sizes.DeleteSize)

	api.GET("/products/:id", h.Products.GetProduct)
	api.GET("/:storeId/products", h.Products.ListProducts)
	api.GET("/:storeId/products/:id", h.Products.GetProductInStore)
	api.POST("/:storeId/products", h.Products.CreateProduct)
	api.PATCH("/:storeId/products/:id", h.Products.UpdateProduct)
	api.DELETE("/:storeId/products/:id", h.Products.DeleteProduct)

	api.OPTIONS("/:storeId/checkout", CheckoutPreflight)
}
