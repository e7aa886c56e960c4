package ecommerce_routes

import (
	store_filter "github.com/Modeva-Ecommerce/modeva-storefront/controllers/ecommerce/filter_controller"
	store_product "github.com/Modeva-Ecommerce/modeva-storefront/controllers/ecommerce/product_controller"
	"github.com/gin-gonic/gin"
)

// SetupStorefrontPages registers the server-rendered products screen.
func SetupStorefrontPages(router gin.IRouter) {
	products := router.Group(store_product.StorefrontPagePath)
	{
		products.GET("", store_product.RenderProductsPage)
		products.POST("/search", store_product.SubmitSearchForm)
		products.POST("/category", store_product.ChangeCategoryForm)
		products.POST("/rating", store_product.ChangeRatingForm)
		products.POST("/sort", store_product.ChangeSortOptionForm)
		products.POST("/clear", store_product.ClearFiltersForm)
	}
}

// SetupStorefrontRoutes registers the JSON API of the products screen.
func SetupStorefrontRoutes(router *gin.RouterGroup) {
	store := router.Group("/store")

	screen := store.Group("/screen")
	{
		screen.GET("", store_product.GetProductsScreen)
		screen.PATCH("/search-input", store_product.UpdateSearchInput)
		screen.POST("/search", store_product.SubmitSearch)
		screen.PUT("/category", store_product.ChangeCategory)
		screen.PUT("/rating", store_product.ChangeRating)
		screen.PUT("/sort", store_product.ChangeSortOption)
		screen.POST("/clear", store_product.ClearFilters)
	}

	store.GET("/filters/metadata", store_filter.GetFilterMetadata)
}
