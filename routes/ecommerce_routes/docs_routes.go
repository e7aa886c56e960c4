package ecommerce_routes

import (
	_ "github.com/Modeva-Ecommerce/modeva-storefront/docs"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupDocsRoutes serves the Swagger UI and doc.json of the JSON API.
func SetupDocsRoutes(router gin.IRouter) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
