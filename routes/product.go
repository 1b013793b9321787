package routes

import (
	"github.com/gin-gonic/gin"
	productControllers "github.com/kajanthann/E-COM-FOREVER/controllers/product"
	"github.com/kajanthann/E-COM-FOREVER/middleware"
	"github.com/kajanthann/E-COM-FOREVER/store"
)

// SetupProductRoutes registers the catalog endpoints. Browsing is public;
// catalog mutation requires an admin token.
func SetupProductRoutes(api *gin.RouterGroup, s store.Stores, uploadsDir string) {
	productGroup := api.Group("/product")
	{
		productGroup.GET("/list", productControllers.ListProducts(s.Products))
		productGroup.POST("/single", productControllers.SingleProduct(s.Products))

		productGroup.POST("/add", middleware.ValidateToken, middleware.RequireAdmin, productControllers.AddProduct(s.Products, uploadsDir))
		productGroup.POST("/remove", middleware.ValidateToken, middleware.RequireAdmin, productControllers.RemoveProduct(s.Products))
	}
}
