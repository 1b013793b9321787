package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/kajanthann/E-COM-FOREVER/controllers/cart"
	"github.com/kajanthann/E-COM-FOREVER/middleware"
	"github.com/kajanthann/E-COM-FOREVER/store"
)

// SetupCartRoutes registers the cart endpoints. All of them require a
// bearer token.
func SetupCartRoutes(api *gin.RouterGroup, s store.Stores) {
	cartGroup := api.Group("/cart")
	cartGroup.Use(middleware.ValidateToken)
	{
		cartGroup.GET("/get", cartControllers.GetCart(s.Users))
		cartGroup.POST("/add", cartControllers.AddToCart(s.Users))
		cartGroup.POST("/update", cartControllers.UpdateCart(s.Users))
	}
}
