package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/kajanthann/E-COM-FOREVER/controllers/order"
	"github.com/kajanthann/E-COM-FOREVER/middleware"
	"github.com/kajanthann/E-COM-FOREVER/store"
)

// SetupOrderRoutes registers the order endpoints: placement and own-order
// listing for users, global listing, status updates, the live feed, and
// the Excel export for admins.
func SetupOrderRoutes(api *gin.RouterGroup, s store.Stores) {
	orderGroup := api.Group("/order")
	{
		orderGroup.POST("/place-order", middleware.ValidateToken, orderControllers.PlaceOrder(s.Users, s.Products, s.Orders))
		orderGroup.GET("/user-orders", middleware.ValidateToken, orderControllers.UserOrders(s.Orders))

		orderGroup.GET("/orders", middleware.ValidateToken, middleware.RequireAdmin, orderControllers.AllOrders(s.Orders))
		orderGroup.POST("/update-status", middleware.ValidateToken, middleware.RequireAdmin, orderControllers.UpdateStatus(s.Orders))
		orderGroup.GET("/export", middleware.ValidateToken, middleware.RequireAdmin, orderControllers.ExportOrdersToExcel(s.Orders))

		// websocket endpoint for the admin dashboard's live order feed
		orderGroup.GET("/ws", orderControllers.OrderFeed)
	}
}
