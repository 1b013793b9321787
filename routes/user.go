package routes

import (
	"github.com/gin-gonic/gin"
	userControllers "github.com/kajanthann/E-COM-FOREVER/controllers/user"
	"github.com/kajanthann/E-COM-FOREVER/store"
)

// SetupUserRoutes registers the public identity endpoints.
func SetupUserRoutes(api *gin.RouterGroup, s store.Stores) {
	userGroup := api.Group("/user")
	{
		userGroup.POST("/register", userControllers.Register(s.Users))
		userGroup.POST("/login", userControllers.Login(s.Users))
		userGroup.POST("/admin", userControllers.AdminLogin())
	}
}
