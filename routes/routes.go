package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kajanthann/E-COM-FOREVER/store"
)

// SetupRoutes is the single entry point that wires up the user, product,
// cart, and order route groups under /api.
func SetupRoutes(r *gin.Engine, s store.Stores, uploadsDir string) {
	api := r.Group("/api")

	SetupUserRoutes(api, s)
	SetupProductRoutes(api, s, uploadsDir)
	SetupCartRoutes(api, s)
	SetupOrderRoutes(api, s)
}
