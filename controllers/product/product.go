package productControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kajanthann/E-COM-FOREVER/models"
	"github.com/kajanthann/E-COM-FOREVER/store"
)

type SingleProductInput struct {
	ProductID string `json:"productId" binding:"required"`
}

// GET /api/product/list
func ListProducts(products store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := products.All()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch products"})
			return
		}
		if list == nil {
			list = []models.Product{}
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "products": list})
	}
}

// POST /api/product/single
func SingleProduct(products store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SingleProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Product ID is required"})
			return
		}

		product, err := products.ByID(input.ProductID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
	}
}
