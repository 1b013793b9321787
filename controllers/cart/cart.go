package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kajanthann/E-COM-FOREVER/store"
)

type AddToCartInput struct {
	ItemID string `json:"itemId" binding:"required"`
	Size   string `json:"size" binding:"required"`
}

type UpdateCartInput struct {
	ItemID string `json:"itemId" binding:"required"`
	Size   string `json:"size" binding:"required"`
	// Pointer so an explicit zero, meaning "remove", still binds.
	Quantity *int `json:"quantity" binding:"required"`
}

// Every mutation below is a full read-modify-write of the user's cart map:
// load the persisted map, apply one operation, normalize, store the whole
// result. Concurrent requests for the same user may race and the last
// writer wins; the cart is low-stakes and both outcomes are valid carts.

// POST /api/cart/add
func AddToCart(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input AddToCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Product ID and size are required"})
			return
		}

		user, err := users.ByID(userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to add product to cart"})
			return
		}

		cart, err := user.CartData.Increment(input.ItemID, input.Size)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Product ID and size are required"})
			return
		}

		if err := users.SaveCart(userID, cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to add product to cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"message":  "Product added to cart successfully",
			"cartData": cart,
		})
	}
}

// POST /api/cart/update
func UpdateCart(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input UpdateCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Product ID, size, and quantity are required"})
			return
		}

		user, err := users.ByID(userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update cart"})
			return
		}

		cart, err := user.CartData.SetQuantity(input.ItemID, input.Size, *input.Quantity)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Product ID, size, and quantity are required"})
			return
		}

		if err := users.SaveCart(userID, cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"message":  "Cart updated successfully",
			"cartData": cart,
		})
	}
}

// GET /api/cart/get
func GetCart(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		user, err := users.ByID(userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch cart data"})
			return
		}

		// Self-heal: if normalization changed the stored value, persist the
		// cleaned map before replying so inconsistent state never survives
		// a read.
		cart := user.CartData.Normalize()
		if !cart.Equal(user.CartData) {
			if err := users.SaveCart(userID, cart); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch cart data"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "cartData": cart})
	}
}
