package productControllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kajanthann/E-COM-FOREVER/models"
	"github.com/kajanthann/E-COM-FOREVER/store"
)

type RemoveProductInput struct {
	ID string `json:"id" binding:"required"`
}

// AddProduct creates a catalog entry from a multipart form with up to four
// images, saved under uploadsDir and served back as /uploads URLs.
// POST /api/product/add (admin)
func AddProduct(products store.ProductStore, uploadsDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		priceStr := c.PostForm("price")
		if name == "" || priceStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "name and price are required"})
			return
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid price"})
			return
		}

		var sizes models.StringList
		if sizesStr := c.PostForm("sizes"); sizesStr != "" {
			if err := json.Unmarshal([]byte(sizesStr), &sizes); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid sizes format"})
				return
			}
		}

		saveDir := filepath.Join(uploadsDir, "products")
		if err := os.MkdirAll(saveDir, 0755); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create upload folder"})
			return
		}

		var images models.StringList
		for _, field := range []string{"image1", "image2", "image3", "image4"} {
			file, err := c.FormFile(field)
			if err != nil {
				continue
			}
			filename := uuid.NewString() + "_" + strings.ReplaceAll(filepath.Base(file.Filename), " ", "_")
			if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": fmt.Sprintf("Failed to save image: %v", err)})
				return
			}
			images = append(images, "/uploads/products/"+filename)
		}

		product := models.Product{
			ID:          uuid.NewString(),
			Name:        name,
			Description: c.PostForm("description"),
			Price:       price,
			Images:      images,
			Category:    c.PostForm("category"),
			SubCategory: c.PostForm("subCategory"),
			Sizes:       sizes,
			Bestseller:  c.PostForm("bestseller") == "true",
			CreatedAt:   time.Now(),
		}

		if err := products.Create(&product); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Product added successfully", "product": product})
	}
}

// POST /api/product/remove (admin)
func RemoveProduct(products store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RemoveProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Product ID is required"})
			return
		}

		if err := products.Delete(input.ID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to remove product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product removed successfully"})
	}
}
