package userControllers

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kajanthann/E-COM-FOREVER/auth"
	"github.com/kajanthann/E-COM-FOREVER/models"
	"github.com/kajanthann/E-COM-FOREVER/store"
	"golang.org/x/crypto/bcrypt"
)

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/user/register
func Register(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Enter a valid email and a password of at least 8 characters"})
			return
		}

		if _, err := users.ByEmail(input.Email); err == nil {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "User already exists"})
			return
		} else if !errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Registration failed"})
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Registration failed"})
			return
		}

		user := models.User{
			ID:        uuid.NewString(),
			Name:      input.Name,
			Email:     input.Email,
			Password:  string(hashed),
			CartData:  models.CartMap{},
			CreatedAt: time.Now(),
		}
		if err := users.Create(&user); err != nil {
			if errors.Is(err, store.ErrConflict) {
				c.JSON(http.StatusConflict, gin.H{"success": false, "message": "User already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Registration failed"})
			return
		}

		token, err := auth.CreateToken(user.ID, false)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Registration failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
	}
}

// POST /api/user/login
func Login(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email and password are required"})
			return
		}

		user, err := users.ByEmail(input.Email)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User doesn't exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Login failed"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
			return
		}

		token, err := auth.CreateToken(user.ID, user.IsAdmin)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Login failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
	}
}

// AdminLogin checks the configured admin credentials and issues a token
// carrying the admin flag. The admin identity is not a stored user.
// POST /api/user/admin
func AdminLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email and password are required"})
			return
		}

		adminEmail := os.Getenv("ADMIN_EMAIL")
		adminPassword := os.Getenv("ADMIN_PASSWORD")
		if adminEmail == "" || adminPassword == "" ||
			input.Email != adminEmail || input.Password != adminPassword {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
			return
		}

		token, err := auth.CreateToken("admin", true)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Login failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
	}
}
