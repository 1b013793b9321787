package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/kajanthann/E-COM-FOREVER/models"
	"github.com/kajanthann/E-COM-FOREVER/routes"
	"github.com/kajanthann/E-COM-FOREVER/store"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	log.Println("✅ Starting storefront API...")

	// Load environment variables
	_ = godotenv.Load()

	stores := initStores()

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve uploaded product images
	uploadsDir := os.Getenv("UPLOADS_DIR")
	if uploadsDir == "" {
		uploadsDir = "./uploads"
	}
	r.Static("/uploads", uploadsDir)

	// Setup routes
	routes.SetupRoutes(r, stores, uploadsDir)

	// Periodically repair any cart left in an inconsistent state
	go startCartSweep(stores.Users, sweepInterval())

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initStores connects to postgres when configured and falls back to the
// in-memory stores otherwise, so the server runs without a database in dev.
func initStores() store.Stores {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" && os.Getenv("DB_HOST") != "" {
		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			os.Getenv("DB_HOST"), os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"), os.Getenv("DB_PORT"),
		)
	}
	if dsn == "" {
		log.Println("⚠️ No database configured, using in-memory store")
		return store.NewMemory()
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	return store.NewGorm(db)
}

func sweepInterval() time.Duration {
	if raw := os.Getenv("CART_SWEEP_INTERVAL"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			return d
		}
		log.Printf("⚠️ Invalid CART_SWEEP_INTERVAL %q, using default", raw)
	}
	return time.Hour
}

// startCartSweep re-normalizes every stored cart on a fixed interval,
// repairing state that a crashed or partially failed mutation left behind.
func startCartSweep(users store.UserStore, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for range ticker.C {
		sweepCarts(users)
	}
}

func sweepCarts(users store.UserStore) {
	all, err := users.All()
	if err != nil {
		log.Printf("❌ Cart sweep failed to list users: %v", err)
		return
	}
	repaired := 0
	for _, user := range all {
		normalized := user.CartData.Normalize()
		if normalized.Equal(user.CartData) {
			continue
		}
		if err := users.SaveCart(user.ID, normalized); err != nil {
			log.Printf("❌ Cart sweep failed for user %s: %v", user.ID, err)
			continue
		}
		repaired++
	}
	if repaired > 0 {
		log.Printf("✅ Cart sweep repaired %d cart(s)", repaired)
	}
}
