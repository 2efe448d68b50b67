package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"newsgrove/internal/db"
	"newsgrove/internal/middleware"
	"newsgrove/internal/router"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	// Initialize Database
	db.Init()

	// Initialize Gin
	r := gin.Default()

	// Middleware
	r.Use(middleware.CORS())
	r.Use(middleware.RequestTimeout(requestBudget()))

	router.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("newsgrove API starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

// requestBudget returns the end-to-end per-request deadline, in seconds via
// REQUEST_TIMEOUT, defaulting to 10.
func requestBudget() time.Duration {
	if raw := os.Getenv("REQUEST_TIMEOUT"); raw != "" {
		if seconds, err := strconv.Atoi(raw); err == nil && seconds > 0 {
			return time.Duration(seconds) * time.Second
		}
	}
	return 10 * time.Second
}
