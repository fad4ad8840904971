package main

import (
	"log"
	"os"

	"github.com/abirmehmed/Mini-E-Commerce-API-Frontend/internal/cart"
	"github.com/abirmehmed/Mini-E-Commerce-API-Frontend/internal/database"
	"github.com/abirmehmed/Mini-E-Commerce-API-Frontend/internal/handlers"
	"github.com/abirmehmed/Mini-E-Commerce-API-Frontend/internal/routes"
	"github.com/joho/godotenv"
)

func main() {
	// --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	// --- Database Connection ---
	db, err := database.OpenDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// --- Redis (rate limiter); nil when unavailable ---
	rdb := database.OpenRedis()

	// --- Application Setup ---
	app := &handlers.Handlers{
		DB:    db,
		Carts: cart.NewStore(),
	}

	// --- Router Setup ---
	router := routes.SetupRouter(app, rdb)

	// --- Start Server ---
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting Mini E-Commerce API server on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
