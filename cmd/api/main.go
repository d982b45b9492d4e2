package main

import (
	"log"
	"time"

	"formularios-backend/internal/config"
	"formularios-backend/internal/infrastructure/database"
	"formularios-backend/internal/interfaces/http/middleware"
	"formularios-backend/internal/interfaces/http/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Error loading config: %v", err)
	}

	// Initialize database
	db, err := database.SetupDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Error setting up database: %v", err)
	}

	app := fiber.New(fiber.Config{
		BodyLimit:    10 * 1024 * 1024, // 10MB
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	})

	// Setup middleware
	middleware.SetupMiddlewares(app)

	// Setup routes
	routes.SetupRoutes(app, db)

	// Start server
	log.Printf("🚀 Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
