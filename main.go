package main

import (
	"log"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/threadlab/threadlab-backend-go/config"
	"github.com/threadlab/threadlab-backend-go/database"
	"github.com/threadlab/threadlab-backend-go/handlers"
	customMiddleware "github.com/threadlab/threadlab-backend-go/middleware"
	"github.com/threadlab/threadlab-backend-go/routes"
	"github.com/threadlab/threadlab-backend-go/store"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	// Initialize Echo
	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(customMiddleware.Metrics())

	// Pick the store backend: MongoDB when configured, otherwise the
	// seeded in-memory catalog.
	var stores *store.Stores
	if os.Getenv("MONGODB_URI") != "" {
		db, err := database.Connect()
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}
		stores = store.NewMongoStores(db)
	} else {
		log.Println("MONGODB_URI not set, using in-memory stores")
		stores = store.NewMemoryStores()
	}

	// Setup routes
	routes.SetupRoutes(e, handlers.New(stores))

	// Start the server
	port := config.GetEnv("PORT", "3000")
	e.Logger.Fatal(e.Start(":" + port))
}
