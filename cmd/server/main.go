package main

import (
	"fmt"
	"log"
	"os"

	"github.com/planfit/backend/config"
	httpDelivery "github.com/planfit/backend/internal/delivery/http"
	"github.com/planfit/backend/internal/infrastructure/cache"
	"github.com/planfit/backend/internal/infrastructure/store"
	"github.com/planfit/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting PlanFit Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Database: %s", cfg.Database.Path)

	// Apply pending schema migrations before opening the pool
	if err := store.RunMigrations(cfg.Database.Path, cfg.Database.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	db, err := store.New(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	memoryCache := cache.NewMemoryCache()
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	// Initialize usecase layer
	calculator := usecase.NewCalculatorService()
	mealPlanner := usecase.NewMealPlanService()
	workoutPlanner := usecase.NewWorkoutPlanService()
	catalog := usecase.NewCatalogService(db, db, memoryCache, usecase.CatalogServiceConfig{
		CacheTTL: cfg.Cache.TTL,
	})

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(calculator, mealPlanner, workoutPlanner, catalog, db)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
