package http

import (
	"github.com/gin-gonic/gin"

	"github.com/planfit/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes, rate limited per client IP
	v1 := router.Group("/api/v1")
	v1.Use(RateLimitMiddleware(cfg.RateLimit.PerIP, cfg.RateLimit.Burst))
	{
		calculations := v1.Group("/calculations")
		{
			calculations.POST("/tdee", handler.CalculateTDEE)
			calculations.POST("/convert/weight", handler.ConvertWeight)
			calculations.POST("/convert/height", handler.ConvertHeight)
		}

		plans := v1.Group("/plans")
		{
			plans.POST("/meal", handler.GenerateMealPlan)
			plans.POST("/workout", handler.GenerateWorkoutPlan)
		}

		catalog := v1.Group("/catalog")
		{
			catalog.GET("/foods", handler.ListFoods)
			catalog.GET("/exercises", handler.ListExercises)
		}

		profiles := v1.Group("/profiles")
		{
			profiles.GET("/:id", handler.GetProfile)
			profiles.PUT("/:id", handler.PutProfile)
		}
	}

	return router
}
