package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/taejinchoi-cbnu/gradescan-backend/internal/config"
	"github.com/taejinchoi-cbnu/gradescan-backend/internal/handler"
	"github.com/taejinchoi-cbnu/gradescan-backend/internal/middleware"
	"github.com/taejinchoi-cbnu/gradescan-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Analysis    *handler.AnalysisHandler
	Requirement *handler.RequirementHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// ─── 1. Requirements (Public, read-only table) ─────────────────────
	requirements := router.Group("/api/v1/requirements")
	{
		requirements.GET("", handlers.Requirement.GetRequirement)
		requirements.GET("/all", handlers.Requirement.ListRequirements)
	}

	// The analyze route fronts a metered vision API: rate-limit it per IP
	// on top of requiring a token from the auth service.
	analyzeLimiter := middleware.NewRateLimiter(10, time.Minute)

	// ─── 2. Grades (JWT) ───────────────────────────────────────────────
	grades := router.Group("/api/v1/grades")
	grades.Use(middleware.RequireJWT(cfg))
	{
		grades.POST("/analyze", analyzeLimiter.Middleware(), handlers.Analysis.AnalyzeTranscript)
		grades.POST("/progress", handlers.Analysis.ComputeProgress)
	}

	return router
}
