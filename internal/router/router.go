package router

import (
	"github.com/gin-gonic/gin"

	"quizforge/internal/config"
	"quizforge/internal/handler"
	"quizforge/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(cfg *config.Config, quizH *handler.QuizHandler, healthH *handler.HealthHandler) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health check
	r.GET("/healthz", healthH.Liveness)

	v1 := r.Group("/api/v1")

	quizzes := v1.Group("/quizzes")
	quizzes.POST("/parse", quizH.Parse)
	quizzes.POST("/export", quizH.Export)

	return r
}
