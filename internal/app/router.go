package app

import (
	"leaderboard_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	router.GET("/leaderboard", c.leaderboard.GetLeaderboard)
	router.POST("/leaderboard", c.leaderboard.SubmitScore)

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)
	}
}
