//go:build !embed

package main

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// setupStaticFiles serves frontend assets from the local filesystem
// during development; the production build embeds them (see embed.go)
func setupStaticFiles(router *gin.Engine, logger *slog.Logger) {
	logger.Info("using local filesystem for frontend assets (development mode)")

	router.Static("/static", "./web/static")

	router.NoRoute(func(c *gin.Context) {
		if len(c.Request.URL.Path) >= 4 && c.Request.URL.Path[:4] == "/api" {
			c.JSON(http.StatusNotFound, gin.H{"error": "API endpoint not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "Frontend is running separately",
			"dev_url": "http://localhost:3000",
		})
	})
}
