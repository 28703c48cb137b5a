//go:build embed

package main

import (
	"embed"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed web/dist
var webDist embed.FS

// setupStaticFiles serves the embedded frontend build. Unknown paths
// fall through to index.html for client-side routing; the fallback
// house image lives under /static/images/.
func setupStaticFiles(router *gin.Engine, logger *slog.Logger) {
	logger.Info("using embedded frontend assets")

	distFS, err := fs.Sub(webDist, "web/dist")
	if err != nil {
		logger.Error("embedded assets missing dist directory", "error", err)
		return
	}

	fileServer := http.FileServer(http.FS(distFS))

	router.NoRoute(func(c *gin.Context) {
		urlPath := c.Request.URL.Path
		if len(urlPath) >= 4 && urlPath[:4] == "/api" {
			c.JSON(http.StatusNotFound, gin.H{"error": "API endpoint not found"})
			return
		}

		if _, err := fs.Stat(distFS, urlPath[1:]); err == nil && urlPath != "/" {
			fileServer.ServeHTTP(c.Writer, c.Request)
			return
		}

		// SPA fallback
		index, err := fs.ReadFile(distFS, "index.html")
		if err != nil {
			c.String(http.StatusNotFound, "404 page not found")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", index)
	})
}
