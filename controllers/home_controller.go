package controllers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// ServeHome returns the bundled single-page frontend.
func ServeHome(staticDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		content, err := os.ReadFile(filepath.Join(staticDir, "index.html"))
		if os.IsNotExist(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "index.html not found."})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error reading homepage."})
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", content)
	}
}
