package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "ok": true})
}

// Banner answers the API root so the frontend can check it reaches the
// backend.
func Banner(version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Pest Control API",
			"version": version,
		})
	}
}
