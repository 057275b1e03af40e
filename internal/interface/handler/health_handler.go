package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health reports liveness and the running version
func Health(version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "version": version})
	}
}
