package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pustaka-app/backend/internal/model"
)

// Health check endpoint.
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// Root endpoint.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Pustaka API server is running",
	})
}

// ClientConfig exposes the values the web client needs at boot.
func ClientConfig(baseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, model.ClientConfigResponse{BaseURL: baseURL})
	}
}
