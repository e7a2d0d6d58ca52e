// Package middleware provides HTTP middleware for the portfolio API.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Cors allows the external frontend to call the public API from any origin.
// Mutating endpoints stay protected by bearer tokens, not by origin checks.
func Cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
