package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// Timeout bounds the request context. Handlers that pass c.Request.Context()
// to upstream calls stop waiting once d elapses.
//
// Parameters:
//   - d (time.Duration): Maximum time a request may spend in the handlers.
//
// Returns:
//   - gin.HandlerFunc: the middleware function.
//
// Example:
//
//	router.Use(middleware.Timeout(30 * time.Second))
func Timeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
