package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestTimeout puts a deadline on every request context. Handlers and
// services observe the cancellation through c.Request.Context(); the error
// mapping in the handlers turns the resulting deadline error into a 408.
func RequestTimeout(budget time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), budget)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
