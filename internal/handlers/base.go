package handlers

import (
	"context"
	"errors"
	"net/http"

	"newsgrove/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// JSONError writes the shared error body shape.
func JSONError(c *gin.Context, code int, detail string) {
	c.JSON(code, gin.H{"detail": detail})
}

// RespondServiceError translates pipeline errors into HTTP statuses. Timeout
// is reported separately from an unavailable upstream.
func RespondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEmptyQuery):
		JSONError(c, http.StatusBadRequest, "query must not be empty")
	case errors.Is(err, services.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		JSONError(c, http.StatusRequestTimeout, "Request timeout")
	case errors.Is(err, services.ErrUpstreamUnavailable):
		JSONError(c, http.StatusBadGateway, "similarity provider unavailable")
	case errors.Is(err, gorm.ErrRecordNotFound):
		JSONError(c, http.StatusNotFound, "not found")
	default:
		JSONError(c, http.StatusInternalServerError, "internal error")
	}
}
