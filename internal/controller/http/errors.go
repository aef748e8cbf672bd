package http

import (
	"errors"
	"net/http"

	"vocal-feed/internal/entity"
	"vocal-feed/pkg/logger"

	"github.com/gin-gonic/gin"
)

// respondError maps domain errors onto status codes. Anything unexpected is
// logged and reported as a generic 500.
func respondError(c *gin.Context, log *logger.Logger, err error, fallback string) {
	var verr *entity.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": verr.Fields})
	case errors.Is(err, entity.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, entity.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Already exists"})
	case errors.Is(err, entity.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	default:
		log.Error("%s: %v", fallback, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
