package handlers

import (
	"errors"
	"net/http"

	"github.com/bhosaleparag/tution-platform-sub000/internal/models"
	"github.com/bhosaleparag/tution-platform-sub000/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Identity arrives from the gateway as headers; the engine trusts them.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserName = "X-User-Name"
)

// RequireUser rejects requests without a gateway-provided user id.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader(HeaderUserID) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "authentication required",
				"code":  "MISSING_USER_ID",
			})
			return
		}
		c.Next()
	}
}

// respondError maps the engine's error taxonomy onto HTTP statuses. Store
// failures pass through as 500 with the detail kept in the log, not the body.
func respondError(c *gin.Context, err error) {
	var vErr *models.ValidationError
	switch {
	case errors.Is(err, models.ErrQuizNotFound), errors.Is(err, models.ErrAttemptNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrAttemptCompleted),
		errors.Is(err, models.ErrRetakeNotAllowed),
		errors.Is(err, models.ErrQuizLocked):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrQuizNotPublished):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Log.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error, try again"})
	}
}
