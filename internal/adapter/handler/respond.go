package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/secuaas/NetSentinel/internal/core/domain"
)

// writeError maps a service error onto the HTTP response: validation
// failures are 400, missing rows 404, uniqueness conflicts 409, anything
// else a logged 500. Store-level failures are never retried here; retry
// policy belongs to the caller's transport.
func writeError(c *gin.Context, err error, resource string) {
	var verr *domain.ValidationError

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": resource + " not found"})
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.Printf("Request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
