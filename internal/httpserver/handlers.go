package httpserver

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"wahibashop/internal/domain"
)

type handlers struct {
	deps   Deps
	logger *log.Logger
}

// writeError maps domain errors to HTTP responses. Store failures get
// a 503 with retryable set so clients keep their local state and offer
// a retry.
func writeError(c *gin.Context, err error) {
	var pe *domain.PersistenceError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
	case errors.As(err, &pe):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error(), "retryable": true})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

// sessionID extracts the cart session token. Every cart belongs to
// exactly one session; there is no cross-session sharing.
func sessionID(c *gin.Context) (string, bool) {
	id := c.GetHeader("X-Session-ID")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-Session-ID header required"})
		return "", false
	}
	return id, true
}
