package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/airlink/internal/domain"
	"github.com/Domenick1991/airlink/internal/service/auth"
	"github.com/gin-gonic/gin"
)

// writeError maps the domain error taxonomy onto HTTP statuses. Validation
// failures render as the field→message map so callers see exactly which
// field broke which rule.
func writeError(c *gin.Context, err error) {
	if verr, ok := domain.IsValidation(err); ok {
		c.JSON(http.StatusBadRequest, verr.Fields)
		return
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
