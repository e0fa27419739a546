package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nshubina/airport-api/internal/domain"
)

// handleServiceError maps domain errors to HTTP statuses in one place.
func handleServiceError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": verr.Fields})
		return
	}

	switch {
	case errors.Is(err, domain.ErrSeatTaken):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "details": gin.H{"seat": "already taken for this flight"}})
	case errors.Is(err, domain.ErrEmailTaken), errors.Is(err, domain.ErrNameTaken):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrUpstreamTimeout):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "upstream service timeout"})
	case errors.Is(err, domain.ErrUpstream):
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream service error"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
