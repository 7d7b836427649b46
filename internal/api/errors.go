package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dishlet/backend/internal/service"
)

// respondError maps service sentinels onto HTTP statuses. Pipeline
// failures surface to the client unmodified so the user can retry the
// whole action.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrAuthRequired):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrGenerationInFlight):
		status = http.StatusConflict
	case errors.Is(err, service.ErrGeneration),
		errors.Is(err, service.ErrEnrichment),
		errors.Is(err, service.ErrTranslation):
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
