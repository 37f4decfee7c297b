package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/assaylab/assay/pkg/services"
)

// respondServiceError maps service-layer errors to HTTP responses. Handlers
// call it for any error coming out of the service layer.
func respondServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validErr.Error()})
		return
	}

	var precond *services.PreconditionError
	if errors.As(err, &precond) {
		c.JSON(http.StatusPreconditionFailed, gin.H{
			"error":                "precondition failed",
			"missing":              precond.Missing,
			"project_id":           precond.ProjectID,
			"existing_project_ids": precond.ExistingProjectIDs,
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
	case errors.Is(err, services.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "resource already exists"})
	case errors.Is(err, services.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		slog.Error("Unexpected service error", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
