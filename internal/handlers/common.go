package handlers

import (
	"errors"
	"net/http"

	"github.com/hackclub/buildboard-backend/internal/models"
	"github.com/hackclub/buildboard-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type ConflictResponse struct {
	Error     string   `json:"error"`
	Conflicts []string `json:"conflicts"`
}

type InvalidReferenceResponse struct {
	Error   string   `json:"error"`
	Missing []string `json:"missing"`
}

// Type aliases so swag can resolve models in annotations.
type Project = models.Project
type User = models.User
type Review = models.Review
type HackatimeProject = models.HackatimeProject
type VisibilityStatus = services.VisibilityStatus

// writeServiceError maps the service error taxonomy onto HTTP statuses.
// Conflict and invalid-reference errors carry their full name lists so the
// UI can show the user every blocked name at once.
func writeServiceError(c *gin.Context, err error) {
	var conflict *services.ConflictError
	var invalid *services.InvalidReferenceError

	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "you can only modify your own projects"})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, ConflictResponse{Error: conflict.Error(), Conflicts: conflict.Names})
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, InvalidReferenceResponse{Error: invalid.Error(), Missing: invalid.Names})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}
