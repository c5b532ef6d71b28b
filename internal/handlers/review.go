package handlers

import (
	"errors"
	"net/http"

	"github.com/hackclub/buildboard-backend/internal/services"
	"github.com/hackclub/buildboard-backend/internal/ws"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
	hub           *ws.Hub
}

func NewReviewHandler(reviewService *services.ReviewService, hub *ws.Hub) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService, hub: hub}
}

type CreateReviewRequest struct {
	Comments string `json:"comments" binding:"required,min=1"`
	Decision string `json:"decision" binding:"required" example:"approved"`
}

// CreateReview godoc
// @Summary      Post a review for a project
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Project ID"
// @Param        request body CreateReviewRequest true "Review data"
// @Success      201 {object} Review
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/projects/{id}/reviews [post]
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	reviewerID := c.GetString("user_id")

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	review, err := h.reviewService.Create(c.Param("id"), reviewerID, req.Comments, req.Decision)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	h.hub.Broadcast(ws.Event{Type: ws.EventReviewPosted, Data: review})

	c.JSON(http.StatusCreated, review)
}

// ListReviews godoc
// @Summary      List a project's reviews
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Project ID"
// @Success      200 {array} Review
// @Router       /api/v1/projects/{id}/reviews [get]
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	reviews, err := h.reviewService.ListByProject(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, reviews)
}
