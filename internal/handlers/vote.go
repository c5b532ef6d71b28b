package handlers

import (
	"errors"
	"net/http"

	"github.com/hackclub/buildboard-backend/internal/services"
	"github.com/hackclub/buildboard-backend/internal/ws"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct {
	voteService *services.VoteService
	hub         *ws.Hub
}

func NewVoteHandler(voteService *services.VoteService, hub *ws.Hub) *VoteHandler {
	return &VoteHandler{voteService: voteService, hub: hub}
}

type VoteCountResponse struct {
	ProjectID string `json:"project_id"`
	Votes     int64  `json:"votes"`
}

// CastVote godoc
// @Summary      Vote for a project
// @Description  One vote per voter per project; self-votes rejected
// @Tags         votes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Project ID"
// @Success      201 {object} models.Vote
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/projects/{id}/votes [post]
func (h *VoteHandler) CastVote(c *gin.Context) {
	voterID := c.GetString("user_id")

	vote, err := h.voteService.Cast(c.Param("id"), voterID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	h.hub.Broadcast(ws.Event{Type: ws.EventVoteCast, Data: vote})

	c.JSON(http.StatusCreated, vote)
}

// CountVotes godoc
// @Summary      Count a project's votes
// @Tags         votes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Project ID"
// @Success      200 {object} VoteCountResponse
// @Router       /api/v1/projects/{id}/votes [get]
func (h *VoteHandler) CountVotes(c *gin.Context) {
	projectID := c.Param("id")

	count, err := h.voteService.CountByProject(projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, VoteCountResponse{ProjectID: projectID, Votes: count})
}
