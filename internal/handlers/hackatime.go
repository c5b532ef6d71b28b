package handlers

import (
	"net/http"

	"github.com/hackclub/buildboard-backend/internal/hackatime"
	"github.com/hackclub/buildboard-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type HackatimeHandler struct {
	hackatimeService *services.HackatimeService
	userService      *services.UserService
	syncManager      *hackatime.SyncManager
}

func NewHackatimeHandler(
	hackatimeService *services.HackatimeService,
	userService *services.UserService,
	syncManager *hackatime.SyncManager,
) *HackatimeHandler {
	return &HackatimeHandler{
		hackatimeService: hackatimeService,
		userService:      userService,
		syncManager:      syncManager,
	}
}

type SetLinksRequest struct {
	Names []string `json:"names"`
}

// SetProjectLinks godoc
// @Summary      Replace a project's hackatime links
// @Description  Replace the full set of hackatime project names linked to this project and recompute hours. An empty list unlinks everything.
// @Tags         hackatime
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Project ID"
// @Param        request body SetLinksRequest true "Hackatime project names"
// @Success      200 {object} Project
// @Failure      400 {object} InvalidReferenceResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ConflictResponse
// @Router       /api/v1/projects/{id}/hackatime [put]
func (h *HackatimeHandler) SetProjectLinks(c *gin.Context) {
	userID := c.GetString("user_id")

	var req SetLinksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	project, err := h.hackatimeService.SetProjectLinks(c.Param("id"), userID, req.Names)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// GetProjectLinks godoc
// @Summary      List a project's linked hackatime projects
// @Tags         hackatime
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Project ID"
// @Success      200 {array} HackatimeProject
// @Router       /api/v1/projects/{id}/hackatime [get]
func (h *HackatimeHandler) GetProjectLinks(c *gin.Context) {
	userID := c.GetString("user_id")

	linked, err := h.hackatimeService.LinkedProjects(userID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, linked)
}

// GetUnlinked godoc
// @Summary      List the caller's unlinked hackatime projects
// @Tags         hackatime
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} HackatimeProject
// @Router       /api/v1/hackatime/unlinked [get]
func (h *HackatimeHandler) GetUnlinked(c *gin.Context) {
	userID := c.GetString("user_id")

	unlinked, err := h.hackatimeService.UnlinkedProjects(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, unlinked)
}

// Refresh godoc
// @Summary      Refresh the caller's hackatime stats
// @Description  Pull current project stats from the Hackatime API and upsert the local catalog
// @Tags         hackatime
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} HackatimeProject
// @Failure      400 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /api/v1/hackatime/refresh [post]
func (h *HackatimeHandler) Refresh(c *gin.Context) {
	userID := c.GetString("user_id")

	if h.syncManager == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "hackatime sync is not configured"})
		return
	}

	user, err := h.userService.GetByID(userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if user.SlackID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "a slack ID is required to fetch hackatime stats"})
		return
	}

	projects, err := h.syncManager.RefreshUser(user.ID, user.SlackID)
	if err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, projects)
}

// SyncRefreshUser godoc
// @Summary      Refresh one user's hackatime stats (sync jobs)
// @Description  Internal surface for ops tooling; authorized by the sync API key
// @Tags         hackatime
// @Produce      json
// @Param        user_id path string true "User ID"
// @Success      200 {array} HackatimeProject
// @Failure      404 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /api/v1/sync/hackatime/{user_id} [post]
func (h *HackatimeHandler) SyncRefreshUser(c *gin.Context) {
	if h.syncManager == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "hackatime sync is not configured"})
		return
	}

	user, err := h.userService.GetByID(c.Param("user_id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if user.SlackID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "user has no slack ID"})
		return
	}

	projects, err := h.syncManager.RefreshUser(user.ID, user.SlackID)
	if err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, projects)
}
