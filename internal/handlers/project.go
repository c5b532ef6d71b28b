package handlers

import (
	"net/http"
	"strconv"

	"github.com/hackclub/buildboard-backend/internal/services"
	"github.com/hackclub/buildboard-backend/internal/ws"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projectService    *services.ProjectService
	visibilityService *services.VisibilityService
	submissionService *services.SubmissionService
	userService       *services.UserService
	hub               *ws.Hub
}

func NewProjectHandler(
	projectService *services.ProjectService,
	visibilityService *services.VisibilityService,
	submissionService *services.SubmissionService,
	userService *services.UserService,
	hub *ws.Hub,
) *ProjectHandler {
	return &ProjectHandler{
		projectService:    projectService,
		visibilityService: visibilityService,
		submissionService: submissionService,
		userService:       userService,
		hub:               hub,
	}
}

type SubmitResponse struct {
	Project    *Project                             `json:"project"`
	Validation *services.SubmissionValidationResult `json:"validation"`
}

// CreateProject godoc
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body services.ProjectCreateInput true "Project data"
// @Success      201 {object} Project
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID := c.GetString("user_id")

	var req services.ProjectCreateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	project, err := h.projectService.Create(userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, project)
}

// GetProject godoc
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Project ID"
// @Success      200 {object} Project
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.projectService.GetByID(c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// ListProjects godoc
// @Summary      List projects
// @Description  List projects, optionally filtered by user
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        user_id query string false "Filter by owner"
// @Param        skip query int false "Offset"
// @Param        limit query int false "Page size"
// @Success      200 {array} Project
// @Router       /api/v1/projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	if skip < 0 {
		skip = 0
	}

	projects, err := h.projectService.List(c.Query("user_id"), skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, projects)
}

// PatchProject godoc
// @Summary      Update a project
// @Description  Apply the provided fields to the project; omitted fields are untouched
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Project ID"
// @Param        request body services.ProjectPatchInput true "Fields to update"
// @Success      200 {object} Project
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/projects/{id} [patch]
func (h *ProjectHandler) PatchProject(c *gin.Context) {
	userID := c.GetString("user_id")

	var req services.ProjectPatchInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	project, err := h.projectService.Patch(c.Param("id"), userID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject godoc
// @Summary      Delete a project
// @Tags         projects
// @Security     BearerAuth
// @Param        id path string true "Project ID"
// @Success      204
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := h.projectService.Delete(c.Param("id"), userID); err != nil {
		writeServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetVisibility godoc
// @Summary      Get a project's visibility status
// @Description  Derive the visibility tier, milestones and progress from the project's current state
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Project ID"
// @Success      200 {object} VisibilityStatus
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/projects/{id}/visibility [get]
func (h *ProjectHandler) GetVisibility(c *gin.Context) {
	project, err := h.projectService.GetByID(c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	status, err := h.visibilityService.Calculate(project)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, status)
}

// SubmitProject godoc
// @Summary      Submit (ship) a project
// @Description  Validate every submission requirement; on success the project is marked shipped. An ineligible project returns 200 with valid=false and the full violation list.
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Project ID"
// @Success      200 {object} SubmitResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/projects/{id}/submit [post]
func (h *ProjectHandler) SubmitProject(c *gin.Context) {
	userID := c.GetString("user_id")

	project, err := h.projectService.GetByID(c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if project.UserID != userID {
		writeServiceError(c, services.ErrForbidden)
		return
	}

	user, err := h.userService.GetByID(userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	updated, validation, err := h.submissionService.Submit(project, user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	if validation.Valid {
		h.hub.Broadcast(ws.Event{Type: ws.EventProjectShipped, Data: updated})
	}

	c.JSON(http.StatusOK, SubmitResponse{Project: updated, Validation: validation})
}
