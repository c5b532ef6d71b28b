package handlers

import (
	"net/http"

	"github.com/hackclub/buildboard-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetMe godoc
// @Summary      Get the current user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} User
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/users/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	userID := c.GetString("user_id")

	user, err := h.userService.GetByID(userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetProfile godoc
// @Summary      Get the current user's profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} models.UserProfile
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/users/me/profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	profile, err := h.userService.GetProfile(userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpsertProfile godoc
// @Summary      Create or replace the current user's profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body services.ProfileInput true "Profile data"
// @Success      200 {object} models.UserProfile
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/users/me/profile [put]
func (h *UserHandler) UpsertProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	var req services.ProfileInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	profile, err := h.userService.UpsertProfile(userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetAddress godoc
// @Summary      Get the current user's primary address
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} models.UserAddress
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/users/me/address [get]
func (h *UserHandler) GetAddress(c *gin.Context) {
	userID := c.GetString("user_id")

	address, err := h.userService.GetPrimaryAddress(userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, address)
}

// UpsertAddress godoc
// @Summary      Create or replace the current user's primary address
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body services.AddressInput true "Address data"
// @Success      200 {object} models.UserAddress
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/users/me/address [put]
func (h *UserHandler) UpsertAddress(c *gin.Context) {
	userID := c.GetString("user_id")

	var req services.AddressInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	address, err := h.userService.UpsertPrimaryAddress(userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, address)
}
