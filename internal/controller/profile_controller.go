package controller

import (
	"net/http"

	"github.com/AaronM524/SAT-Prep/internal/dto"
	"github.com/AaronM524/SAT-Prep/internal/middleware"
	"github.com/AaronM524/SAT-Prep/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ProfileController struct {
	profileSvc service.ProfileService
}

func NewProfileController(profileSvc service.ProfileService) *ProfileController {
	return &ProfileController{profileSvc: profileSvc}
}

// GetProfile godoc
// @Summary Fetch the user's profile
// @Description Returns the stored profile, or defaults when none has been saved.
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /profile [get]
func (ctrl *ProfileController) GetProfile(c *gin.Context) {
	profile, err := ctrl.profileSvc.GetProfile(middleware.CurrentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ProfileResponse{Profile: *profile})
}

// UpsertProfile godoc
// @Summary Create or update the user's profile
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpsertProfileRequest true "Profile fields"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /profile [post]
func (ctrl *ProfileController) UpsertProfile(c *gin.Context) {
	var req dto.UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("UpsertProfile: failed to bind request")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	profile, err := ctrl.profileSvc.UpsertProfile(middleware.CurrentUserID(c), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ProfileResponse{Profile: *profile})
}
