package controller

import (
	"net/http"

	"github.com/AaronM524/SAT-Prep/internal/dto"
	"github.com/AaronM524/SAT-Prep/internal/middleware"
	"github.com/AaronM524/SAT-Prep/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ProgressController struct {
	progressSvc service.ProgressService
}

func NewProgressController(progressSvc service.ProgressService) *ProgressController {
	return &ProgressController{progressSvc: progressSvc}
}

// GetProgress godoc
// @Summary Fetch topic progress
// @Description Lists the user's per-topic mastery records, most recently practiced first.
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ProgressListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /progress [get]
func (ctrl *ProgressController) GetProgress(c *gin.Context) {
	progress, err := ctrl.progressSvc.GetProgress(middleware.CurrentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

// UpdateProgress godoc
// @Summary Apply a progress delta for one topic
// @Description Adds incremental attempted/correct counts to the topic's cumulative record and re-derives accuracy and mastery level.
// @Tags progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProgressRequest true "Incremental counts"
// @Success 200 {object} dto.ProgressResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /progress [post]
func (ctrl *ProgressController) UpdateProgress(c *gin.Context) {
	var req dto.UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("UpdateProgress: failed to bind request")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	progress, err := ctrl.progressSvc.UpdateProgress(middleware.CurrentUserID(c), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ProgressResponse{Progress: *progress})
}
