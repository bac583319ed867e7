package controller

import (
	"net/http"

	"github.com/AaronM524/SAT-Prep/internal/dto"
	"github.com/AaronM524/SAT-Prep/internal/middleware"
	"github.com/AaronM524/SAT-Prep/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type StudyPlanController struct {
	planSvc service.StudyPlanService
}

func NewStudyPlanController(planSvc service.StudyPlanService) *StudyPlanController {
	return &StudyPlanController{planSvc: planSvc}
}

// GetPlans godoc
// @Summary Fetch the user's study plan
// @Tags study-plan
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.PlanListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /study-plan [get]
func (ctrl *StudyPlanController) GetPlans(c *gin.Context) {
	plans, err := ctrl.planSvc.GetPlans(middleware.CurrentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

// GeneratePlan godoc
// @Summary Regenerate the study plan
// @Description Replaces all incomplete plan rows with one freshly prioritized row per catalog topic. Completed rows are preserved as history.
// @Tags study-plan
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.PlanListResponse
// @Failure 400 {object} dto.ErrorResponse "No topics in the catalog"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /study-plan [post]
func (ctrl *StudyPlanController) GeneratePlan(c *gin.Context) {
	plans, err := ctrl.planSvc.GeneratePlan(middleware.CurrentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

// TogglePlan godoc
// @Summary Toggle a plan entry's completion
// @Tags study-plan
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.TogglePlanRequest true "Plan id and completion state"
// @Success 200 {object} dto.PlanResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Plan not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /study-plan [patch]
func (ctrl *StudyPlanController) TogglePlan(c *gin.Context) {
	var req dto.TogglePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("TogglePlan: failed to bind request")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	plan, err := ctrl.planSvc.TogglePlan(middleware.CurrentUserID(c), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.PlanResponse{Plan: *plan})
}
