package controller

import (
	"net/http"

	"github.com/AaronM524/SAT-Prep/internal/dto"
	"github.com/AaronM524/SAT-Prep/internal/middleware"
	"github.com/AaronM524/SAT-Prep/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type StudySessionController struct {
	sessionSvc service.StudySessionService
}

func NewStudySessionController(sessionSvc service.StudySessionService) *StudySessionController {
	return &StudySessionController{sessionSvc: sessionSvc}
}

// GetSessions godoc
// @Summary Fetch recent study sessions
// @Tags study-session
// @Produce json
// @Security BearerAuth
// @Param days query int false "History window in days" default(7)
// @Success 200 {object} dto.SessionListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /study-session [get]
func (ctrl *StudySessionController) GetSessions(c *gin.Context) {
	days, ok := parseIntQuery(c, "days")
	if !ok {
		return
	}
	window := 0
	if days != nil {
		window = *days
	}

	sessions, err := ctrl.sessionSvc.GetSessions(middleware.CurrentUserID(c), window)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// LogSession godoc
// @Summary Log study activity for today
// @Description Adds minutes and question counts into today's session row and unions the covered topic set.
// @Tags study-session
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.LogSessionRequest true "Activity to log"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /study-session [post]
func (ctrl *StudySessionController) LogSession(c *gin.Context) {
	var req dto.LogSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("LogSession: failed to bind request")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	session, err := ctrl.sessionSvc.LogSession(middleware.CurrentUserID(c), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SessionResponse{Session: *session})
}
