package controller

import (
	"net/http"

	"github.com/AaronM524/SAT-Prep/internal/dto"
	"github.com/AaronM524/SAT-Prep/internal/middleware"
	"github.com/AaronM524/SAT-Prep/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type PracticeTestController struct {
	generatorSvc  service.TestGeneratorService
	answerSvc     service.AnswerService
	completionSvc service.TestCompletionService
}

func NewPracticeTestController(
	generatorSvc service.TestGeneratorService,
	answerSvc service.AnswerService,
	completionSvc service.TestCompletionService,
) *PracticeTestController {
	return &PracticeTestController{
		generatorSvc:  generatorSvc,
		answerSvc:     answerSvc,
		completionSvc: completionSvc,
	}
}

// CreateTest godoc
// @Summary Create a practice test
// @Description Samples random questions matching the filters and materializes a new test.
// @Tags practice-test
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTestRequest true "Test generation parameters"
// @Success 200 {object} dto.TestResponse
// @Failure 400 {object} dto.ErrorResponse "No questions found for the filters"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /practice-test [post]
func (ctrl *PracticeTestController) CreateTest(c *gin.Context) {
	var req dto.CreateTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateTest: failed to bind request")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	test, err := ctrl.generatorSvc.CreateTest(middleware.CurrentUserID(c), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TestResponse{Test: *test})
}

// ListTests godoc
// @Summary List the user's practice tests
// @Tags practice-test
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.TestListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /practice-test [get]
func (ctrl *PracticeTestController) ListTests(c *gin.Context) {
	tests, err := ctrl.generatorSvc.GetAllTests(middleware.CurrentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TestListResponse{Tests: tests})
}

// GetTest godoc
// @Summary Fetch a practice test with its question rows
// @Tags practice-test
// @Produce json
// @Security BearerAuth
// @Param test_id path int true "Test ID"
// @Success 200 {object} dto.TestDetailResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /practice-test/{test_id} [get]
func (ctrl *PracticeTestController) GetTest(c *gin.Context) {
	testID, ok := parseUintParam(c, "test_id")
	if !ok {
		return
	}
	detail, err := ctrl.generatorSvc.GetTestDetails(middleware.CurrentUserID(c), testID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// UpdateTest godoc
// @Summary Update or complete a practice test
// @Description Updates elapsed time and/or completes the test. Completion scores the test and updates topic progress and the daily study session in one transaction.
// @Tags practice-test
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param test_id path int true "Test ID"
// @Param request body dto.UpdateTestRequest true "Fields to update"
// @Success 200 {object} dto.TestResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /practice-test/{test_id} [patch]
func (ctrl *PracticeTestController) UpdateTest(c *gin.Context) {
	testID, ok := parseUintParam(c, "test_id")
	if !ok {
		return
	}
	var req dto.UpdateTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("UpdateTest: failed to bind request")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	test, err := ctrl.completionSvc.UpdateTest(middleware.CurrentUserID(c), testID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TestResponse{Test: *test})
}

// SubmitAnswer godoc
// @Summary Submit one answer
// @Description Records the answer against its test-question row and returns immediate feedback with the answer key.
// @Tags practice-test
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param test_id path int true "Test ID"
// @Param request body dto.SubmitAnswerRequest true "Answer submission"
// @Success 200 {object} dto.AnswerResultResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Test or question not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /practice-test/{test_id}/answer [post]
func (ctrl *PracticeTestController) SubmitAnswer(c *gin.Context) {
	testID, ok := parseUintParam(c, "test_id")
	if !ok {
		return
	}
	var req dto.SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitAnswer: failed to bind request")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := ctrl.answerSvc.SubmitAnswer(middleware.CurrentUserID(c), testID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
