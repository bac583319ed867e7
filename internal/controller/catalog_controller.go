package controller

import (
	"net/http"

	"github.com/AaronM524/SAT-Prep/internal/repository"
	"github.com/AaronM524/SAT-Prep/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type CatalogController struct {
	catalogSvc service.CatalogService
}

func NewCatalogController(catalogSvc service.CatalogService) *CatalogController {
	return &CatalogController{catalogSvc: catalogSvc}
}

// GetCategories godoc
// @Summary List categories and topics
// @Description Returns the full question catalog taxonomy.
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.CatalogResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories [get]
func (ctrl *CatalogController) GetCategories(c *gin.Context) {
	catalog, err := ctrl.catalogSvc.GetCatalog()
	if err != nil {
		log.Error().Err(err).Msg("GetCategories: service error")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, catalog)
}

// GetQuestions godoc
// @Summary List catalog questions
// @Description Filtered question list. All filters are optional and combine as AND.
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param category_id query int false "Category filter"
// @Param topic_id query int false "Topic filter"
// @Param difficulty query int false "Difficulty filter (1-5)"
// @Param limit query int false "Maximum rows returned" default(10)
// @Success 200 {object} dto.QuestionListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /questions [get]
func (ctrl *CatalogController) GetQuestions(c *gin.Context) {
	categoryID, ok := parseUintQuery(c, "category_id")
	if !ok {
		return
	}
	topicID, ok := parseUintQuery(c, "topic_id")
	if !ok {
		return
	}
	difficulty, ok := parseIntQuery(c, "difficulty")
	if !ok {
		return
	}
	limit, ok := parseIntQuery(c, "limit")
	if !ok {
		return
	}

	filter := repository.QuestionFilter{CategoryID: categoryID, TopicID: topicID, Difficulty: difficulty}
	effectiveLimit := 10
	if limit != nil {
		effectiveLimit = *limit
	}

	questions, err := ctrl.catalogSvc.GetQuestions(filter, effectiveLimit)
	if err != nil {
		log.Error().Err(err).Msg("GetQuestions: service error")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}
