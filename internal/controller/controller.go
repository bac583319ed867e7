package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/AaronM524/SAT-Prep/internal/dto"
	"github.com/AaronM524/SAT-Prep/internal/service"
	"github.com/gin-gonic/gin"
)

// respondServiceError maps service failures onto the API's error taxonomy:
// missing/unowned entities are 404, empty generative results are 400,
// anything else surfaces as 500 with the underlying message.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTestNotFound),
		errors.Is(err, service.ErrQuestionNotFound),
		errors.Is(err, service.ErrPlanNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrNoQuestions),
		errors.Is(err, service.ErrNoTopics):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	val, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(val), true
}

func parseUintQuery(c *gin.Context, name string) (*uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	val, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid " + name + " format"})
		return nil, false
	}
	id := uint(val)
	return &id, true
}

func parseIntQuery(c *gin.Context, name string) (*int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid " + name + " format"})
		return nil, false
	}
	return &val, true
}
