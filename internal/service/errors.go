package service

import "errors"

var (
	ErrNoQuestions      = errors.New("no questions found")
	ErrTestNotFound     = errors.New("test not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrPlanNotFound     = errors.New("study plan not found")
	ErrNoTopics         = errors.New("no topics found")
)
