package dto

import (
	"time"

	"github.com/AaronM524/SAT-Prep/internal/model"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// CatalogResponse lists the question catalog's categories and topics.
type CatalogResponse struct {
	Categories []model.Category `json:"categories"`
	Topics     []model.Topic    `json:"topics"`
}

type QuestionListResponse struct {
	Questions []model.Question `json:"questions"`
}

type TestResponse struct {
	Test model.PracticeTest `json:"test"`
}

type TestListResponse struct {
	Tests []model.PracticeTest `json:"tests"`
}

// TestDetailResponse carries the test header plus its question rows in order.
type TestDetailResponse struct {
	Test      model.PracticeTest   `json:"test"`
	Questions []model.TestQuestion `json:"questions"`
}

// TestQuestionDTO mirrors a test-question row in answer submission responses.
type TestQuestionDTO struct {
	ID               uint       `json:"id"`
	TestID           uint       `json:"test_id"`
	QuestionID       uint       `json:"question_id"`
	UserAnswer       *string    `json:"user_answer,omitempty"`
	IsCorrect        *bool      `json:"is_correct,omitempty"`
	TimeSpentSeconds int        `json:"time_spent_seconds"`
	OrderIndex       int        `json:"order_index"`
	AnsweredAt       *time.Time `json:"answered_at,omitempty"`
}

// AnswerResultResponse returns immediate feedback: the updated row, whether
// the submission was correct, and the answer key.
type AnswerResultResponse struct {
	TestQuestion  TestQuestionDTO `json:"testQuestion"`
	IsCorrect     bool            `json:"is_correct"`
	CorrectAnswer string          `json:"correct_answer"`
}

type ProgressResponse struct {
	Progress model.UserProgress `json:"progress"`
}

type ProgressListResponse struct {
	Progress []model.UserProgress `json:"progress"`
}

type PlanResponse struct {
	Plan model.StudyPlan `json:"plan"`
}

type PlanListResponse struct {
	Plans []model.StudyPlan `json:"plans"`
}

type SessionResponse struct {
	Session model.StudySession `json:"session"`
}

type SessionListResponse struct {
	Sessions []model.StudySession `json:"sessions"`
}

type ProfileResponse struct {
	Profile model.Profile `json:"profile"`
}
