package model

import "time"

// TestQuestion binds a question to a practice test at a fixed 1-based position.
// order_index values are contiguous within a test; at most one row exists per
// (test_id, question_id).
type TestQuestion struct {
	ID               uint       `gorm:"primarykey" json:"id"`
	TestID           uint       `json:"test_id" gorm:"not null;uniqueIndex:idx_test_question"`
	QuestionID       uint       `json:"question_id" gorm:"not null;uniqueIndex:idx_test_question"`
	Question         Question   `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	UserAnswer       *string    `json:"user_answer,omitempty" gorm:"size:1"`
	IsCorrect        *bool      `json:"is_correct,omitempty"`
	TimeSpentSeconds int        `json:"time_spent_seconds"`
	OrderIndex       int        `json:"order_index" gorm:"not null"`
	AnsweredAt       *time.Time `json:"answered_at,omitempty"`
}
