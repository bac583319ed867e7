package model

import "time"

type PracticeTest struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	UserID           string         `json:"user_id" gorm:"size:36;not null;index"`
	Title            string         `json:"title" gorm:"not null"`
	TotalQuestions   int            `json:"total_questions" gorm:"not null"`
	CorrectAnswers   int            `json:"correct_answers"`
	Score            *int           `json:"score,omitempty"` // null until completed
	TimeSpentSeconds int            `json:"time_spent_seconds"`
	Completed        bool           `json:"completed" gorm:"not null;default:false"`
	StartedAt        time.Time      `json:"started_at" gorm:"autoCreateTime"`
	CompletedAt      *time.Time     `json:"completed_at,omitempty"`
	Questions        []TestQuestion `json:"questions,omitempty" gorm:"foreignKey:TestID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
