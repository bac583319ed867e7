package model

import "time"

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

type StudyPlan struct {
	ID            uint       `gorm:"primarykey" json:"id"`
	UserID        string     `json:"user_id" gorm:"size:36;not null;index"`
	TopicID       uint       `json:"topic_id" gorm:"not null;index"`
	Topic         Topic      `json:"topic,omitempty" gorm:"foreignKey:TopicID"`
	Priority      string     `json:"priority" gorm:"size:8;not null"` // low | medium | high
	ScheduledDate string     `json:"scheduled_date" gorm:"size:10"`   // YYYY-MM-DD
	Completed     bool       `json:"completed" gorm:"not null;default:false"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}
