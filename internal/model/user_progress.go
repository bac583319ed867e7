package model

import "time"

// UserProgress accumulates per-user-per-topic mastery counters. Rows are
// created on first practice of a topic and updated additively afterwards.
type UserProgress struct {
	ID                 uint      `gorm:"primarykey" json:"id"`
	UserID             string    `json:"user_id" gorm:"size:36;not null;uniqueIndex:idx_user_topic"`
	TopicID            uint      `json:"topic_id" gorm:"not null;uniqueIndex:idx_user_topic"`
	Topic              Topic     `json:"topic,omitempty" gorm:"foreignKey:TopicID"`
	QuestionsAttempted int       `json:"questions_attempted" gorm:"not null;default:0"`
	QuestionsCorrect   int       `json:"questions_correct" gorm:"not null;default:0"`
	Accuracy           float64   `json:"accuracy" gorm:"not null;default:0"` // 0-100
	MasteryLevel       int       `json:"mastery_level" gorm:"not null;default:1"` // 1-5
	LastPracticed      time.Time `json:"last_practiced"`
}
