package model

import "time"

// StudySession aggregates one user's activity for one calendar day.
// Same-day logs merge additively; TopicsCovered is a deduplicated set.
type StudySession struct {
	ID                 uint      `gorm:"primarykey" json:"id"`
	UserID             string    `json:"user_id" gorm:"size:36;not null;uniqueIndex:idx_user_date"`
	Date               string    `json:"date" gorm:"size:10;not null;uniqueIndex:idx_user_date"` // YYYY-MM-DD
	MinutesStudied     int       `json:"minutes_studied" gorm:"not null;default:0"`
	QuestionsPracticed int       `json:"questions_practiced" gorm:"not null;default:0"`
	TopicsCovered      []uint    `json:"topics_covered" gorm:"serializer:json"`
	CreatedAt          time.Time `json:"created_at"`
}
