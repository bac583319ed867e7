package model

import "time"

type Profile struct {
	ID                 uint      `gorm:"primarykey" json:"id"`
	UserID             string    `json:"user_id" gorm:"size:36;not null;uniqueIndex"`
	DisplayName        *string   `json:"display_name,omitempty"`
	TargetScore        *int      `json:"target_score,omitempty"`
	TestDate           *string   `json:"test_date,omitempty" gorm:"size:10"` // YYYY-MM-DD
	CurrentScore       *int      `json:"current_score,omitempty"`
	StudyMinutesPerDay int       `json:"study_minutes_per_day"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
