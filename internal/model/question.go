package model

import "time"

// Question is an immutable catalog entry; user actions never mutate it.
type Question struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	CategoryID    uint      `json:"category_id" gorm:"not null;index"`
	TopicID       *uint     `json:"topic_id,omitempty" gorm:"index"`
	QuestionText  string    `json:"question_text" gorm:"type:text;not null"`
	OptionA       string    `json:"option_a" gorm:"not null"`
	OptionB       string    `json:"option_b" gorm:"not null"`
	OptionC       string    `json:"option_c" gorm:"not null"`
	OptionD       string    `json:"option_d" gorm:"not null"`
	CorrectAnswer string    `json:"correct_answer" gorm:"size:1;not null"` // "A".."D"
	Explanation   *string   `json:"explanation,omitempty" gorm:"type:text"`
	Difficulty    int       `json:"difficulty" gorm:"not null;default:1"` // 1-5
	CreatedAt     time.Time `json:"created_at"`
}
