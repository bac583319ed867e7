package model

import "time"

type Topic struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	CategoryID  uint      `json:"category_id" gorm:"not null;index"`
	Category    Category  `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Name        string    `json:"name" gorm:"not null"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
