package model

import "time"

type Category struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `json:"name" gorm:"not null;uniqueIndex"`
	Description *string   `json:"description,omitempty"`
	Topics      []Topic   `json:"topics,omitempty" gorm:"foreignKey:CategoryID"`
	CreatedAt   time.Time `json:"created_at"`
}
