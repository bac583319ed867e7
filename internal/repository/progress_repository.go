package repository

import (
	"github.com/AaronM524/SAT-Prep/internal/model"
	"gorm.io/gorm"
)

type ProgressRepository interface {
	FindAllByUser(userID string) ([]model.UserProgress, error)
	FindByUserAndTopic(userID string, topicID uint) (*model.UserProgress, error)
}

type progressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) FindAllByUser(userID string) ([]model.UserProgress, error) {
	var progress []model.UserProgress
	err := r.db.
		Preload("Topic.Category").
		Where("user_id = ?", userID).
		Order("last_practiced DESC").
		Find(&progress).Error
	return progress, err
}

func (r *progressRepository) FindByUserAndTopic(userID string, topicID uint) (*model.UserProgress, error) {
	var progress model.UserProgress
	err := r.db.Where("user_id = ? AND topic_id = ?", userID, topicID).First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}
