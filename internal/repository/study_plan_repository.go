package repository

import (
	"github.com/AaronM524/SAT-Prep/internal/model"
	"gorm.io/gorm"
)

type StudyPlanRepository interface {
	FindAllByUser(userID string) ([]model.StudyPlan, error)
	FindIncompleteByUser(userID string) ([]model.StudyPlan, error)
	FindByIDAndUser(id uint, userID string) (*model.StudyPlan, error)
	Save(plan *model.StudyPlan) error
}

type studyPlanRepository struct {
	db *gorm.DB
}

func NewStudyPlanRepository(db *gorm.DB) StudyPlanRepository {
	return &studyPlanRepository{db: db}
}

func (r *studyPlanRepository) FindAllByUser(userID string) ([]model.StudyPlan, error) {
	var plans []model.StudyPlan
	err := r.db.
		Preload("Topic.Category").
		Where("user_id = ?", userID).
		Order("CASE priority WHEN 'high' THEN 0 WHEN 'medium' THEN 1 ELSE 2 END, scheduled_date ASC").
		Find(&plans).Error
	return plans, err
}

func (r *studyPlanRepository) FindIncompleteByUser(userID string) ([]model.StudyPlan, error) {
	var plans []model.StudyPlan
	err := r.db.
		Preload("Topic.Category").
		Where("user_id = ? AND completed = ?", userID, false).
		Order("CASE priority WHEN 'high' THEN 0 WHEN 'medium' THEN 1 ELSE 2 END, topic_id ASC").
		Find(&plans).Error
	return plans, err
}

func (r *studyPlanRepository) FindByIDAndUser(id uint, userID string) (*model.StudyPlan, error) {
	var plan model.StudyPlan
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *studyPlanRepository) Save(plan *model.StudyPlan) error {
	return r.db.Save(plan).Error
}
