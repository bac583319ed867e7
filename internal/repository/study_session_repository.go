package repository

import (
	"github.com/AaronM524/SAT-Prep/internal/model"
	"gorm.io/gorm"
)

type StudySessionRepository interface {
	FindByUserSince(userID, sinceDate string) ([]model.StudySession, error)
	FindByUserAndDate(userID, date string) (*model.StudySession, error)
}

type studySessionRepository struct {
	db *gorm.DB
}

func NewStudySessionRepository(db *gorm.DB) StudySessionRepository {
	return &studySessionRepository{db: db}
}

func (r *studySessionRepository) FindByUserSince(userID, sinceDate string) ([]model.StudySession, error) {
	var sessions []model.StudySession
	err := r.db.
		Where("user_id = ? AND date >= ?", userID, sinceDate).
		Order("date DESC").
		Find(&sessions).Error
	return sessions, err
}

func (r *studySessionRepository) FindByUserAndDate(userID, date string) (*model.StudySession, error) {
	var session model.StudySession
	err := r.db.Where("user_id = ? AND date = ?", userID, date).First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}
