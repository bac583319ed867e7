package repository

import (
	"github.com/AaronM524/SAT-Prep/internal/model"
	"gorm.io/gorm"
)

type ProfileRepository interface {
	FindByUser(userID string) (*model.Profile, error)
	Save(profile *model.Profile) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) FindByUser(userID string) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Save(profile *model.Profile) error {
	return r.db.Save(profile).Error
}
