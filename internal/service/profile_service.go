package service

import (
	"errors"
	"fmt"

	"github.com/AaronM524/SAT-Prep/config"
	"github.com/AaronM524/SAT-Prep/internal/dto"
	"github.com/AaronM524/SAT-Prep/internal/model"
	"github.com/AaronM524/SAT-Prep/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type ProfileService interface {
	GetProfile(userID string) (*model.Profile, error)
	UpsertProfile(userID string, req dto.UpsertProfileRequest) (*model.Profile, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
	study       config.Study
}

func NewProfileService(profileRepo repository.ProfileRepository, cfg *config.Config) ProfileService {
	return &profileService{profileRepo: profileRepo, study: cfg.Study}
}

// GetProfile returns the stored profile, or an unpersisted default when the
// user has not saved one yet.
func (s *profileService) GetProfile(userID string) (*model.Profile, error) {
	profile, err := s.profileRepo.FindByUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &model.Profile{UserID: userID, StudyMinutesPerDay: s.study.DefaultMinutesPerDay}, nil
		}
		return nil, fmt.Errorf("error fetching profile: %w", err)
	}
	return profile, nil
}

func (s *profileService) UpsertProfile(userID string, req dto.UpsertProfileRequest) (*model.Profile, error) {
	profile, err := s.profileRepo.FindByUser(userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("error fetching profile: %w", err)
		}
		profile = &model.Profile{UserID: userID, StudyMinutesPerDay: s.study.DefaultMinutesPerDay}
	}

	// Only non-nil request fields overwrite stored values.
	if err := copier.CopyWithOption(profile, &req, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, fmt.Errorf("error preparing profile update: %w", err)
	}

	if err := s.profileRepo.Save(profile); err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("Failed to save profile")
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	return profile, nil
}
