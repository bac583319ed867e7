package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/AaronM524/SAT-Prep/internal/dto"
	"github.com/AaronM524/SAT-Prep/internal/model"
	"github.com/AaronM524/SAT-Prep/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ProgressService maintains cumulative per-user-per-topic mastery records.
// Updates are additive, not idempotent: callers apply each delta exactly once.
type ProgressService interface {
	GetProgress(userID string) (*dto.ProgressListResponse, error)
	UpdateProgress(userID string, req dto.UpdateProgressRequest) (*model.UserProgress, error)
}

type progressService struct {
	progressRepo repository.ProgressRepository
	db           *gorm.DB
}

func NewProgressService(progressRepo repository.ProgressRepository, db *gorm.DB) ProgressService {
	return &progressService{progressRepo: progressRepo, db: db}
}

func (s *progressService) GetProgress(userID string) (*dto.ProgressListResponse, error) {
	progress, err := s.progressRepo.FindAllByUser(userID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("Failed to fetch user progress")
		return nil, fmt.Errorf("error fetching progress: %w", err)
	}
	return &dto.ProgressListResponse{Progress: progress}, nil
}

func (s *progressService) UpdateProgress(userID string, req dto.UpdateProgressRequest) (*model.UserProgress, error) {
	var progress *model.UserProgress
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		progress, err = applyProgressDelta(tx, userID, req.TopicID, req.QuestionsAttempted, req.QuestionsCorrect, time.Now())
		return err
	})
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Uint("topicID", req.TopicID).Msg("Failed to update progress")
		return nil, err
	}
	return progress, nil
}

// applyProgressDelta folds an incremental (attempted, correct) contribution
// into the (user, topic) progress row, creating it on first practice. The
// read-modify-write runs inside the caller's transaction so concurrent
// completions for the same topic serialize at the row level.
func applyProgressDelta(tx *gorm.DB, userID string, topicID uint, attempted, correct int, now time.Time) (*model.UserProgress, error) {
	var progress model.UserProgress
	err := tx.Where("user_id = ? AND topic_id = ?", userID, topicID).First(&progress).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("error fetching progress for topic %d: %w", topicID, err)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		progress = model.UserProgress{UserID: userID, TopicID: topicID}
	}

	progress.QuestionsAttempted += attempted
	progress.QuestionsCorrect += correct
	progress.Accuracy = Accuracy(progress.QuestionsCorrect, progress.QuestionsAttempted)
	progress.MasteryLevel = MasteryLevel(progress.QuestionsAttempted, progress.Accuracy)
	progress.LastPracticed = now

	if err := tx.Save(&progress).Error; err != nil {
		return nil, fmt.Errorf("failed to save progress for topic %d: %w", topicID, err)
	}
	return &progress, nil
}
