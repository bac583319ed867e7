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

// StudyPlanService derives a per-topic study plan from the user's progress.
// Regeneration is a full replace of incomplete rows; completed rows survive
// as history.
type StudyPlanService interface {
	GetPlans(userID string) (*dto.PlanListResponse, error)
	GeneratePlan(userID string) (*dto.PlanListResponse, error)
	TogglePlan(userID string, req dto.TogglePlanRequest) (*model.StudyPlan, error)
}

type studyPlanService struct {
	planRepo     repository.StudyPlanRepository
	catalogRepo  repository.CatalogRepository
	progressRepo repository.ProgressRepository
	db           *gorm.DB
}

func NewStudyPlanService(
	planRepo repository.StudyPlanRepository,
	catalogRepo repository.CatalogRepository,
	progressRepo repository.ProgressRepository,
	db *gorm.DB,
) StudyPlanService {
	return &studyPlanService{
		planRepo:     planRepo,
		catalogRepo:  catalogRepo,
		progressRepo: progressRepo,
		db:           db,
	}
}

func (s *studyPlanService) GetPlans(userID string) (*dto.PlanListResponse, error) {
	plans, err := s.planRepo.FindAllByUser(userID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("Failed to fetch study plans")
		return nil, fmt.Errorf("error fetching study plans: %w", err)
	}
	return &dto.PlanListResponse{Plans: plans}, nil
}

func (s *studyPlanService) GeneratePlan(userID string) (*dto.PlanListResponse, error) {
	topics, err := s.catalogRepo.FindAllTopics()
	if err != nil {
		return nil, fmt.Errorf("error fetching topics: %w", err)
	}
	if len(topics) == 0 {
		return nil, ErrNoTopics
	}

	progress, err := s.progressRepo.FindAllByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching progress: %w", err)
	}
	progressByTopic := make(map[uint]*model.UserProgress, len(progress))
	for i := range progress {
		progressByTopic[progress[i].TopicID] = &progress[i]
	}

	today := time.Now().Format(dateLayout)
	plans := make([]model.StudyPlan, len(topics))
	for i, topic := range topics {
		plans[i] = model.StudyPlan{
			UserID:        userID,
			TopicID:       topic.ID,
			Priority:      PlanPriority(progressByTopic[topic.ID]),
			ScheduledDate: today,
		}
	}

	// Delete-then-insert of the incomplete set is one logical replace.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND completed = ?", userID, false).Delete(&model.StudyPlan{}).Error; err != nil {
			return fmt.Errorf("failed to clear incomplete plans: %w", err)
		}
		if err := tx.Create(&plans).Error; err != nil {
			return fmt.Errorf("failed to create study plans: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("Study plan regeneration failed")
		return nil, err
	}

	// Reload with topic and category joined for display; the fresh rows are
	// exactly the user's incomplete set.
	created, err := s.planRepo.FindIncompleteByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("error reloading generated plans: %w", err)
	}

	log.Info().Str("userID", userID).Int("topics", len(created)).Msg("Study plan regenerated")
	return &dto.PlanListResponse{Plans: created}, nil
}

func (s *studyPlanService) TogglePlan(userID string, req dto.TogglePlanRequest) (*model.StudyPlan, error) {
	plan, err := s.planRepo.FindByIDAndUser(req.PlanID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("error fetching plan %d: %w", req.PlanID, err)
	}

	plan.Completed = *req.Completed
	if plan.Completed {
		now := time.Now()
		plan.CompletedAt = &now
	} else {
		plan.CompletedAt = nil
	}

	if err := s.planRepo.Save(plan); err != nil {
		log.Error().Err(err).Uint("planID", plan.ID).Msg("Failed to toggle study plan")
		return nil, fmt.Errorf("failed to update plan: %w", err)
	}
	return plan, nil
}
