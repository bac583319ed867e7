package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/AaronM524/SAT-Prep/config"
	"github.com/AaronM524/SAT-Prep/internal/dto"
	"github.com/AaronM524/SAT-Prep/internal/model"
	"github.com/AaronM524/SAT-Prep/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// StudySessionService keeps one additive activity row per user per calendar day.
type StudySessionService interface {
	GetSessions(userID string, days int) (*dto.SessionListResponse, error)
	LogSession(userID string, req dto.LogSessionRequest) (*model.StudySession, error)
}

type studySessionService struct {
	sessionRepo repository.StudySessionRepository
	study       config.Study
	db          *gorm.DB
}

func NewStudySessionService(sessionRepo repository.StudySessionRepository, cfg *config.Config, db *gorm.DB) StudySessionService {
	return &studySessionService{sessionRepo: sessionRepo, study: cfg.Study, db: db}
}

func (s *studySessionService) GetSessions(userID string, days int) (*dto.SessionListResponse, error) {
	if days <= 0 {
		days = s.study.SessionHistoryDays
	}
	since := time.Now().AddDate(0, 0, -days).Format(dateLayout)
	sessions, err := s.sessionRepo.FindByUserSince(userID, since)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("Failed to fetch study sessions")
		return nil, fmt.Errorf("error fetching sessions: %w", err)
	}
	return &dto.SessionListResponse{Sessions: sessions}, nil
}

func (s *studySessionService) LogSession(userID string, req dto.LogSessionRequest) (*model.StudySession, error) {
	var session *model.StudySession
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		session, err = upsertSession(tx, userID, time.Now().Format(dateLayout), req.MinutesStudied, req.QuestionsPracticed, req.TopicsCovered)
		return err
	})
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("Failed to log study session")
		return nil, err
	}
	return session, nil
}

// upsertSession merges a contribution into the day's row: minutes and question
// counts add up, topics union into a deduplicated set.
func upsertSession(tx *gorm.DB, userID, date string, minutes, questions int, topics []uint) (*model.StudySession, error) {
	var session model.StudySession
	err := tx.Where("user_id = ? AND date = ?", userID, date).First(&session).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("error fetching study session: %w", err)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		session = model.StudySession{UserID: userID, Date: date}
	}

	session.MinutesStudied += minutes
	session.QuestionsPracticed += questions
	session.TopicsCovered = unionTopics(session.TopicsCovered, topics)

	if err := tx.Save(&session).Error; err != nil {
		return nil, fmt.Errorf("failed to save study session: %w", err)
	}
	return &session, nil
}

func unionTopics(existing, extra []uint) []uint {
	seen := make(map[uint]struct{}, len(existing)+len(extra))
	out := make([]uint, 0, len(existing)+len(extra))
	for _, id := range existing {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	for _, id := range extra {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}
