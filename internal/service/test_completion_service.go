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

// TestCompletionService finalizes practice tests. Completing a test scores
// it, folds per-topic results into the mastery engine and logs the day's
// study session, all inside one transaction so a completed test can never
// be left without its progress updates.
type TestCompletionService interface {
	UpdateTest(userID string, testID uint, req dto.UpdateTestRequest) (*model.PracticeTest, error)
}

type testCompletionService struct {
	testRepo repository.PracticeTestRepository
	db       *gorm.DB
}

func NewTestCompletionService(testRepo repository.PracticeTestRepository, db *gorm.DB) TestCompletionService {
	return &testCompletionService{testRepo: testRepo, db: db}
}

func (s *testCompletionService) UpdateTest(userID string, testID uint, req dto.UpdateTestRequest) (*model.PracticeTest, error) {
	test, err := s.testRepo.FindByIDAndUser(testID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTestNotFound
		}
		return nil, fmt.Errorf("error fetching test %d: %w", testID, err)
	}

	if req.TimeSpentSeconds != nil {
		test.TimeSpentSeconds = *req.TimeSpentSeconds
	}

	completing := req.Completed != nil && *req.Completed && !test.Completed

	if !completing {
		if req.Completed != nil {
			test.Completed = *req.Completed
		}
		if err := s.db.Save(test).Error; err != nil {
			log.Error().Err(err).Uint("testID", testID).Msg("Failed to update practice test")
			return nil, fmt.Errorf("failed to update test: %w", err)
		}
		return test, nil
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		questions, err := s.testRepo.FindQuestionsByTestID(testID)
		if err != nil {
			return fmt.Errorf("error fetching test questions: %w", err)
		}

		correct := 0
		for _, tq := range questions {
			if tq.IsCorrect != nil && *tq.IsCorrect {
				correct++
			}
		}
		score := TestScore(correct, test.TotalQuestions)
		now := time.Now()

		test.CorrectAnswers = correct
		test.Score = &score
		test.Completed = true
		test.CompletedAt = &now
		if err := tx.Save(test).Error; err != nil {
			return fmt.Errorf("failed to save completed test: %w", err)
		}

		// Per-topic contributions: every question with a topic counts as
		// attempted, answered correctly or not.
		type delta struct{ attempted, correct int }
		deltas := make(map[uint]delta)
		for _, tq := range questions {
			if tq.Question.TopicID == nil {
				continue
			}
			d := deltas[*tq.Question.TopicID]
			d.attempted++
			if tq.IsCorrect != nil && *tq.IsCorrect {
				d.correct++
			}
			deltas[*tq.Question.TopicID] = d
		}

		topics := make([]uint, 0, len(deltas))
		for topicID, d := range deltas {
			if _, err := applyProgressDelta(tx, userID, topicID, d.attempted, d.correct, now); err != nil {
				return err
			}
			topics = append(topics, topicID)
		}

		_, err = upsertSession(tx, userID, now.Format(dateLayout),
			MinutesFromSeconds(test.TimeSpentSeconds), test.TotalQuestions, topics)
		return err
	})
	if err != nil {
		log.Error().Err(err).Uint("testID", testID).Str("userID", userID).Msg("Test completion transaction failed")
		return nil, err
	}

	log.Info().Uint("testID", testID).Int("score", *test.Score).Int("correct", test.CorrectAnswers).Msg("Practice test completed")
	return test, nil
}
