package service

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/AaronM524/SAT-Prep/config"
	"github.com/AaronM524/SAT-Prep/internal/dto"
	"github.com/AaronM524/SAT-Prep/internal/model"
	"github.com/AaronM524/SAT-Prep/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// TestGeneratorService materializes practice tests from the question catalog
// and serves a user's test headers and details.
type TestGeneratorService interface {
	CreateTest(userID string, req dto.CreateTestRequest) (*model.PracticeTest, error)
	GetAllTests(userID string) ([]model.PracticeTest, error)
	GetTestDetails(userID string, testID uint) (*dto.TestDetailResponse, error)
}

type testGeneratorService struct {
	questionRepo repository.QuestionRepository
	testRepo     repository.PracticeTestRepository
	study        config.Study
	db           *gorm.DB
}

func NewTestGeneratorService(
	questionRepo repository.QuestionRepository,
	testRepo repository.PracticeTestRepository,
	cfg *config.Config,
	db *gorm.DB,
) TestGeneratorService {
	return &testGeneratorService{
		questionRepo: questionRepo,
		testRepo:     testRepo,
		study:        cfg.Study,
		db:           db,
	}
}

// drawQuestionIDs shuffles the eligible pool and keeps the first count ids,
// or all of them when the pool is smaller than count.
func drawQuestionIDs(ids []uint, count int) []uint {
	out := append([]uint(nil), ids...)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	if count > len(out) {
		count = len(out)
	}
	return out[:count]
}

func (s *testGeneratorService) CreateTest(userID string, req dto.CreateTestRequest) (*model.PracticeTest, error) {
	count := req.NumQuestions
	if count <= 0 {
		count = s.study.DefaultQuestionCount
	}
	title := req.Title
	if title == "" {
		title = "Practice Test"
	}

	// The eligible pool is fetched unbounded so randomization covers all of it.
	ids, err := s.questionRepo.FindIDsByFilter(repository.QuestionFilter{
		CategoryID: req.CategoryID,
		TopicID:    req.TopicID,
	})
	if err != nil {
		log.Error().Err(err).Msg("CreateTest: failed to fetch eligible question pool")
		return nil, fmt.Errorf("error fetching questions: %w", err)
	}
	if len(ids) == 0 {
		return nil, ErrNoQuestions
	}

	selected := drawQuestionIDs(ids, count)

	test := model.PracticeTest{
		UserID:         userID,
		Title:          title,
		TotalQuestions: len(selected),
	}

	// Header and question rows are a single logical write.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&test).Error; err != nil {
			return fmt.Errorf("failed to create practice test: %w", err)
		}
		rows := make([]model.TestQuestion, len(selected))
		for i, qid := range selected {
			rows[i] = model.TestQuestion{
				TestID:     test.ID,
				QuestionID: qid,
				OrderIndex: i + 1,
			}
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to create test questions: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("CreateTest: transaction failed")
		return nil, err
	}

	log.Info().Uint("testID", test.ID).Str("userID", userID).Int("questions", test.TotalQuestions).Msg("Practice test created")
	return &test, nil
}

func (s *testGeneratorService) GetAllTests(userID string) ([]model.PracticeTest, error) {
	tests, err := s.testRepo.FindAllByUser(userID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("Failed to list practice tests")
		return nil, fmt.Errorf("error fetching tests: %w", err)
	}
	return tests, nil
}

func (s *testGeneratorService) GetTestDetails(userID string, testID uint) (*dto.TestDetailResponse, error) {
	test, err := s.testRepo.FindByIDAndUser(testID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTestNotFound
		}
		return nil, fmt.Errorf("error fetching test %d: %w", testID, err)
	}
	questions, err := s.testRepo.FindQuestionsByTestID(testID)
	if err != nil {
		log.Error().Err(err).Uint("testID", testID).Msg("Failed to fetch test questions")
		return nil, fmt.Errorf("error fetching test questions: %w", err)
	}
	return &dto.TestDetailResponse{Test: *test, Questions: questions}, nil
}
