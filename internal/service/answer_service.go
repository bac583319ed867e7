package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/AaronM524/SAT-Prep/internal/dto"
	"github.com/AaronM524/SAT-Prep/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AnswerService records single answer submissions and returns immediate
// feedback including the answer key.
type AnswerService interface {
	SubmitAnswer(userID string, testID uint, req dto.SubmitAnswerRequest) (*dto.AnswerResultResponse, error)
}

type answerService struct {
	testRepo     repository.PracticeTestRepository
	questionRepo repository.QuestionRepository
}

func NewAnswerService(testRepo repository.PracticeTestRepository, questionRepo repository.QuestionRepository) AnswerService {
	return &answerService{testRepo: testRepo, questionRepo: questionRepo}
}

func (s *answerService) SubmitAnswer(userID string, testID uint, req dto.SubmitAnswerRequest) (*dto.AnswerResultResponse, error) {
	// Ownership check doubles as the existence check.
	if _, err := s.testRepo.FindByIDAndUser(testID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTestNotFound
		}
		return nil, fmt.Errorf("error fetching test %d: %w", testID, err)
	}

	question, err := s.questionRepo.FindByID(req.QuestionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("error fetching question %d: %w", req.QuestionID, err)
	}

	tq, err := s.testRepo.FindTestQuestion(testID, req.QuestionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("error fetching test question: %w", err)
	}

	isCorrect := req.Answer == question.CorrectAnswer
	now := time.Now()

	answer := req.Answer
	tq.UserAnswer = &answer
	tq.IsCorrect = &isCorrect
	tq.TimeSpentSeconds = req.TimeSpentSeconds
	tq.AnsweredAt = &now

	if err := s.testRepo.SaveTestQuestion(tq); err != nil {
		log.Error().Err(err).Uint("testID", testID).Uint("questionID", req.QuestionID).Msg("Failed to record answer")
		return nil, fmt.Errorf("failed to record answer: %w", err)
	}

	var row dto.TestQuestionDTO
	if err := copier.Copy(&row, tq); err != nil {
		return nil, fmt.Errorf("error preparing answer response: %w", err)
	}

	return &dto.AnswerResultResponse{
		TestQuestion:  row,
		IsCorrect:     isCorrect,
		CorrectAnswer: question.CorrectAnswer,
	}, nil
}
