package service

import (
	"fmt"

	"github.com/AaronM524/SAT-Prep/internal/dto"
	"github.com/AaronM524/SAT-Prep/internal/repository"
	"github.com/rs/zerolog/log"
)

type CatalogService interface {
	GetCatalog() (*dto.CatalogResponse, error)
	GetQuestions(filter repository.QuestionFilter, limit int) (*dto.QuestionListResponse, error)
}

type catalogService struct {
	catalogRepo  repository.CatalogRepository
	questionRepo repository.QuestionRepository
}

func NewCatalogService(catalogRepo repository.CatalogRepository, questionRepo repository.QuestionRepository) CatalogService {
	return &catalogService{catalogRepo: catalogRepo, questionRepo: questionRepo}
}

func (s *catalogService) GetCatalog() (*dto.CatalogResponse, error) {
	categories, err := s.catalogRepo.FindAllCategories()
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch categories")
		return nil, fmt.Errorf("error fetching categories: %w", err)
	}
	topics, err := s.catalogRepo.FindAllTopics()
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch topics")
		return nil, fmt.Errorf("error fetching topics: %w", err)
	}
	return &dto.CatalogResponse{Categories: categories, Topics: topics}, nil
}

func (s *catalogService) GetQuestions(filter repository.QuestionFilter, limit int) (*dto.QuestionListResponse, error) {
	questions, err := s.questionRepo.FindByFilter(filter, limit)
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch questions")
		return nil, fmt.Errorf("error fetching questions: %w", err)
	}
	return &dto.QuestionListResponse{Questions: questions}, nil
}
