package repository

import (
	"github.com/AaronM524/SAT-Prep/internal/model"
	"gorm.io/gorm"
)

// QuestionFilter narrows catalog queries. Nil fields are not applied.
type QuestionFilter struct {
	CategoryID *uint
	TopicID    *uint
	Difficulty *int
}

type QuestionRepository interface {
	FindByID(id uint) (*model.Question, error)
	FindByFilter(filter QuestionFilter, limit int) ([]model.Question, error)
	// FindIDsByFilter returns the full eligible id pool, deliberately
	// unbounded so test generation can randomize over all of it.
	FindIDsByFilter(filter QuestionFilter) ([]uint, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func applyFilter(query *gorm.DB, filter QuestionFilter) *gorm.DB {
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.TopicID != nil {
		query = query.Where("topic_id = ?", *filter.TopicID)
	}
	if filter.Difficulty != nil {
		query = query.Where("difficulty = ?", *filter.Difficulty)
	}
	return query
}

func (r *questionRepository) FindByFilter(filter QuestionFilter, limit int) ([]model.Question, error) {
	var questions []model.Question
	query := applyFilter(r.db.Model(&model.Question{}), filter)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindIDsByFilter(filter QuestionFilter) ([]uint, error) {
	var ids []uint
	query := applyFilter(r.db.Model(&model.Question{}), filter)
	if err := query.Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
