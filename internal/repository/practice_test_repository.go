package repository

import (
	"github.com/AaronM524/SAT-Prep/internal/model"
	"gorm.io/gorm"
)

type PracticeTestRepository interface {
	FindByIDAndUser(id uint, userID string) (*model.PracticeTest, error)
	FindAllByUser(userID string) ([]model.PracticeTest, error)
	FindQuestionsByTestID(testID uint) ([]model.TestQuestion, error)
	FindTestQuestion(testID, questionID uint) (*model.TestQuestion, error)
	SaveTestQuestion(tq *model.TestQuestion) error
}

type practiceTestRepository struct {
	db *gorm.DB
}

func NewPracticeTestRepository(db *gorm.DB) PracticeTestRepository {
	return &practiceTestRepository{db: db}
}

func (r *practiceTestRepository) FindByIDAndUser(id uint, userID string) (*model.PracticeTest, error) {
	var test model.PracticeTest
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&test).Error
	if err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *practiceTestRepository) FindAllByUser(userID string) ([]model.PracticeTest, error) {
	var tests []model.PracticeTest
	err := r.db.Where("user_id = ?", userID).Order("started_at DESC").Find(&tests).Error
	return tests, err
}

func (r *practiceTestRepository) FindQuestionsByTestID(testID uint) ([]model.TestQuestion, error) {
	var questions []model.TestQuestion
	err := r.db.
		Preload("Question").
		Where("test_id = ?", testID).
		Order("order_index ASC").
		Find(&questions).Error
	return questions, err
}

func (r *practiceTestRepository) FindTestQuestion(testID, questionID uint) (*model.TestQuestion, error) {
	var tq model.TestQuestion
	err := r.db.Where("test_id = ? AND question_id = ?", testID, questionID).First(&tq).Error
	if err != nil {
		return nil, err
	}
	return &tq, nil
}

func (r *practiceTestRepository) SaveTestQuestion(tq *model.TestQuestion) error {
	return r.db.Save(tq).Error
}
