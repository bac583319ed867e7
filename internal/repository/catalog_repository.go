package repository

import (
	"github.com/AaronM524/SAT-Prep/internal/model"
	"gorm.io/gorm"
)

type CatalogRepository interface {
	FindAllCategories() ([]model.Category, error)
	FindAllTopics() ([]model.Topic, error)
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) FindAllCategories() ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *catalogRepository) FindAllTopics() ([]model.Topic, error) {
	var topics []model.Topic
	if err := r.db.Order("name ASC").Find(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}
