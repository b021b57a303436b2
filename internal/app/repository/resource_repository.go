package repository

import (
	"github.com/Harry9429/Distro-app/internal/app/model"
	"gorm.io/gorm"
)

type ResourceRepository interface {
	FindAll(category string) ([]model.Resource, error)
}

type resourceRepository struct {
	db *gorm.DB
}

func NewResourceRepository(db *gorm.DB) ResourceRepository {
	return &resourceRepository{db: db}
}

func (r *resourceRepository) FindAll(category string) ([]model.Resource, error) {
	query := r.db.Order("title ASC")
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var resources []model.Resource
	if err := query.Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}
