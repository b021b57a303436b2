package service

import (
	"github.com/Harry9429/Distro-app/internal/app/model"
	"github.com/Harry9429/Distro-app/internal/app/repository"
)

type ResourceService interface {
	ListResources(category string) ([]model.Resource, error)
}

type resourceService struct {
	resourceRepo repository.ResourceRepository
}

func NewResourceService(resourceRepo repository.ResourceRepository) ResourceService {
	return &resourceService{resourceRepo: resourceRepo}
}

func (s *resourceService) ListResources(category string) ([]model.Resource, error) {
	return s.resourceRepo.FindAll(category)
}
