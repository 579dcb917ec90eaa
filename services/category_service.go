package services

import (
	"errors"

	"literary-cms/helper"
	"literary-cms/models"
	"literary-cms/repositories"

	"gorm.io/gorm"
)

type CategoryService interface {
	CreateCategory(req models.CreateCategoryRequest, actor models.User) (*models.Category, error)
	GetCategories() ([]models.Category, error)
	GetCategory(id uint) (*models.Category, error)
	GetCategoryBySlug(slug string) (*models.Category, error)
}

type categoryService struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) CreateCategory(req models.CreateCategoryRequest, actor models.User) (*models.Category, error) {
	if !actor.Role.IsAdmin() {
		return nil, models.ErrorForbidden{Message: "only admins can create categories"}
	}

	existing, err := s.categoryRepo.GetByName(req.Name)
	if err == nil && existing != nil && existing.ID != 0 {
		return nil, models.ErrorConflict{Message: "category already exists"}
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category := &models.Category{
		Name:        req.Name,
		Slug:        helper.Slugify(req.Name),
		Description: req.Description,
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}

	return category, nil
}

func (s *categoryService) GetCategories() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

func (s *categoryService) GetCategory(id uint) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err, "category not found")
	}
	return category, nil
}

func (s *categoryService) GetCategoryBySlug(slug string) (*models.Category, error) {
	category, err := s.categoryRepo.GetBySlug(slug)
	if err != nil {
		return nil, notFoundOr(err, "category not found")
	}
	return category, nil
}
