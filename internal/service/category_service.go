package service

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"eventhub/internal/errors"
	"eventhub/internal/model"
	"eventhub/internal/repository"
)

// CategoryService handles event categories.
type CategoryService interface {
	List(ctx context.Context) ([]model.Category, error)
	Create(ctx context.Context, name string) (*model.Category, error)
	Delete(ctx context.Context, id uint) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a new category service.
func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.categoryRepo.List(ctx)
}

// Create adds a category with a unique name.
func (s *categoryService) Create(ctx context.Context, name string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.NewValidationError("category name is required")
	}

	if _, err := s.categoryRepo.FindByName(ctx, name); err == nil {
		return nil, errors.ErrDuplicateCategory
	} else if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check category: %w", err)
	}

	category := &model.Category{Name: name}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		if repository.IsDuplicateEntry(err) {
			return nil, errors.ErrDuplicateCategory
		}
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

// Delete removes a category. Its events are detached, not deleted.
func (s *categoryService) Delete(ctx context.Context, id uint) error {
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrCategoryNotFound
		}
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
