package service

import (
	"context"
	"strings"

	"github.com/seaside-kitchen/storefront/internal/cache"
	"github.com/seaside-kitchen/storefront/internal/constants"
	"github.com/seaside-kitchen/storefront/internal/logger"
	"github.com/seaside-kitchen/storefront/internal/models"
	"github.com/seaside-kitchen/storefront/internal/repository"
)

// SaveCategoryInput carries the writable fields of a category.
type SaveCategoryInput struct {
	Name      string
	ImageURL  string
	SortOrder int
	IsActive  bool
}

// CategoryService manages menu categories.
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a category service.
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// List returns categories, optionally only active ones.
func (s *CategoryService) List(onlyActive bool) ([]models.Category, error) {
	return s.categoryRepo.List(onlyActive)
}

// Get fetches one category.
func (s *CategoryService) Get(id uint) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

// Create validates and inserts a category.
func (s *CategoryService) Create(ctx context.Context, input SaveCategoryInput) (*models.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrCategoryNameRequired
	}
	count, err := s.categoryRepo.CountByName(name, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrCategoryNameTaken
	}
	category := &models.Category{
		Name:      name,
		ImageURL:  strings.TrimSpace(input.ImageURL),
		SortOrder: input.SortOrder,
		IsActive:  input.IsActive,
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return category, nil
}

// Update validates and saves a category.
func (s *CategoryService) Update(ctx context.Context, id uint, input SaveCategoryInput) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrCategoryNameRequired
	}
	count, err := s.categoryRepo.CountByName(name, &id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrCategoryNameTaken
	}
	category.Name = name
	category.ImageURL = strings.TrimSpace(input.ImageURL)
	category.SortOrder = input.SortOrder
	category.IsActive = input.IsActive
	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return category, nil
}

// Delete removes a category with no menu items under it.
func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}
	count, err := s.categoryRepo.CountMenuItems(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}
	if err := s.categoryRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *CategoryService) invalidateCache(ctx context.Context) {
	if err := cache.Del(ctx, constants.CacheKeyMenuList, constants.CacheKeyCategoryList); err != nil {
		logger.Warnw("category_cache_invalidate_failed", "error", err)
	}
}
