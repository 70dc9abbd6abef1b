package service

import (
	"context"
	"strings"
	"time"

	"github.com/seaside-kitchen/storefront/internal/cache"
	"github.com/seaside-kitchen/storefront/internal/config"
	"github.com/seaside-kitchen/storefront/internal/constants"
	"github.com/seaside-kitchen/storefront/internal/logger"
	"github.com/seaside-kitchen/storefront/internal/models"
	"github.com/seaside-kitchen/storefront/internal/repository"
)

// MenuSection is one category with its available items.
type MenuSection struct {
	Category models.Category   `json:"category"`
	Items    []models.MenuItem `json:"items"`
}

// SaveMenuItemInput carries the writable fields of a menu item.
type SaveMenuItemInput struct {
	CategoryID  uint
	Name        string
	Description string
	PricingMode string
	PriceAmount models.Money
	Variations  models.PriceMap
	ImageURL    string
	IsAvailable bool
	SortOrder   int
}

// MenuService serves the public menu and the staff catalog operations.
type MenuService struct {
	cfg          *config.Config
	menuRepo     repository.MenuItemRepository
	categoryRepo repository.CategoryRepository
}

// NewMenuService creates a menu service.
func NewMenuService(cfg *config.Config, menuRepo repository.MenuItemRepository, categoryRepo repository.CategoryRepository) *MenuService {
	return &MenuService{
		cfg:          cfg,
		menuRepo:     menuRepo,
		categoryRepo: categoryRepo,
	}
}

// PublicMenu returns active categories with their available items, cached
// for the configured TTL.
func (s *MenuService) PublicMenu(ctx context.Context) ([]MenuSection, error) {
	var cached []MenuSection
	if hit, err := cache.GetJSON(ctx, constants.CacheKeyMenuList, &cached); err == nil && hit {
		return cached, nil
	} else if err != nil {
		logger.Warnw("menu_cache_read_failed", "error", err)
	}

	categories, err := s.categoryRepo.List(true)
	if err != nil {
		return nil, err
	}
	items, _, err := s.menuRepo.List(repository.MenuItemListFilter{OnlyAvailable: true})
	if err != nil {
		return nil, err
	}

	itemsByCategory := make(map[uint][]models.MenuItem, len(categories))
	for _, item := range items {
		itemsByCategory[item.CategoryID] = append(itemsByCategory[item.CategoryID], item)
	}

	sections := make([]MenuSection, 0, len(categories))
	for _, category := range categories {
		sections = append(sections, MenuSection{
			Category: category,
			Items:    itemsByCategory[category.ID],
		})
	}

	ttl := 60 * time.Second
	if s.cfg != nil && s.cfg.Cache.MenuTTLSeconds > 0 {
		ttl = time.Duration(s.cfg.Cache.MenuTTLSeconds) * time.Second
	}
	if err := cache.SetJSON(ctx, constants.CacheKeyMenuList, sections, ttl); err != nil {
		logger.Warnw("menu_cache_write_failed", "error", err)
	}
	return sections, nil
}

// GetItem fetches one menu item.
func (s *MenuService) GetItem(id uint) (*models.MenuItem, error) {
	item, err := s.menuRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}

// List returns menu items for the staff catalog view.
func (s *MenuService) List(filter repository.MenuItemListFilter) ([]models.MenuItem, int64, error) {
	return s.menuRepo.List(filter)
}

// CreateItem validates and inserts a menu item.
func (s *MenuService) CreateItem(ctx context.Context, input SaveMenuItemInput) (*models.MenuItem, error) {
	item, err := s.buildItem(&models.MenuItem{}, input)
	if err != nil {
		return nil, err
	}
	if err := s.menuRepo.Create(item); err != nil {
		return nil, err
	}
	s.invalidateMenuCache(ctx)
	return item, nil
}

// UpdateItem validates and saves a menu item.
func (s *MenuService) UpdateItem(ctx context.Context, id uint, input SaveMenuItemInput) (*models.MenuItem, error) {
	existing, err := s.menuRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrItemNotFound
	}
	item, err := s.buildItem(existing, input)
	if err != nil {
		return nil, err
	}
	if err := s.menuRepo.Update(item); err != nil {
		return nil, err
	}
	s.invalidateMenuCache(ctx)
	return item, nil
}

// DeleteItem removes a menu item.
func (s *MenuService) DeleteItem(ctx context.Context, id uint) error {
	existing, err := s.menuRepo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrItemNotFound
	}
	if err := s.menuRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateMenuCache(ctx)
	return nil
}

// SetAvailability toggles whether an item can be ordered. Carts holding
// the item keep their lines; ordering is blocked at submission instead.
func (s *MenuService) SetAvailability(ctx context.Context, id uint, available bool) error {
	existing, err := s.menuRepo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrItemNotFound
	}
	if err := s.menuRepo.SetAvailability(id, available); err != nil {
		return err
	}
	s.invalidateMenuCache(ctx)
	return nil
}

func (s *MenuService) buildItem(item *models.MenuItem, input SaveMenuItemInput) (*models.MenuItem, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrItemNameRequired
	}
	category, err := s.categoryRepo.GetByID(input.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	item.CategoryID = input.CategoryID
	item.Name = name
	item.Description = strings.TrimSpace(input.Description)
	item.PricingMode = strings.TrimSpace(input.PricingMode)
	item.PriceAmount = input.PriceAmount
	item.Variations = input.Variations
	item.ImageURL = strings.TrimSpace(input.ImageURL)
	item.IsAvailable = input.IsAvailable
	item.SortOrder = input.SortOrder

	if err := ValidatePricing(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) invalidateMenuCache(ctx context.Context) {
	if err := cache.Del(ctx, constants.CacheKeyMenuList, constants.CacheKeyCategoryList); err != nil {
		logger.Warnw("menu_cache_invalidate_failed", "error", err)
	}
}
