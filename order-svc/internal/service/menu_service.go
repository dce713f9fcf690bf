package service

import (
	"context"
	"strings"

	"foodie-hub/order-svc/internal/domain"
)

type MenuService struct {
	repo        MenuItemRepository
	restaurants RestaurantRepository
}

func NewMenuService(repo MenuItemRepository, restaurants RestaurantRepository) *MenuService {
	return &MenuService{repo: repo, restaurants: restaurants}
}

func (s *MenuService) Create(ctx context.Context, item *domain.MenuItem) error {
	if err := validateMenuItem(item); err != nil {
		return err
	}
	if _, err := s.restaurants.GetRestaurant(ctx, item.RestaurantID); err != nil {
		return err
	}
	// New items start orderable; availability is changed through the toggle.
	item.IsAvailable = true
	return s.repo.CreateMenuItem(ctx, item)
}

func (s *MenuService) Get(ctx context.Context, id int) (*domain.MenuItem, error) {
	return s.repo.GetMenuItem(ctx, id)
}

// Update replaces the editable fields of a menu item. Orders already placed keep
// the unit price they were created with.
func (s *MenuService) Update(ctx context.Context, item *domain.MenuItem) error {
	existing, err := s.repo.GetMenuItem(ctx, item.ID)
	if err != nil {
		return err
	}
	item.RestaurantID = existing.RestaurantID
	if err := validateMenuItem(item); err != nil {
		return err
	}
	return s.repo.UpdateMenuItem(ctx, item)
}

func (s *MenuService) Delete(ctx context.Context, id int) error {
	return s.repo.DeleteMenuItem(ctx, id)
}

func (s *MenuService) ToggleAvailability(ctx context.Context, id int) (*domain.MenuItem, error) {
	return s.repo.ToggleAvailability(ctx, id)
}

func (s *MenuService) UpdateImage(ctx context.Context, id int, imageURL string) error {
	return s.repo.UpdateMenuItemImage(ctx, id, imageURL)
}

func (s *MenuService) SearchByCategory(ctx context.Context, category string) ([]domain.MenuItem, error) {
	if strings.TrimSpace(category) == "" {
		return nil, domain.InvalidInput("category parameter is required")
	}
	return s.repo.SearchByCategory(ctx, category)
}
