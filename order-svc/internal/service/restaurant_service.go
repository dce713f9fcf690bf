package service

import (
	"context"

	"foodie-hub/order-svc/internal/domain"
)

type RestaurantService struct {
	repo RestaurantRepository
	menu MenuItemRepository
}

func NewRestaurantService(repo RestaurantRepository, menu MenuItemRepository) *RestaurantService {
	return &RestaurantService{repo: repo, menu: menu}
}

func (s *RestaurantService) Create(ctx context.Context, rest *domain.Restaurant) error {
	if err := validateRestaurant(rest); err != nil {
		return err
	}
	return s.repo.CreateRestaurant(ctx, rest)
}

func (s *RestaurantService) List(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Restaurant], error) {
	restaurants, total, err := s.repo.ListRestaurants(ctx, page)
	if err != nil {
		return domain.Page[domain.Restaurant]{}, err
	}
	return domain.NewPage(restaurants, total, page), nil
}

func (s *RestaurantService) Get(ctx context.Context, id int) (*domain.Restaurant, error) {
	return s.repo.GetRestaurant(ctx, id)
}

func (s *RestaurantService) Update(ctx context.Context, rest *domain.Restaurant) error {
	if err := validateRestaurant(rest); err != nil {
		return err
	}
	return s.repo.UpdateRestaurant(ctx, rest)
}

// Delete soft-deletes the restaurant so that orders and menu items keep
// pointing at it.
func (s *RestaurantService) Delete(ctx context.Context, id int) (*domain.Restaurant, error) {
	return s.repo.DeactivateRestaurant(ctx, id)
}

func (s *RestaurantService) Menu(ctx context.Context, id int, includeUnavailable bool) (*domain.Restaurant, []domain.MenuItem, error) {
	rest, err := s.repo.GetRestaurant(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	items, err := s.menu.ListMenuItems(ctx, id, includeUnavailable)
	if err != nil {
		return nil, nil, err
	}
	return rest, items, nil
}
