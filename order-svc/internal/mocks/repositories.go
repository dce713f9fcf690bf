package mocks

import (
	"context"
	"time"

	"foodie-hub/order-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// RestaurantRepository is a mock type for the service.RestaurantRepository type
type RestaurantRepository struct {
	mock.Mock
}

func NewRestaurantRepository(t testingT) *RestaurantRepository {
	m := &RestaurantRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *RestaurantRepository) CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	ret := _m.Called(ctx, rest)
	return ret.Error(0)
}

func (_m *RestaurantRepository) ListRestaurants(ctx context.Context, page domain.PageRequest) ([]domain.Restaurant, int, error) {
	ret := _m.Called(ctx, page)
	var r0 []domain.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Restaurant)
	}
	return r0, ret.Int(1), ret.Error(2)
}

func (_m *RestaurantRepository) GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *RestaurantRepository) UpdateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	ret := _m.Called(ctx, rest)
	return ret.Error(0)
}

func (_m *RestaurantRepository) DeactivateRestaurant(ctx context.Context, id int) (*domain.Restaurant, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Restaurant)
	}
	return r0, ret.Error(1)
}

// MenuItemRepository is a mock type for the service.MenuItemRepository type
type MenuItemRepository struct {
	mock.Mock
}

func NewMenuItemRepository(t testingT) *MenuItemRepository {
	m := &MenuItemRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *MenuItemRepository) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	ret := _m.Called(ctx, item)
	return ret.Error(0)
}

func (_m *MenuItemRepository) GetMenuItem(ctx context.Context, id int) (*domain.MenuItem, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.MenuItem)
	}
	return r0, ret.Error(1)
}

func (_m *MenuItemRepository) ListMenuItems(ctx context.Context, restaurantID int, includeUnavailable bool) ([]domain.MenuItem, error) {
	ret := _m.Called(ctx, restaurantID, includeUnavailable)
	var r0 []domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.MenuItem)
	}
	return r0, ret.Error(1)
}

func (_m *MenuItemRepository) UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	ret := _m.Called(ctx, item)
	return ret.Error(0)
}

func (_m *MenuItemRepository) DeleteMenuItem(ctx context.Context, id int) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func (_m *MenuItemRepository) ToggleAvailability(ctx context.Context, id int) (*domain.MenuItem, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.MenuItem)
	}
	return r0, ret.Error(1)
}

func (_m *MenuItemRepository) UpdateMenuItemImage(ctx context.Context, id int, imageURL string) error {
	ret := _m.Called(ctx, id, imageURL)
	return ret.Error(0)
}

func (_m *MenuItemRepository) SearchByCategory(ctx context.Context, category string) ([]domain.MenuItem, error) {
	ret := _m.Called(ctx, category)
	var r0 []domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.MenuItem)
	}
	return r0, ret.Error(1)
}

// CustomerRepository is a mock type for the service.CustomerRepository type
type CustomerRepository struct {
	mock.Mock
}

func NewCustomerRepository(t testingT) *CustomerRepository {
	m := &CustomerRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *CustomerRepository) CreateCustomer(ctx context.Context, customer *domain.Customer) error {
	ret := _m.Called(ctx, customer)
	return ret.Error(0)
}

func (_m *CustomerRepository) ListCustomers(ctx context.Context, page domain.PageRequest) ([]domain.Customer, int, error) {
	ret := _m.Called(ctx, page)
	var r0 []domain.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Customer)
	}
	return r0, ret.Int(1), ret.Error(2)
}

func (_m *CustomerRepository) GetCustomer(ctx context.Context, id int) (*domain.Customer, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Customer)
	}
	return r0, ret.Error(1)
}

func (_m *CustomerRepository) GetCustomerByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	ret := _m.Called(ctx, phone)
	var r0 *domain.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Customer)
	}
	return r0, ret.Error(1)
}

func (_m *CustomerRepository) UpdateCustomer(ctx context.Context, customer *domain.Customer) error {
	ret := _m.Called(ctx, customer)
	return ret.Error(0)
}

func (_m *CustomerRepository) DeleteCustomer(ctx context.Context, id int) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func (_m *CustomerRepository) SearchCustomers(ctx context.Context, name string) ([]domain.Customer, error) {
	ret := _m.Called(ctx, name)
	var r0 []domain.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Customer)
	}
	return r0, ret.Error(1)
}

// ReportRepository is a mock type for the service.ReportRepository type
type ReportRepository struct {
	mock.Mock
}

func NewReportRepository(t testingT) *ReportRepository {
	m := &ReportRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *ReportRepository) PopularMenuItems(ctx context.Context, limit int) ([]domain.PopularItem, error) {
	ret := _m.Called(ctx, limit)
	var r0 []domain.PopularItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.PopularItem)
	}
	return r0, ret.Error(1)
}

func (_m *ReportRepository) SalesReport(ctx context.Context, from, to *time.Time) ([]domain.SalesRow, error) {
	ret := _m.Called(ctx, from, to)
	var r0 []domain.SalesRow
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.SalesRow)
	}
	return r0, ret.Error(1)
}

func (_m *ReportRepository) CustomerOrderHistory(ctx context.Context, customerID int) ([]domain.OrderHistoryRow, error) {
	ret := _m.Called(ctx, customerID)
	var r0 []domain.OrderHistoryRow
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.OrderHistoryRow)
	}
	return r0, ret.Error(1)
}
