package mocks

import (
	"context"

	"foodie-hub/order-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// RestaurantServiceInterface is a mock type for the service.RestaurantServiceInterface type
type RestaurantServiceInterface struct {
	mock.Mock
}

func NewRestaurantServiceInterface(t testingT) *RestaurantServiceInterface {
	m := &RestaurantServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *RestaurantServiceInterface) Create(ctx context.Context, rest *domain.Restaurant) error {
	return _m.Called(ctx, rest).Error(0)
}

func (_m *RestaurantServiceInterface) List(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Restaurant], error) {
	ret := _m.Called(ctx, page)
	return ret.Get(0).(domain.Page[domain.Restaurant]), ret.Error(1)
}

func (_m *RestaurantServiceInterface) Get(ctx context.Context, id int) (*domain.Restaurant, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *RestaurantServiceInterface) Update(ctx context.Context, rest *domain.Restaurant) error {
	return _m.Called(ctx, rest).Error(0)
}

func (_m *RestaurantServiceInterface) Delete(ctx context.Context, id int) (*domain.Restaurant, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *RestaurantServiceInterface) Menu(ctx context.Context, id int, includeUnavailable bool) (*domain.Restaurant, []domain.MenuItem, error) {
	ret := _m.Called(ctx, id, includeUnavailable)
	var r0 *domain.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Restaurant)
	}
	var r1 []domain.MenuItem
	if ret.Get(1) != nil {
		r1 = ret.Get(1).([]domain.MenuItem)
	}
	return r0, r1, ret.Error(2)
}

// MenuServiceInterface is a mock type for the service.MenuServiceInterface type
type MenuServiceInterface struct {
	mock.Mock
}

func NewMenuServiceInterface(t testingT) *MenuServiceInterface {
	m := &MenuServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *MenuServiceInterface) Create(ctx context.Context, item *domain.MenuItem) error {
	return _m.Called(ctx, item).Error(0)
}

func (_m *MenuServiceInterface) Get(ctx context.Context, id int) (*domain.MenuItem, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.MenuItem)
	}
	return r0, ret.Error(1)
}

func (_m *MenuServiceInterface) Update(ctx context.Context, item *domain.MenuItem) error {
	return _m.Called(ctx, item).Error(0)
}

func (_m *MenuServiceInterface) Delete(ctx context.Context, id int) error {
	return _m.Called(ctx, id).Error(0)
}

func (_m *MenuServiceInterface) ToggleAvailability(ctx context.Context, id int) (*domain.MenuItem, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.MenuItem)
	}
	return r0, ret.Error(1)
}

func (_m *MenuServiceInterface) UpdateImage(ctx context.Context, id int, imageURL string) error {
	return _m.Called(ctx, id, imageURL).Error(0)
}

func (_m *MenuServiceInterface) SearchByCategory(ctx context.Context, category string) ([]domain.MenuItem, error) {
	ret := _m.Called(ctx, category)
	var r0 []domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.MenuItem)
	}
	return r0, ret.Error(1)
}

// CustomerServiceInterface is a mock type for the service.CustomerServiceInterface type
type CustomerServiceInterface struct {
	mock.Mock
}

func NewCustomerServiceInterface(t testingT) *CustomerServiceInterface {
	m := &CustomerServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *CustomerServiceInterface) Create(ctx context.Context, customer *domain.Customer) error {
	return _m.Called(ctx, customer).Error(0)
}

func (_m *CustomerServiceInterface) List(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Customer], error) {
	ret := _m.Called(ctx, page)
	return ret.Get(0).(domain.Page[domain.Customer]), ret.Error(1)
}

func (_m *CustomerServiceInterface) Get(ctx context.Context, id int) (*domain.Customer, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Customer)
	}
	return r0, ret.Error(1)
}

func (_m *CustomerServiceInterface) GetByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	ret := _m.Called(ctx, phone)
	var r0 *domain.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Customer)
	}
	return r0, ret.Error(1)
}

func (_m *CustomerServiceInterface) Update(ctx context.Context, customer *domain.Customer) error {
	return _m.Called(ctx, customer).Error(0)
}

func (_m *CustomerServiceInterface) Delete(ctx context.Context, id int) error {
	return _m.Called(ctx, id).Error(0)
}

func (_m *CustomerServiceInterface) Search(ctx context.Context, name string) ([]domain.Customer, error) {
	ret := _m.Called(ctx, name)
	var r0 []domain.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Customer)
	}
	return r0, ret.Error(1)
}

// OrderServiceInterface is a mock type for the service.OrderServiceInterface type
type OrderServiceInterface struct {
	mock.Mock
}

func NewOrderServiceInterface(t testingT) *OrderServiceInterface {
	m := &OrderServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *OrderServiceInterface) Place(ctx context.Context, req *domain.PlaceOrderRequest) (*domain.Order, error) {
	ret := _m.Called(ctx, req)
	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) Get(ctx context.Context, id int) (*domain.Order, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) List(ctx context.Context, filter domain.OrderFilter) (domain.Page[domain.Order], error) {
	ret := _m.Called(ctx, filter)
	return ret.Get(0).(domain.Page[domain.Order]), ret.Error(1)
}

func (_m *OrderServiceInterface) UpdateStatus(ctx context.Context, id int, status string) (*domain.Order, error) {
	ret := _m.Called(ctx, id, status)
	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) Delete(ctx context.Context, id int) (*domain.Order, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) ByCustomer(ctx context.Context, customerID int, status string) (*domain.Customer, []domain.Order, error) {
	ret := _m.Called(ctx, customerID, status)
	var r0 *domain.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Customer)
	}
	var r1 []domain.Order
	if ret.Get(1) != nil {
		r1 = ret.Get(1).([]domain.Order)
	}
	return r0, r1, ret.Error(2)
}

func (_m *OrderServiceInterface) ByRestaurant(ctx context.Context, restaurantID int, status string) (*domain.Restaurant, []domain.Order, error) {
	ret := _m.Called(ctx, restaurantID, status)
	var r0 *domain.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Restaurant)
	}
	var r1 []domain.Order
	if ret.Get(1) != nil {
		r1 = ret.Get(1).([]domain.Order)
	}
	return r0, r1, ret.Error(2)
}

func (_m *OrderServiceInterface) Recent(ctx context.Context, limit int) ([]domain.Order, error) {
	ret := _m.Called(ctx, limit)
	var r0 []domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) ReceiptQRCode(ctx context.Context, id int) ([]byte, error) {
	ret := _m.Called(ctx, id)
	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}
	return r0, ret.Error(1)
}

// ReportServiceInterface is a mock type for the service.ReportServiceInterface type
type ReportServiceInterface struct {
	mock.Mock
}

func NewReportServiceInterface(t testingT) *ReportServiceInterface {
	m := &ReportServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *ReportServiceInterface) PopularMenuItems(ctx context.Context, limit int) ([]domain.PopularItem, error) {
	ret := _m.Called(ctx, limit)
	var r0 []domain.PopularItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.PopularItem)
	}
	return r0, ret.Error(1)
}

func (_m *ReportServiceInterface) SalesReport(ctx context.Context, startDate, endDate string) (*domain.SalesReport, error) {
	ret := _m.Called(ctx, startDate, endDate)
	var r0 *domain.SalesReport
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.SalesReport)
	}
	return r0, ret.Error(1)
}

func (_m *ReportServiceInterface) CustomerOrderHistory(ctx context.Context, customerID int) (*domain.Customer, []domain.OrderHistoryRow, error) {
	ret := _m.Called(ctx, customerID)
	var r0 *domain.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Customer)
	}
	var r1 []domain.OrderHistoryRow
	if ret.Get(1) != nil {
		r1 = ret.Get(1).([]domain.OrderHistoryRow)
	}
	return r0, r1, ret.Error(2)
}
