package mocks

import (
	"context"

	"foodie-hub/order-svc/internal/domain"
	"foodie-hub/order-svc/internal/service"

	"github.com/stretchr/testify/mock"
)

// OrderStore is a mock type for the service.OrderStore type
type OrderStore struct {
	mock.Mock
}

func NewOrderStore(t testingT) *OrderStore {
	m := &OrderStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *OrderStore) CustomerExists(ctx context.Context, id int) (bool, error) {
	ret := _m.Called(ctx, id)
	return ret.Bool(0), ret.Error(1)
}

func (_m *OrderStore) RestaurantIsActive(ctx context.Context, id int) (bool, error) {
	ret := _m.Called(ctx, id)
	return ret.Bool(0), ret.Error(1)
}

func (_m *OrderStore) GetMenuItem(ctx context.Context, id int) (*domain.MenuItem, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.MenuItem)
	}
	return r0, ret.Error(1)
}

func (_m *OrderStore) BeginTx(ctx context.Context) (service.OrderTx, error) {
	ret := _m.Called(ctx)
	var r0 service.OrderTx
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(service.OrderTx)
	}
	return r0, ret.Error(1)
}

func (_m *OrderStore) GetOrder(ctx context.Context, id int) (*domain.Order, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderStore) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, int, error) {
	ret := _m.Called(ctx, filter)
	var r0 []domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Order)
	}
	return r0, ret.Int(1), ret.Error(2)
}

func (_m *OrderStore) ListOrdersByCustomer(ctx context.Context, customerID int, status domain.OrderStatus) ([]domain.Order, error) {
	ret := _m.Called(ctx, customerID, status)
	var r0 []domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderStore) ListOrdersByRestaurant(ctx context.Context, restaurantID int, status domain.OrderStatus) ([]domain.Order, error) {
	ret := _m.Called(ctx, restaurantID, status)
	var r0 []domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderStore) RecentOrders(ctx context.Context, limit int) ([]domain.Order, error) {
	ret := _m.Called(ctx, limit)
	var r0 []domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Order)
	}
	return r0, ret.Error(1)
}

// OrderTx is a mock type for the service.OrderTx type
type OrderTx struct {
	mock.Mock
}

func NewOrderTx(t testingT) *OrderTx {
	m := &OrderTx{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *OrderTx) LockMenuItem(ctx context.Context, id int) (*domain.MenuItem, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.MenuItem)
	}
	return r0, ret.Error(1)
}

func (_m *OrderTx) InsertOrder(ctx context.Context, order *domain.Order) error {
	ret := _m.Called(ctx, order)
	return ret.Error(0)
}

func (_m *OrderTx) InsertOrderLine(ctx context.Context, line *domain.OrderLine) error {
	ret := _m.Called(ctx, line)
	return ret.Error(0)
}

func (_m *OrderTx) LockOrder(ctx context.Context, id int) (*domain.Order, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderTx) UpdateOrderStatus(ctx context.Context, order *domain.Order) error {
	ret := _m.Called(ctx, order)
	return ret.Error(0)
}

func (_m *OrderTx) DeleteOrder(ctx context.Context, id int) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func (_m *OrderTx) Commit() error {
	ret := _m.Called()
	return ret.Error(0)
}

func (_m *OrderTx) Rollback() error {
	ret := _m.Called()
	return ret.Error(0)
}
