package mocks

import (
	"context"

	"foodie-hub/order-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// SubmissionGuard is a mock type for the service.SubmissionGuard type
type SubmissionGuard struct {
	mock.Mock
}

func NewSubmissionGuard(t testingT) *SubmissionGuard {
	m := &SubmissionGuard{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *SubmissionGuard) Reserve(ctx context.Context, key string) (bool, error) {
	ret := _m.Called(ctx, key)
	return ret.Bool(0), ret.Error(1)
}

func (_m *SubmissionGuard) Complete(ctx context.Context, key string, orderID int) error {
	ret := _m.Called(ctx, key, orderID)
	return ret.Error(0)
}

func (_m *SubmissionGuard) Release(ctx context.Context, key string) error {
	ret := _m.Called(ctx, key)
	return ret.Error(0)
}

// OrderEventPublisher is a mock type for the service.OrderEventPublisher type
type OrderEventPublisher struct {
	mock.Mock
}

func NewOrderEventPublisher(t testingT) *OrderEventPublisher {
	m := &OrderEventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *OrderEventPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	ret := _m.Called(ctx, event)
	return ret.Error(0)
}

// QRGenerator is a mock type for the service.QRGenerator type
type QRGenerator struct {
	mock.Mock
}

func NewQRGenerator(t testingT) *QRGenerator {
	m := &QRGenerator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *QRGenerator) Generate(orderID int) ([]byte, error) {
	ret := _m.Called(orderID)
	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}
	return r0, ret.Error(1)
}
