package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	EventOrderCreated       = "order_created"
	EventOrderStatusChanged = "order_status_changed"
	EventOrderCancelled     = "order_cancelled"
)

type OrderEvent struct {
	Type         string          `json:"type"`
	OrderID      int             `json:"order_id"`
	CustomerID   int             `json:"customer_id"`
	RestaurantID int             `json:"restaurant_id"`
	Status       OrderStatus     `json:"status"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Timestamp    time.Time       `json:"timestamp"`
}

func NewOrderEvent(eventType string, order *Order) OrderEvent {
	return OrderEvent{
		Type:         eventType,
		OrderID:      order.ID,
		CustomerID:   order.CustomerID,
		RestaurantID: order.RestaurantID,
		Status:       order.Status,
		TotalAmount:  order.TotalAmount,
		Timestamp:    time.Now().UTC(),
	}
}
