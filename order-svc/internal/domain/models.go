package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Restaurant struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Address      string    `json:"address"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	CuisineType  string    `json:"cuisine_type"`
	OpeningHours string    `json:"opening_hours"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Customer struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type MenuItem struct {
	ID              int             `json:"id"`
	RestaurantID    int             `json:"restaurant_id"`
	RestaurantName  string          `json:"restaurant_name,omitempty"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	Category        string          `json:"category"`
	PreparationTime int             `json:"preparation_time"`
	ImageURL        string          `json:"image_url"`
	IsAvailable     bool            `json:"is_available"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Order is an order header. TotalAmount is fixed at creation as the sum of the
// line subtotals and is never recomputed.
type Order struct {
	ID                  int             `json:"id"`
	CustomerID          int             `json:"customer_id"`
	CustomerName        string          `json:"customer_name,omitempty"`
	RestaurantID        int             `json:"restaurant_id"`
	RestaurantName      string          `json:"restaurant_name,omitempty"`
	Status              OrderStatus     `json:"status"`
	TotalAmount         decimal.Decimal `json:"total_amount"`
	DeliveryAddress     string          `json:"delivery_address"`
	SpecialInstructions string          `json:"special_instructions"`
	ItemCount           int             `json:"item_count,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
	Items               []OrderLine     `json:"items,omitempty"`
}

// OrderLine carries the unit price captured when the order was placed.
type OrderLine struct {
	ID              int             `json:"id"`
	OrderID         int             `json:"order_id"`
	MenuItemID      int             `json:"menu_item_id"`
	MenuItemName    string          `json:"menu_item_name,omitempty"`
	Category        string          `json:"menu_item_category,omitempty"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	SpecialRequests string          `json:"special_requests"`
}

type PlaceOrderItem struct {
	MenuItemID      int    `json:"menuItemId"`
	Quantity        int    `json:"quantity"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

type PlaceOrderRequest struct {
	CustomerID          int              `json:"customerId"`
	RestaurantID        int              `json:"restaurantId"`
	Items               []PlaceOrderItem `json:"items"`
	DeliveryAddress     string           `json:"deliveryAddress,omitempty"`
	SpecialInstructions string           `json:"specialInstructions,omitempty"`

	// IdempotencyKey comes from the Idempotency-Key request header.
	IdempotencyKey string `json:"-"`
}

type PageRequest struct {
	Page  int
	Limit int
}

func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

type Page[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"total_pages"`
}

func NewPage[T any](items []T, total int, req PageRequest) Page[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := 0
	if req.Limit > 0 {
		totalPages = (total + req.Limit - 1) / req.Limit
	}
	return Page[T]{
		Items:      items,
		Total:      total,
		Page:       req.Page,
		Limit:      req.Limit,
		TotalPages: totalPages,
	}
}

type OrderFilter struct {
	PageRequest
	Status OrderStatus
}

type PopularItem struct {
	MenuItemID     int             `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	Category       string          `json:"category"`
	RestaurantName string          `json:"restaurant_name"`
	TotalOrdered   int             `json:"total_ordered"`
	OrderCount     int             `json:"order_count"`
}

type SalesRow struct {
	MenuItemName   string          `json:"menu_item_name"`
	Category       string          `json:"category"`
	RestaurantName string          `json:"restaurant_name"`
	TotalQuantity  int             `json:"total_quantity"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	UniqueOrders   int             `json:"unique_orders"`
	AvgUnitPrice   decimal.Decimal `json:"avg_unit_price"`
}

type SalesReport struct {
	StartDate string     `json:"start_date"`
	EndDate   string     `json:"end_date"`
	Rows      []SalesRow `json:"report"`
}

type OrderHistoryRow struct {
	Order
	CuisineType   string `json:"cuisine_type"`
	TotalItems    int    `json:"total_items"`
	TotalQuantity int    `json:"total_quantity"`
}
