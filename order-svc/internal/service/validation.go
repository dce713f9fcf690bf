package service

import (
	"fmt"
	"strings"

	"foodie-hub/order-svc/internal/domain"
)

const (
	maxOrderLines   = 50
	maxLineQuantity = 1000
)

// ValidatePlaceOrder checks the shape of an order request before any store
// round-trip.
func ValidatePlaceOrder(req *domain.PlaceOrderRequest) error {
	if req == nil {
		return domain.InvalidInput("order payload is required")
	}
	if req.CustomerID <= 0 || req.RestaurantID <= 0 || len(req.Items) == 0 {
		return domain.InvalidInput("customer ID, restaurant ID, and items array are required")
	}
	if len(req.Items) > maxOrderLines {
		return domain.InvalidInput(fmt.Sprintf("a maximum of %d items is allowed", maxOrderLines))
	}
	for i, item := range req.Items {
		if item.MenuItemID <= 0 {
			return domain.InvalidInput(fmt.Sprintf("items[%d].menuItemId must be a valid menu item ID", i))
		}
		if item.Quantity <= 0 {
			return domain.InvalidInput(fmt.Sprintf("items[%d].quantity must be greater than 0", i))
		}
		if item.Quantity > maxLineQuantity {
			return domain.InvalidInput(fmt.Sprintf("items[%d].quantity must not exceed %d", i, maxLineQuantity))
		}
	}
	return nil
}

func validateRestaurant(rest *domain.Restaurant) error {
	if strings.TrimSpace(rest.Name) == "" || strings.TrimSpace(rest.Address) == "" || strings.TrimSpace(rest.Phone) == "" {
		return domain.InvalidInput("name, address, and phone are required fields")
	}
	return nil
}

func validateMenuItem(item *domain.MenuItem) error {
	if item.RestaurantID <= 0 || strings.TrimSpace(item.Name) == "" {
		return domain.InvalidInput("restaurant ID, name, and price are required fields")
	}
	if item.Price.IsNegative() {
		return domain.InvalidInput("price must not be negative")
	}
	if item.PreparationTime < 0 {
		return domain.InvalidInput("preparation time must not be negative")
	}
	return nil
}

func validateCustomer(customer *domain.Customer) error {
	if strings.TrimSpace(customer.Name) == "" || strings.TrimSpace(customer.Phone) == "" {
		return domain.InvalidInput("name and phone are required fields")
	}
	return nil
}
