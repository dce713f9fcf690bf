package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"foodie-hub/order-svc/internal/service"

	"github.com/gorilla/mux"
)

const serviceName = "order-svc"

type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	Restaurants service.RestaurantServiceInterface
	Menu        service.MenuServiceInterface
	Customers   service.CustomerServiceInterface
	Orders      service.OrderServiceInterface
	Reports     service.ReportServiceInterface

	DB        Pinger
	UploadDir string
	Logger    *slog.Logger
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.health).Methods("GET")

	r.HandleFunc("/api/restaurants", h.listRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants", h.createRestaurant).Methods("POST")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}", h.updateRestaurant).Methods("PUT")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}", h.deleteRestaurant).Methods("DELETE")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}/menu", h.getRestaurantMenu).Methods("GET")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}/orders", h.getRestaurantOrders).Methods("GET")

	r.HandleFunc("/api/menu", h.createMenuItem).Methods("POST")
	r.HandleFunc("/api/menu/search/category", h.searchMenuByCategory).Methods("GET")
	r.HandleFunc("/api/menu/popular/items", h.getPopularMenuItems).Methods("GET")
	r.HandleFunc("/api/menu/{id:[0-9]+}", h.getMenuItem).Methods("GET")
	r.HandleFunc("/api/menu/{id:[0-9]+}", h.updateMenuItem).Methods("PUT")
	r.HandleFunc("/api/menu/{id:[0-9]+}", h.deleteMenuItem).Methods("DELETE")
	r.HandleFunc("/api/menu/{id:[0-9]+}/toggle-availability", h.toggleMenuItem).Methods("PATCH")
	r.HandleFunc("/api/menu/{id:[0-9]+}/image", h.uploadMenuItemImage).Methods("POST")

	r.HandleFunc("/api/customers", h.listCustomers).Methods("GET")
	r.HandleFunc("/api/customers", h.createCustomer).Methods("POST")
	r.HandleFunc("/api/customers/search", h.searchCustomers).Methods("GET")
	r.HandleFunc("/api/customers/phone/{phone}", h.getCustomerByPhone).Methods("GET")
	r.HandleFunc("/api/customers/{id:[0-9]+}", h.getCustomer).Methods("GET")
	r.HandleFunc("/api/customers/{id:[0-9]+}", h.updateCustomer).Methods("PUT")
	r.HandleFunc("/api/customers/{id:[0-9]+}", h.deleteCustomer).Methods("DELETE")
	r.HandleFunc("/api/customers/{id:[0-9]+}/orders", h.getCustomerOrders).Methods("GET")
	r.HandleFunc("/api/customers/{id:[0-9]+}/order-history", h.getCustomerOrderHistory).Methods("GET")

	r.HandleFunc("/api/orders", h.listOrders).Methods("GET")
	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders/recent", h.getRecentOrders).Methods("GET")
	r.HandleFunc("/api/orders/popular-menu-items", h.getPopularMenuItems).Methods("GET")
	r.HandleFunc("/api/orders/sales-report", h.getSalesReport).Methods("GET")
	r.HandleFunc("/api/orders/customer/{id:[0-9]+}", h.getCustomerOrders).Methods("GET")
	r.HandleFunc("/api/orders/restaurant/{id:[0-9]+}", h.getRestaurantOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id:[0-9]+}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id:[0-9]+}", h.deleteOrder).Methods("DELETE")
	r.HandleFunc("/api/orders/{id:[0-9]+}/status", h.updateOrderStatus).Methods("PATCH", "PUT")
	r.HandleFunc("/api/orders/{id:[0-9]+}/qrcode", h.getOrderQRCode).Methods("GET")
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	response := map[string]any{
		"status":    "healthy",
		"service":   serviceName,
		"timestamp": time.Now().Format(time.RFC3339),
	}
	if h.DB != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.DB.PingContext(ctx); err != nil {
			response["status"] = "unhealthy"
			response["database"] = err.Error()
			writeJSON(w, http.StatusServiceUnavailable, response)
			return
		}
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) log() *slog.Logger {
	if h.Logger == nil {
		return slog.Default()
	}
	return h.Logger
}
