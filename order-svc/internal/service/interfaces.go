package service

import (
	"context"
	"time"

	"foodie-hub/order-svc/internal/domain"
)

type RestaurantRepository interface {
	CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error
	ListRestaurants(ctx context.Context, page domain.PageRequest) ([]domain.Restaurant, int, error)
	GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error)
	UpdateRestaurant(ctx context.Context, rest *domain.Restaurant) error
	DeactivateRestaurant(ctx context.Context, id int) (*domain.Restaurant, error)
}

type MenuItemRepository interface {
	CreateMenuItem(ctx context.Context, item *domain.MenuItem) error
	GetMenuItem(ctx context.Context, id int) (*domain.MenuItem, error)
	ListMenuItems(ctx context.Context, restaurantID int, includeUnavailable bool) ([]domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error
	DeleteMenuItem(ctx context.Context, id int) error
	ToggleAvailability(ctx context.Context, id int) (*domain.MenuItem, error)
	UpdateMenuItemImage(ctx context.Context, id int, imageURL string) error
	SearchByCategory(ctx context.Context, category string) ([]domain.MenuItem, error)
}

type CustomerRepository interface {
	CreateCustomer(ctx context.Context, customer *domain.Customer) error
	ListCustomers(ctx context.Context, page domain.PageRequest) ([]domain.Customer, int, error)
	GetCustomer(ctx context.Context, id int) (*domain.Customer, error)
	GetCustomerByPhone(ctx context.Context, phone string) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, customer *domain.Customer) error
	DeleteCustomer(ctx context.Context, id int) error
	SearchCustomers(ctx context.Context, name string) ([]domain.Customer, error)
}

// OrderStore is the store boundary of the order workflow. Reads outside a
// transaction serve validation and queries; everything that writes goes through
// an OrderTx.
type OrderStore interface {
	CustomerExists(ctx context.Context, id int) (bool, error)
	RestaurantIsActive(ctx context.Context, id int) (bool, error)
	GetMenuItem(ctx context.Context, id int) (*domain.MenuItem, error)
	BeginTx(ctx context.Context) (OrderTx, error)

	GetOrder(ctx context.Context, id int) (*domain.Order, error)
	ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, int, error)
	ListOrdersByCustomer(ctx context.Context, customerID int, status domain.OrderStatus) ([]domain.Order, error)
	ListOrdersByRestaurant(ctx context.Context, restaurantID int, status domain.OrderStatus) ([]domain.Order, error)
	RecentOrders(ctx context.Context, limit int) ([]domain.Order, error)
}

// OrderTx is a single unit of work. Callers must end it with Commit or Rollback.
type OrderTx interface {
	// LockMenuItem reads the current price and availability of a menu item and
	// holds a share lock on the row until the transaction ends.
	LockMenuItem(ctx context.Context, id int) (*domain.MenuItem, error)
	InsertOrder(ctx context.Context, order *domain.Order) error
	InsertOrderLine(ctx context.Context, line *domain.OrderLine) error
	LockOrder(ctx context.Context, id int) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, order *domain.Order) error
	DeleteOrder(ctx context.Context, id int) error
	Commit() error
	Rollback() error
}

type ReportRepository interface {
	PopularMenuItems(ctx context.Context, limit int) ([]domain.PopularItem, error)
	SalesReport(ctx context.Context, from, to *time.Time) ([]domain.SalesRow, error)
	CustomerOrderHistory(ctx context.Context, customerID int) ([]domain.OrderHistoryRow, error)
}

// SubmissionGuard rejects a second order placed with an idempotency key that is
// already in use.
type SubmissionGuard interface {
	Reserve(ctx context.Context, key string) (bool, error)
	Complete(ctx context.Context, key string, orderID int) error
	Release(ctx context.Context, key string) error
}

type OrderEventPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type RestaurantServiceInterface interface {
	Create(ctx context.Context, rest *domain.Restaurant) error
	List(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Restaurant], error)
	Get(ctx context.Context, id int) (*domain.Restaurant, error)
	Update(ctx context.Context, rest *domain.Restaurant) error
	Delete(ctx context.Context, id int) (*domain.Restaurant, error)
	Menu(ctx context.Context, id int, includeUnavailable bool) (*domain.Restaurant, []domain.MenuItem, error)
}

type MenuServiceInterface interface {
	Create(ctx context.Context, item *domain.MenuItem) error
	Get(ctx context.Context, id int) (*domain.MenuItem, error)
	Update(ctx context.Context, item *domain.MenuItem) error
	Delete(ctx context.Context, id int) error
	ToggleAvailability(ctx context.Context, id int) (*domain.MenuItem, error)
	UpdateImage(ctx context.Context, id int, imageURL string) error
	SearchByCategory(ctx context.Context, category string) ([]domain.MenuItem, error)
}

type CustomerServiceInterface interface {
	Create(ctx context.Context, customer *domain.Customer) error
	List(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Customer], error)
	Get(ctx context.Context, id int) (*domain.Customer, error)
	GetByPhone(ctx context.Context, phone string) (*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id int) error
	Search(ctx context.Context, name string) ([]domain.Customer, error)
}

type OrderServiceInterface interface {
	Place(ctx context.Context, req *domain.PlaceOrderRequest) (*domain.Order, error)
	Get(ctx context.Context, id int) (*domain.Order, error)
	List(ctx context.Context, filter domain.OrderFilter) (domain.Page[domain.Order], error)
	UpdateStatus(ctx context.Context, id int, status string) (*domain.Order, error)
	Delete(ctx context.Context, id int) (*domain.Order, error)
	ByCustomer(ctx context.Context, customerID int, status string) (*domain.Customer, []domain.Order, error)
	ByRestaurant(ctx context.Context, restaurantID int, status string) (*domain.Restaurant, []domain.Order, error)
	Recent(ctx context.Context, limit int) ([]domain.Order, error)
	ReceiptQRCode(ctx context.Context, id int) ([]byte, error)
}

type ReportServiceInterface interface {
	PopularMenuItems(ctx context.Context, limit int) ([]domain.PopularItem, error)
	SalesReport(ctx context.Context, startDate, endDate string) (*domain.SalesReport, error)
	CustomerOrderHistory(ctx context.Context, customerID int) (*domain.Customer, []domain.OrderHistoryRow, error)
}

var (
	_ RestaurantServiceInterface = (*RestaurantService)(nil)
	_ MenuServiceInterface       = (*MenuService)(nil)
	_ CustomerServiceInterface   = (*CustomerService)(nil)
	_ OrderServiceInterface      = (*OrderService)(nil)
	_ ReportServiceInterface     = (*ReportService)(nil)
)
