package storage_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"foodie-hub/order-svc/internal/domain"
	"foodie-hub/order-svc/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	restaurantRowColumns = []string{"id", "name", "description", "address", "phone", "email",
		"cuisine_type", "opening_hours", "is_active", "created_at", "updated_at"}
	menuItemRowColumns = []string{"id", "restaurant_id", "restaurant_name", "name", "description", "price",
		"category", "preparation_time", "image_url", "is_available", "created_at", "updated_at"}
	customerRowColumns = []string{"id", "name", "phone", "email", "address", "created_at", "updated_at"}
	orderRowColumns    = []string{"id", "customer_id", "customer_name", "restaurant_id", "restaurant_name", "status",
		"total_amount", "delivery_address", "special_instructions", "item_count", "created_at", "updated_at"}
)

// setupTestRepository installs a sqlmock-backed repository.
func setupTestRepository(t *testing.T) (*storage.PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return storage.NewPostgresRepository(db), mock
}

func q(sql string) string {
	return regexp.QuoteMeta(sql)
}

func TestEnsureSchemaExecutesStatements(t *testing.T) {
	repo, mock := setupTestRepository(t)

	for _, table := range []string{"restaurants", "customers", "menu_items", "orders", "order_items"} {
		mock.ExpectExec(q("CREATE TABLE IF NOT EXISTS " + table + " (")).
			WillReturnResult(sqlmock.NewResult(0, 0))
	}
	for i := 0; i < 5; i++ {
		mock.ExpectExec("CREATE INDEX IF NOT EXISTS").WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, storage.EnsureSchema(context.Background(), repo.DB))
}

func TestGetRestaurant(t *testing.T) {
	t.Run("active", func(t *testing.T) {
		repo, mock := setupTestRepository(t)
		now := time.Now()
		mock.ExpectQuery(q("WHERE id = $1 AND is_active = true")).
			WithArgs(10).
			WillReturnRows(sqlmock.NewRows(restaurantRowColumns).
				AddRow(10, "Harbour Grill", "", "1 Pier Rd", "555-0100", "", "Seafood", "", true, now, now))

		rest, err := repo.GetRestaurant(context.Background(), 10)
		require.NoError(t, err)
		assert.Equal(t, "Harbour Grill", rest.Name)
		assert.True(t, rest.IsActive)
	})

	t.Run("soft_deleted", func(t *testing.T) {
		repo, mock := setupTestRepository(t)
		mock.ExpectQuery(q("WHERE id = $1 AND is_active = true")).
			WithArgs(11).
			WillReturnRows(sqlmock.NewRows(restaurantRowColumns))

		_, err := repo.GetRestaurant(context.Background(), 11)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestListRestaurants(t *testing.T) {
	repo, mock := setupTestRepository(t)
	now := time.Now()
	mock.ExpectQuery(q("SELECT COUNT(*) FROM restaurants WHERE is_active = true")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery(q("LIMIT $1 OFFSET $2")).
		WithArgs(10, 10).
		WillReturnRows(sqlmock.NewRows(restaurantRowColumns).
			AddRow(11, "Noodle Bar", "", "2 Main St", "555-0111", "", "", "", true, now, now).
			AddRow(12, "Taco Stand", "", "3 Main St", "555-0112", "", "", "", true, now, now))

	restaurants, total, err := repo.ListRestaurants(context.Background(), domain.PageRequest{Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 12, total)
	assert.Len(t, restaurants, 2)
}

func TestDeactivateRestaurant(t *testing.T) {
	repo, mock := setupTestRepository(t)
	now := time.Now()
	mock.ExpectQuery(q("SET is_active = false")).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows(restaurantRowColumns).
			AddRow(10, "Harbour Grill", "", "1 Pier Rd", "555-0100", "", "", "", false, now, now))

	rest, err := repo.DeactivateRestaurant(context.Background(), 10)
	require.NoError(t, err)
	assert.False(t, rest.IsActive)
}

func TestCreateMenuItem_UnknownRestaurant(t *testing.T) {
	repo, mock := setupTestRepository(t)
	mock.ExpectQuery("INSERT INTO menu_items").
		WillReturnError(&pq.Error{Code: "23503"})

	err := repo.CreateMenuItem(context.Background(), &domain.MenuItem{RestaurantID: 99, Name: "Burger"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListMenuItems(t *testing.T) {
	repo, mock := setupTestRepository(t)
	now := time.Now()
	mock.ExpectQuery(q("WHERE m.restaurant_id = $1 AND ($2::boolean OR m.is_available = true)")).
		WithArgs(10, false).
		WillReturnRows(sqlmock.NewRows(menuItemRowColumns).
			AddRow(100, 10, "Harbour Grill", "Burger", "", "10.00", "Mains", 15, "", true, now, now))

	items, err := repo.ListMenuItems(context.Background(), 10, false)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "10.00", items[0].Price.StringFixed(2))
	assert.Equal(t, "Harbour Grill", items[0].RestaurantName)
}

func TestToggleAvailability(t *testing.T) {
	repo, mock := setupTestRepository(t)
	now := time.Now()
	mock.ExpectQuery(q("SET is_available = NOT is_available")).
		WithArgs(100).
		WillReturnRows(sqlmock.NewRows([]string{"id", "restaurant_id", "name", "description", "price", "category",
			"preparation_time", "image_url", "is_available", "created_at", "updated_at"}).
			AddRow(100, 10, "Burger", "", "10.00", "Mains", 15, "", false, now, now))

	item, err := repo.ToggleAvailability(context.Background(), 100)
	require.NoError(t, err)
	assert.False(t, item.IsAvailable)
}

func TestDeleteMenuItem(t *testing.T) {
	t.Run("referenced_by_orders", func(t *testing.T) {
		repo, mock := setupTestRepository(t)
		mock.ExpectExec("DELETE FROM menu_items").WithArgs(100).WillReturnError(&pq.Error{Code: "23503"})

		err := repo.DeleteMenuItem(context.Background(), 100)
		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := setupTestRepository(t)
		mock.ExpectExec("DELETE FROM menu_items").WithArgs(404).WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteMenuItem(context.Background(), 404)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestSearchByCategory(t *testing.T) {
	repo, mock := setupTestRepository(t)
	mock.ExpectQuery(q("m.category ILIKE $1 AND m.is_available = true")).
		WithArgs("%pizza%").
		WillReturnRows(sqlmock.NewRows(menuItemRowColumns))

	items, err := repo.SearchByCategory(context.Background(), "pizza")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCustomerRepository(t *testing.T) {
	t.Run("duplicate_phone_on_create", func(t *testing.T) {
		repo, mock := setupTestRepository(t)
		mock.ExpectQuery("INSERT INTO customers").
			WithArgs("Ada", "555-0101", "", "").
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.CreateCustomer(context.Background(), &domain.Customer{Name: "Ada", Phone: "555-0101"})
		assert.ErrorIs(t, err, domain.ErrInvalidState)
		var domainErr *domain.Error
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeDuplicatePhone, domainErr.Code)
	})

	t.Run("get_by_phone", func(t *testing.T) {
		repo, mock := setupTestRepository(t)
		now := time.Now()
		mock.ExpectQuery(q("WHERE phone = $1")).
			WithArgs("555-0101").
			WillReturnRows(sqlmock.NewRows(customerRowColumns).AddRow(1, "Ada", "555-0101", "", "", now, now))

		customer, err := repo.GetCustomerByPhone(context.Background(), "555-0101")
		require.NoError(t, err)
		assert.Equal(t, 1, customer.ID)
	})

	t.Run("delete_with_orders", func(t *testing.T) {
		repo, mock := setupTestRepository(t)
		mock.ExpectExec("DELETE FROM customers").WithArgs(1).WillReturnError(&pq.Error{Code: "23503"})

		err := repo.DeleteCustomer(context.Background(), 1)
		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})

	t.Run("update_missing", func(t *testing.T) {
		repo, mock := setupTestRepository(t)
		mock.ExpectQuery("UPDATE customers").WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}))

		err := repo.UpdateCustomer(context.Background(), &domain.Customer{ID: 9, Name: "Ada", Phone: "555-0101"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestListOrders_StatusFilter(t *testing.T) {
	repo, mock := setupTestRepository(t)
	now := time.Now()
	mock.ExpectQuery(q("SELECT COUNT(*) FROM orders o WHERE o.status = $1")).
		WithArgs("pending").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(q("WHERE o.status = $1 ORDER BY o.created_at DESC LIMIT $2 OFFSET $3")).
		WithArgs("pending", 10, 0).
		WillReturnRows(sqlmock.NewRows(orderRowColumns).
			AddRow(7, 1, "Ada", 10, "Harbour Grill", "pending", "30.00", "12 Harbour St", "", 1, now, now))

	filter := domain.OrderFilter{PageRequest: domain.PageRequest{Page: 1, Limit: 10}, Status: domain.StatusPending}
	orders, total, err := repo.ListOrders(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, orders, 1)
	assert.Equal(t, domain.StatusPending, orders[0].Status)
	assert.Equal(t, 1, orders[0].ItemCount)
}

func TestListOrdersByCustomer_NoFilter(t *testing.T) {
	repo, mock := setupTestRepository(t)
	mock.ExpectQuery(q("WHERE o.customer_id = $1 ORDER BY o.created_at DESC")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(orderRowColumns))

	orders, err := repo.ListOrdersByCustomer(context.Background(), 1, "")
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestGetOrder_WithLines(t *testing.T) {
	repo, mock := setupTestRepository(t)
	now := time.Now()
	mock.ExpectQuery(q("WHERE o.id = $1")).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows(orderRowColumns).
			AddRow(7, 1, "Ada", 10, "Harbour Grill", "confirmed", "30.00", "12 Harbour St", "", 1, now, now))
	mock.ExpectQuery(q("FROM order_items oi")).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "menu_item_id", "name", "category", "quantity",
			"unit_price", "subtotal", "special_requests"}).
			AddRow(1, 7, 100, "Burger", "Mains", 3, "10.00", "30.00", ""))

	order, err := repo.GetOrder(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 3, order.Items[0].Quantity)
	assert.True(t, order.Items[0].Subtotal.Equal(order.TotalAmount))
}

func TestGetOrder_RepeatedReadsMatch(t *testing.T) {
	repo, mock := setupTestRepository(t)
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	lineColumns := []string{"id", "order_id", "menu_item_id", "name", "category", "quantity",
		"unit_price", "subtotal", "special_requests"}

	for i := 0; i < 2; i++ {
		mock.ExpectQuery(q("WHERE o.id = $1")).
			WithArgs(7).
			WillReturnRows(sqlmock.NewRows(orderRowColumns).
				AddRow(7, 1, "Ada", 10, "Harbour Grill", "pending", "24.50", "12 Harbour St", "ring twice", 2, created, created))
		mock.ExpectQuery(q("FROM order_items oi")).
			WithArgs(7).
			WillReturnRows(sqlmock.NewRows(lineColumns).
				AddRow(1, 7, 100, "Burger", "Mains", 2, "10.00", "20.00", "").
				AddRow(2, 7, 101, "Fries", "Sides", 1, "4.50", "4.50", "extra salt"))
	}

	first, err := repo.GetOrder(context.Background(), 7)
	require.NoError(t, err)
	second, err := repo.GetOrder(context.Background(), 7)
	require.NoError(t, err)

	require.Len(t, first.Items, 2)
	assert.Equal(t, first, second)
	assert.Equal(t, first.Items, second.Items)
}

func TestGetOrder_Missing(t *testing.T) {
	repo, mock := setupTestRepository(t)
	mock.ExpectQuery(q("WHERE o.id = $1")).WithArgs(8).WillReturnRows(sqlmock.NewRows(orderRowColumns))

	_, err := repo.GetOrder(context.Background(), 8)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSalesReport_DateBounds(t *testing.T) {
	repo, mock := setupTestRepository(t)
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)
	mock.ExpectQuery(q("WHERE o.status <> 'cancelled' AND o.created_at >= $1 AND o.created_at <= $2")).
		WithArgs(from, to).
		WillReturnRows(sqlmock.NewRows([]string{"menu_item_name", "category", "restaurant_name", "total_quantity",
			"total_revenue", "unique_orders", "avg_unit_price"}).
			AddRow("Burger", "Mains", "Harbour Grill", 5, "50.00", 2, "10.00"))

	rows, err := repo.SalesReport(context.Background(), &from, &to)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "50.00", rows[0].TotalRevenue.StringFixed(2))
}

func TestPopularMenuItems(t *testing.T) {
	repo, mock := setupTestRepository(t)
	mock.ExpectQuery(q("WHERE o.status <> 'cancelled'")).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "price", "category", "restaurant_name",
			"total_ordered", "order_count"}).
			AddRow(100, "Burger", "", "10.00", "Mains", "Harbour Grill", 9, 4))

	items, err := repo.PopularMenuItems(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 9, items[0].TotalOrdered)
}
