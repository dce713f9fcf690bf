package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	httpapi "foodie-hub/order-svc/internal/api/http"
	"foodie-hub/order-svc/internal/domain"
	"foodie-hub/order-svc/internal/service"
	"foodie-hub/order-svc/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedMessages struct {
	messages []kafka.Message
}

func (c *capturedMessages) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	c.messages = append(c.messages, msgs...)
	return nil
}

type orderStack struct {
	router   http.Handler
	sql      sqlmock.Sqlmock
	redis    *miniredis.Miniredis
	messages *capturedMessages
}

// newOrderStack wires the HTTP router to the real services and storage, with
// Postgres, Redis and Kafka replaced by in-process fakes.
func newOrderStack(t *testing.T) *orderStack {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, sqlMock.ExpectationsWereMet())
		db.Close()
	})

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	captured := &capturedMessages{}
	repo := storage.NewPostgresRepository(db)
	orders := service.NewOrderService(repo, repo, repo,
		service.WithLogger(discardLogger()),
		service.WithSubmissionGuard(storage.NewRedisSubmissionGuard(client, time.Hour)),
		service.WithEventPublisher(storage.NewKafkaPublisher(captured)),
	)

	handler := &httpapi.Handler{
		Restaurants: service.NewRestaurantService(repo, repo),
		Menu:        service.NewMenuService(repo, repo),
		Customers:   service.NewCustomerService(repo),
		Orders:      orders,
		Reports:     service.NewReportService(repo, repo),
		DB:          db,
		UploadDir:   t.TempDir(),
		Logger:      discardLogger(),
	}
	return &orderStack{router: httpapi.NewRouter(handler), sql: sqlMock, redis: mr, messages: captured}
}

func (s *orderStack) expectReferences(price string) {
	now := time.Now()
	s.sql.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM customers WHERE id = $1)")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	s.sql.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM restaurants WHERE id = $1 AND is_active = true)")).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	s.sql.ExpectQuery(regexp.QuoteMeta("WHERE m.id = $1")).
		WithArgs(100).
		WillReturnRows(sqlmock.NewRows([]string{"id", "restaurant_id", "restaurant_name", "name", "description", "price",
			"category", "preparation_time", "image_url", "is_available", "created_at", "updated_at"}).
			AddRow(100, 10, "Harbour Grill", "Burger", "", price, "Mains", 15, "", true, now, now))
}

func (s *orderStack) post(body, idempotencyKey string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func TestOrderFlow_PlaceThenRejectResubmission(t *testing.T) {
	stack := newOrderStack(t)
	now := time.Now()
	body := `{"customerId":1,"restaurantId":10,"items":[{"menuItemId":100,"quantity":2,"specialRequests":"no onions"}],"deliveryAddress":"12 Harbour St"}`

	stack.expectReferences("8.25")
	stack.sql.ExpectBegin()
	stack.sql.ExpectQuery(regexp.QuoteMeta("FROM menu_items WHERE id = $1 FOR SHARE")).
		WithArgs(100).
		WillReturnRows(sqlmock.NewRows([]string{"id", "restaurant_id", "name", "price", "category", "is_available"}).
			AddRow(100, 10, "Burger", "8.25", "Mains", true))
	stack.sql.ExpectQuery("INSERT INTO orders").
		WithArgs(1, 10, "pending", "16.5", "12 Harbour St", "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(31, now, now))
	stack.sql.ExpectQuery("INSERT INTO order_items").
		WithArgs(31, 100, 2, "8.25", "16.5", "no onions").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(90))
	stack.sql.ExpectCommit()

	first := stack.post(body, "cart-7")
	require.Equal(t, http.StatusCreated, first.Code, first.Body.String())

	var order domain.Order
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &order))
	assert.Equal(t, 31, order.ID)
	assert.Equal(t, domain.StatusPending, order.Status)
	assert.Equal(t, "16.50", order.TotalAmount.StringFixed(2))
	require.Len(t, order.Items, 1)
	assert.Equal(t, "no onions", order.Items[0].SpecialRequests)

	stored, err := stack.redis.Get("order:idempotency:cart-7")
	require.NoError(t, err)
	assert.Equal(t, "31", stored)

	require.Len(t, stack.messages.messages, 1)
	assert.Equal(t, "10", string(stack.messages.messages[0].Key))

	// The resubmission passes the reference checks but never opens a transaction.
	stack.expectReferences("8.25")
	second := stack.post(body, "cart-7")
	assert.Equal(t, http.StatusConflict, second.Code)
	assert.Len(t, stack.messages.messages, 1)
}

func TestOrderFlow_FailedPlacementFreesKey(t *testing.T) {
	stack := newOrderStack(t)
	body := `{"customerId":1,"restaurantId":10,"items":[{"menuItemId":100,"quantity":1}]}`

	stack.expectReferences("8.25")
	stack.sql.ExpectBegin()
	stack.sql.ExpectQuery(regexp.QuoteMeta("FOR SHARE")).
		WithArgs(100).
		WillReturnRows(sqlmock.NewRows([]string{"id", "restaurant_id", "name", "price", "category", "is_available"}).
			AddRow(100, 10, "Burger", "8.25", "Mains", false))
	stack.sql.ExpectRollback()

	w := stack.post(body, "cart-8")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.False(t, stack.redis.Exists("order:idempotency:cart-8"))
	assert.Empty(t, stack.messages.messages)
}

func TestOrderFlow_HealthPingsDatabase(t *testing.T) {
	stack := newOrderStack(t)

	w := httptest.NewRecorder()
	stack.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOrderFlow_OversizedQuantityIsBadRequest(t *testing.T) {
	stack := newOrderStack(t)

	w := stack.post(`{"customerId":1,"restaurantId":10,"items":[{"menuItemId":100,"quantity":3000000000}]}`, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, stack.messages.messages)
}
