package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"foodie-hub/order-svc/internal/domain"
	"foodie-hub/order-svc/internal/logger"

	"github.com/shopspring/decimal"
)

var ErrReceiptUnavailable = errors.New("receipt QR codes are not configured")

const (
	defaultRecentLimit = 10
	maxRecentLimit     = 100

	defaultPublishTimeout = 2 * time.Second
)

// maxOrderAmount is the largest value the NUMERIC(10,2) amount columns hold.
var maxOrderAmount = decimal.RequireFromString("99999999.99")

type OrderService struct {
	store       OrderStore
	customers   CustomerRepository
	restaurants RestaurantRepository
	guard       SubmissionGuard
	publisher   OrderEventPublisher
	qrEncoder   QRGenerator
	logger      *slog.Logger

	publishTimeout time.Duration
}

type OrderOption func(*OrderService)

func WithSubmissionGuard(guard SubmissionGuard) OrderOption {
	return func(s *OrderService) { s.guard = guard }
}

func WithEventPublisher(publisher OrderEventPublisher) OrderOption {
	return func(s *OrderService) { s.publisher = publisher }
}

// WithPublishTimeout bounds how long a committed request waits on the event
// publisher.
func WithPublishTimeout(timeout time.Duration) OrderOption {
	return func(s *OrderService) { s.publishTimeout = timeout }
}

func WithQRGenerator(qr QRGenerator) OrderOption {
	return func(s *OrderService) { s.qrEncoder = qr }
}

func WithLogger(logger *slog.Logger) OrderOption {
	return func(s *OrderService) { s.logger = logger }
}

func NewOrderService(store OrderStore, customers CustomerRepository, restaurants RestaurantRepository, opts ...OrderOption) *OrderService {
	s := &OrderService{
		store:       store,
		customers:   customers,
		restaurants: restaurants,
		logger:      slog.Default(),

		publishTimeout: defaultPublishTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Place validates an order request and persists the order with all of its lines
// in one transaction. Prices are read inside that transaction, so the stored
// total always matches the snapshot unit prices on the lines.
func (s *OrderService) Place(ctx context.Context, req *domain.PlaceOrderRequest) (*domain.Order, error) {
	if err := ValidatePlaceOrder(req); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, req); err != nil {
		return nil, err
	}

	reserved, err := s.reserve(ctx, req.IdempotencyKey)
	if err != nil {
		return nil, err
	}

	order, err := s.inTx(ctx, func(tx OrderTx) (*domain.Order, error) {
		return s.persist(ctx, tx, req)
	})
	if err != nil {
		if reserved {
			if releaseErr := s.guard.Release(ctx, req.IdempotencyKey); releaseErr != nil {
				s.logger.Warn("failed to release idempotency key", "key", req.IdempotencyKey, "error", releaseErr)
			}
		}
		return nil, err
	}

	if reserved {
		if completeErr := s.guard.Complete(ctx, req.IdempotencyKey, order.ID); completeErr != nil {
			s.logger.Warn("failed to record idempotency key", "key", req.IdempotencyKey, "order_id", order.ID, "error", completeErr)
		}
	}

	s.logger.Info("order placed",
		"order_id", order.ID,
		"customer_id", order.CustomerID,
		"restaurant_id", order.RestaurantID,
		"lines", len(order.Items),
		"total", order.TotalAmount.StringFixed(2),
	)
	s.publish(ctx, domain.EventOrderCreated, order)
	return order, nil
}

// checkReferences runs before the transaction so that missing or unorderable
// references are reported without opening one. Checks run customer, restaurant,
// then each line in request order, stopping at the first failure.
func (s *OrderService) checkReferences(ctx context.Context, req *domain.PlaceOrderRequest) error {
	exists, err := s.store.CustomerExists(ctx, req.CustomerID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.NotFound("customer")
	}

	active, err := s.store.RestaurantIsActive(ctx, req.RestaurantID)
	if err != nil {
		return err
	}
	if !active {
		return domain.NotFound("restaurant")
	}

	for _, line := range req.Items {
		item, err := s.store.GetMenuItem(ctx, line.MenuItemID)
		if err != nil {
			return err
		}
		if err := checkOrderable(item, req.RestaurantID); err != nil {
			return err
		}
	}
	return nil
}

func checkOrderable(item *domain.MenuItem, restaurantID int) error {
	if !item.IsAvailable {
		return domain.UnavailableItem(item)
	}
	if item.RestaurantID != restaurantID {
		return domain.CrossRestaurantItem(item)
	}
	return nil
}

func (s *OrderService) persist(ctx context.Context, tx OrderTx, req *domain.PlaceOrderRequest) (*domain.Order, error) {
	lines := make([]domain.OrderLine, 0, len(req.Items))
	total := decimal.Zero

	for _, requested := range req.Items {
		item, err := tx.LockMenuItem(ctx, requested.MenuItemID)
		if err != nil {
			return nil, err
		}
		if err := checkOrderable(item, req.RestaurantID); err != nil {
			return nil, err
		}

		subtotal := item.Price.Mul(decimal.NewFromInt(int64(requested.Quantity)))
		total = total.Add(subtotal)
		if total.GreaterThan(maxOrderAmount) {
			return nil, domain.InvalidInput(fmt.Sprintf("order total must not exceed %s", maxOrderAmount.StringFixed(2)))
		}
		lines = append(lines, domain.OrderLine{
			MenuItemID:      item.ID,
			MenuItemName:    item.Name,
			Category:        item.Category,
			Quantity:        requested.Quantity,
			UnitPrice:       item.Price,
			Subtotal:        subtotal,
			SpecialRequests: requested.SpecialRequests,
		})
	}

	order := &domain.Order{
		CustomerID:          req.CustomerID,
		RestaurantID:        req.RestaurantID,
		Status:              domain.StatusPending,
		TotalAmount:         total,
		DeliveryAddress:     req.DeliveryAddress,
		SpecialInstructions: req.SpecialInstructions,
	}
	if err := tx.InsertOrder(ctx, order); err != nil {
		return nil, err
	}

	for i := range lines {
		lines[i].OrderID = order.ID
		if err := tx.InsertOrderLine(ctx, &lines[i]); err != nil {
			return nil, err
		}
	}

	order.Items = lines
	return order, nil
}

func (s *OrderService) Get(ctx context.Context, id int) (*domain.Order, error) {
	return s.store.GetOrder(ctx, id)
}

func (s *OrderService) List(ctx context.Context, filter domain.OrderFilter) (domain.Page[domain.Order], error) {
	orders, total, err := s.store.ListOrders(ctx, filter)
	if err != nil {
		return domain.Page[domain.Order]{}, err
	}
	return domain.NewPage(orders, total, filter.PageRequest), nil
}

func (s *OrderService) UpdateStatus(ctx context.Context, id int, status string) (*domain.Order, error) {
	next, err := domain.ParseOrderStatus(status)
	if err != nil {
		return nil, err
	}

	order, err := s.inTx(ctx, func(tx OrderTx) (*domain.Order, error) {
		order, err := tx.LockOrder(ctx, id)
		if err != nil {
			return nil, err
		}
		if order.Status.Terminal() {
			return nil, domain.InvalidState(domain.CodeTerminalState,
				fmt.Sprintf("cannot update order with status: %s", order.Status))
		}
		if !order.Status.CanTransitionTo(next) {
			return nil, domain.InvalidState(domain.CodeInvalidTransition,
				fmt.Sprintf("cannot move order from %s to %s", order.Status, next))
		}
		order.Status = next
		if err := tx.UpdateOrderStatus(ctx, order); err != nil {
			return nil, err
		}
		return order, nil
	})
	if err != nil {
		return nil, err
	}

	eventType := domain.EventOrderStatusChanged
	if next == domain.StatusCancelled {
		eventType = domain.EventOrderCancelled
	}
	s.publish(ctx, eventType, order)
	return order, nil
}

// Delete removes an order and its lines. Delivered and cancelled orders are
// final and are never removed.
func (s *OrderService) Delete(ctx context.Context, id int) (*domain.Order, error) {
	order, err := s.inTx(ctx, func(tx OrderTx) (*domain.Order, error) {
		order, err := tx.LockOrder(ctx, id)
		if err != nil {
			return nil, err
		}
		if order.Status.Terminal() {
			return nil, domain.InvalidState(domain.CodeTerminalState,
				fmt.Sprintf("cannot delete order with status: %s", order.Status))
		}
		if err := tx.DeleteOrder(ctx, id); err != nil {
			return nil, err
		}
		return order, nil
	})
	if err != nil {
		return nil, err
	}

	cancelled := *order
	cancelled.Status = domain.StatusCancelled
	s.publish(ctx, domain.EventOrderCancelled, &cancelled)
	return order, nil
}

func (s *OrderService) ByCustomer(ctx context.Context, customerID int, status string) (*domain.Customer, []domain.Order, error) {
	filter, err := parseStatusFilter(status)
	if err != nil {
		return nil, nil, err
	}
	customer, err := s.customers.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, nil, err
	}
	orders, err := s.store.ListOrdersByCustomer(ctx, customerID, filter)
	if err != nil {
		return nil, nil, err
	}
	return customer, orders, nil
}

func (s *OrderService) ByRestaurant(ctx context.Context, restaurantID int, status string) (*domain.Restaurant, []domain.Order, error) {
	filter, err := parseStatusFilter(status)
	if err != nil {
		return nil, nil, err
	}
	rest, err := s.restaurants.GetRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, nil, err
	}
	orders, err := s.store.ListOrdersByRestaurant(ctx, restaurantID, filter)
	if err != nil {
		return nil, nil, err
	}
	return rest, orders, nil
}

func (s *OrderService) Recent(ctx context.Context, limit int) ([]domain.Order, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}
	return s.store.RecentOrders(ctx, limit)
}

func (s *OrderService) ReceiptQRCode(ctx context.Context, id int) ([]byte, error) {
	if s.qrEncoder == nil {
		return nil, ErrReceiptUnavailable
	}
	if _, err := s.store.GetOrder(ctx, id); err != nil {
		return nil, err
	}
	return s.qrEncoder.Generate(id)
}

// inTx runs fn in a transaction. Any error rolls the transaction back; errors
// that are not already typed are reported as transaction failures.
func (s *OrderService) inTx(ctx context.Context, fn func(tx OrderTx) (*domain.Order, error)) (order *domain.Order, err error) {
	tx, err := s.store.BeginTx(ctx)
	if err != nil {
		return nil, domain.TransactionFailure(err)
	}

	committing := false
	defer func() {
		if err != nil && !committing {
			if rbErr := tx.Rollback(); rbErr != nil {
				s.logger.Error("rollback failed", logger.Err(rbErr))
			}
		}
		err = domain.AsTransactionFailure(err)
	}()

	if order, err = fn(tx); err != nil {
		return nil, err
	}
	committing = true
	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) reserve(ctx context.Context, key string) (bool, error) {
	if key == "" || s.guard == nil {
		return false, nil
	}
	reserved, err := s.guard.Reserve(ctx, key)
	if err != nil {
		s.logger.Warn("submission guard unavailable, placing order without it", "error", err)
		return false, nil
	}
	if !reserved {
		return false, domain.InvalidState(domain.CodeDuplicateSubmission, "an order with this idempotency key was already submitted")
	}
	return true, nil
}

func (s *OrderService) publish(ctx context.Context, eventType string, order *domain.Order) {
	if s.publisher == nil {
		return
	}
	// The write is already committed, so the event outlives a client disconnect
	// but never holds the response longer than publishTimeout.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.publishTimeout)
	defer cancel()
	if err := s.publisher.PublishOrderEvent(ctx, domain.NewOrderEvent(eventType, order)); err != nil {
		s.logger.Warn("failed to publish order event", "type", eventType, "order_id", order.ID, "error", err)
	}
}

func parseStatusFilter(status string) (domain.OrderStatus, error) {
	if status == "" {
		return "", nil
	}
	return domain.ParseOrderStatus(status)
}
