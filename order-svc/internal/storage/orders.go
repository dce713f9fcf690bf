package storage

import (
	"context"
	"database/sql"
	"strconv"
	"strings"

	"foodie-hub/order-svc/internal/domain"
	"foodie-hub/order-svc/internal/service"
)

var _ service.OrderStore = (*PostgresRepository)(nil)

func (r *PostgresRepository) CustomerExists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM customers WHERE id = $1)", id).Scan(&exists)
	return exists, err
}

func (r *PostgresRepository) RestaurantIsActive(ctx context.Context, id int) (bool, error) {
	var active bool
	err := r.DB.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM restaurants WHERE id = $1 AND is_active = true)", id).Scan(&active)
	return active, err
}

// BeginTx opens a read committed transaction. Rows the workflow depends on are
// locked explicitly by orderTx.
func (r *PostgresRepository) BeginTx(ctx context.Context) (service.OrderTx, error) {
	tx, err := r.DB.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return nil, err
	}
	return &orderTx{tx: tx}, nil
}

type orderTx struct {
	tx *sql.Tx
}

func (t *orderTx) LockMenuItem(ctx context.Context, id int) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := t.tx.QueryRowContext(ctx, `
		SELECT id, restaurant_id, name, price, COALESCE(category, ''), is_available
		FROM menu_items
		WHERE id = $1
		FOR SHARE`, id,
	).Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Price, &item.Category, &item.IsAvailable)
	if err != nil {
		return nil, notFound(err, "menu_item")
	}
	return &item, nil
}

func (t *orderTx) InsertOrder(ctx context.Context, order *domain.Order) error {
	return t.tx.QueryRowContext(ctx, `
		INSERT INTO orders (customer_id, restaurant_id, status, total_amount, delivery_address, special_instructions)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`,
		order.CustomerID, order.RestaurantID, string(order.Status), order.TotalAmount,
		order.DeliveryAddress, order.SpecialInstructions,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
}

func (t *orderTx) InsertOrderLine(ctx context.Context, line *domain.OrderLine) error {
	return t.tx.QueryRowContext(ctx, `
		INSERT INTO order_items (order_id, menu_item_id, quantity, unit_price, subtotal, special_requests)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		line.OrderID, line.MenuItemID, line.Quantity, line.UnitPrice, line.Subtotal, line.SpecialRequests,
	).Scan(&line.ID)
}

func (t *orderTx) LockOrder(ctx context.Context, id int) (*domain.Order, error) {
	var order domain.Order
	err := t.tx.QueryRowContext(ctx, `
		SELECT id, customer_id, restaurant_id, status, total_amount, COALESCE(delivery_address, ''),
			COALESCE(special_instructions, ''), created_at, updated_at
		FROM orders
		WHERE id = $1
		FOR UPDATE`, id,
	).Scan(&order.ID, &order.CustomerID, &order.RestaurantID, &order.Status, &order.TotalAmount,
		&order.DeliveryAddress, &order.SpecialInstructions, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, notFound(err, "order")
	}
	return &order, nil
}

func (t *orderTx) UpdateOrderStatus(ctx context.Context, order *domain.Order) error {
	err := t.tx.QueryRowContext(ctx,
		"UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2 RETURNING updated_at",
		string(order.Status), order.ID,
	).Scan(&order.UpdatedAt)
	return notFound(err, "order")
}

// DeleteOrder removes the order; its lines go with it through ON DELETE CASCADE.
func (t *orderTx) DeleteOrder(ctx context.Context, id int) error {
	result, err := t.tx.ExecContext(ctx, "DELETE FROM orders WHERE id = $1", id)
	if err != nil {
		return err
	}
	return expectAffected(result, "order")
}

func (t *orderTx) Commit() error {
	return t.tx.Commit()
}

func (t *orderTx) Rollback() error {
	return t.tx.Rollback()
}

const orderColumns = `o.id, o.customer_id, c.name, o.restaurant_id, r.name, o.status, o.total_amount,
	COALESCE(o.delivery_address, ''), COALESCE(o.special_instructions, ''),
	(SELECT COUNT(*) FROM order_items oi WHERE oi.order_id = o.id), o.created_at, o.updated_at`

const orderJoins = `
	FROM orders o
	JOIN customers c ON c.id = o.customer_id
	JOIN restaurants r ON r.id = o.restaurant_id`

func scanOrder(row rowScanner) (*domain.Order, error) {
	var order domain.Order
	err := row.Scan(&order.ID, &order.CustomerID, &order.CustomerName, &order.RestaurantID, &order.RestaurantName,
		&order.Status, &order.TotalAmount, &order.DeliveryAddress, &order.SpecialInstructions, &order.ItemCount,
		&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func collectOrders(rows *sql.Rows) ([]domain.Order, error) {
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

// GetOrder loads the order header and all of its lines.
func (r *PostgresRepository) GetOrder(ctx context.Context, id int) (*domain.Order, error) {
	order, err := scanOrder(r.DB.QueryRowContext(ctx, "SELECT "+orderColumns+orderJoins+" WHERE o.id = $1", id))
	if err != nil {
		return nil, notFound(err, "order")
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT oi.id, oi.order_id, oi.menu_item_id, m.name, COALESCE(m.category, ''), oi.quantity,
			oi.unit_price, oi.subtotal, COALESCE(oi.special_requests, '')
		FROM order_items oi
		JOIN menu_items m ON m.id = oi.menu_item_id
		WHERE oi.order_id = $1
		ORDER BY oi.id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	order.Items = []domain.OrderLine{}
	for rows.Next() {
		var line domain.OrderLine
		if err := rows.Scan(&line.ID, &line.OrderID, &line.MenuItemID, &line.MenuItemName, &line.Category,
			&line.Quantity, &line.UnitPrice, &line.Subtotal, &line.SpecialRequests); err != nil {
			return nil, err
		}
		order.Items = append(order.Items, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return order, nil
}

// whereClause collects optional filters into numbered placeholders.
type whereClause struct {
	conditions []string
	args       []any
}

func (w *whereClause) add(condition string, arg any) {
	w.args = append(w.args, arg)
	w.conditions = append(w.conditions, strings.ReplaceAll(condition, "?", "$"+strconv.Itoa(len(w.args))))
}

func (w *whereClause) String() string {
	if len(w.conditions) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conditions, " AND ")
}

func (w *whereClause) next() string {
	return "$" + strconv.Itoa(len(w.args)+1)
}

func (r *PostgresRepository) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, int, error) {
	var where whereClause
	if filter.Status != "" {
		where.add("o.status = ?", string(filter.Status))
	}

	var total int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM orders o"+where.String(), where.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := "SELECT " + orderColumns + orderJoins + where.String() +
		" ORDER BY o.created_at DESC LIMIT " + where.next()
	args := append(where.args, filter.Limit)
	query += " OFFSET $" + strconv.Itoa(len(args)+1)
	args = append(args, filter.Offset())

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	orders, err := collectOrders(rows)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *PostgresRepository) ListOrdersByCustomer(ctx context.Context, customerID int, status domain.OrderStatus) ([]domain.Order, error) {
	return r.listOrdersBy(ctx, "o.customer_id = ?", customerID, status)
}

func (r *PostgresRepository) ListOrdersByRestaurant(ctx context.Context, restaurantID int, status domain.OrderStatus) ([]domain.Order, error) {
	return r.listOrdersBy(ctx, "o.restaurant_id = ?", restaurantID, status)
}

func (r *PostgresRepository) listOrdersBy(ctx context.Context, condition string, id int, status domain.OrderStatus) ([]domain.Order, error) {
	var where whereClause
	where.add(condition, id)
	if status != "" {
		where.add("o.status = ?", string(status))
	}

	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+orderColumns+orderJoins+where.String()+" ORDER BY o.created_at DESC", where.args...)
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}

func (r *PostgresRepository) RecentOrders(ctx context.Context, limit int) ([]domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+orderColumns+orderJoins+" ORDER BY o.created_at DESC LIMIT $1", limit)
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}
