package storage

import (
	"context"
	"time"

	"foodie-hub/order-svc/internal/domain"
)

// Report queries ignore cancelled orders.

func (r *PostgresRepository) PopularMenuItems(ctx context.Context, limit int) ([]domain.PopularItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT m.id, m.name, COALESCE(m.description, ''), m.price, COALESCE(m.category, ''), r.name,
			SUM(oi.quantity) AS total_ordered, COUNT(DISTINCT oi.order_id) AS order_count
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		JOIN menu_items m ON m.id = oi.menu_item_id
		JOIN restaurants r ON r.id = m.restaurant_id
		WHERE o.status <> 'cancelled'
		GROUP BY m.id, m.name, m.description, m.price, m.category, r.name
		ORDER BY total_ordered DESC, m.name
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.PopularItem
	for rows.Next() {
		var item domain.PopularItem
		if err := rows.Scan(&item.MenuItemID, &item.Name, &item.Description, &item.Price, &item.Category,
			&item.RestaurantName, &item.TotalOrdered, &item.OrderCount); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// SalesReport aggregates per menu item over orders created within [from, to].
// A nil bound leaves that side open.
func (r *PostgresRepository) SalesReport(ctx context.Context, from, to *time.Time) ([]domain.SalesRow, error) {
	var where whereClause
	where.conditions = append(where.conditions, "o.status <> 'cancelled'")
	if from != nil {
		where.add("o.created_at >= ?", *from)
	}
	if to != nil {
		where.add("o.created_at <= ?", *to)
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT m.name, COALESCE(m.category, ''), r.name,
			SUM(oi.quantity), SUM(oi.subtotal) AS total_revenue, COUNT(DISTINCT o.id),
			ROUND(AVG(oi.unit_price), 2)
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		JOIN menu_items m ON m.id = oi.menu_item_id
		JOIN restaurants r ON r.id = m.restaurant_id`+where.String()+`
		GROUP BY m.id, m.name, m.category, r.name
		ORDER BY total_revenue DESC`, where.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var report []domain.SalesRow
	for rows.Next() {
		var row domain.SalesRow
		if err := rows.Scan(&row.MenuItemName, &row.Category, &row.RestaurantName, &row.TotalQuantity,
			&row.TotalRevenue, &row.UniqueOrders, &row.AvgUnitPrice); err != nil {
			return nil, err
		}
		report = append(report, row)
	}
	return report, rows.Err()
}

func (r *PostgresRepository) CustomerOrderHistory(ctx context.Context, customerID int) ([]domain.OrderHistoryRow, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT o.id, o.customer_id, o.restaurant_id, r.name, COALESCE(r.cuisine_type, ''), o.status,
			o.total_amount, COALESCE(o.delivery_address, ''), COALESCE(o.special_instructions, ''),
			o.created_at, o.updated_at, COUNT(oi.id), COALESCE(SUM(oi.quantity), 0)
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		LEFT JOIN order_items oi ON oi.order_id = o.id
		WHERE o.customer_id = $1
		GROUP BY o.id, r.name, r.cuisine_type
		ORDER BY o.created_at DESC`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []domain.OrderHistoryRow
	for rows.Next() {
		var row domain.OrderHistoryRow
		if err := rows.Scan(&row.ID, &row.CustomerID, &row.RestaurantID, &row.RestaurantName, &row.CuisineType,
			&row.Status, &row.TotalAmount, &row.DeliveryAddress, &row.SpecialInstructions,
			&row.CreatedAt, &row.UpdatedAt, &row.TotalItems, &row.TotalQuantity); err != nil {
			return nil, err
		}
		history = append(history, row)
	}
	return history, rows.Err()
}
