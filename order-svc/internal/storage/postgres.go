package storage

import (
	"context"
	"database/sql"
	"errors"

	"foodie-hub/order-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

const restaurantColumns = `id, name, COALESCE(description, ''), address, phone, COALESCE(email, ''),
	COALESCE(cuisine_type, ''), COALESCE(opening_hours, ''), is_active, created_at, updated_at`

func scanRestaurant(row rowScanner) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := row.Scan(&rest.ID, &rest.Name, &rest.Description, &rest.Address, &rest.Phone, &rest.Email,
		&rest.CuisineType, &rest.OpeningHours, &rest.IsActive, &rest.CreatedAt, &rest.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *PostgresRepository) CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO restaurants (name, description, address, phone, email, cuisine_type, opening_hours)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, is_active, created_at, updated_at`,
		rest.Name, rest.Description, rest.Address, rest.Phone, rest.Email, rest.CuisineType, rest.OpeningHours,
	).Scan(&rest.ID, &rest.IsActive, &rest.CreatedAt, &rest.UpdatedAt)
}

func (r *PostgresRepository) ListRestaurants(ctx context.Context, page domain.PageRequest) ([]domain.Restaurant, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM restaurants WHERE is_active = true").Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+restaurantColumns+`
		FROM restaurants
		WHERE is_active = true
		ORDER BY name
		LIMIT $1 OFFSET $2`, page.Limit, page.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var restaurants []domain.Restaurant
	for rows.Next() {
		rest, err := scanRestaurant(rows)
		if err != nil {
			return nil, 0, err
		}
		restaurants = append(restaurants, *rest)
	}
	return restaurants, total, rows.Err()
}

// GetRestaurant returns an active restaurant. Soft-deleted restaurants are
// reported as missing.
func (r *PostgresRepository) GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error) {
	rest, err := scanRestaurant(r.DB.QueryRowContext(ctx, `
		SELECT `+restaurantColumns+`
		FROM restaurants
		WHERE id = $1 AND is_active = true`, id))
	if err != nil {
		return nil, notFound(err, "restaurant")
	}
	return rest, nil
}

func (r *PostgresRepository) UpdateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	err := r.DB.QueryRowContext(ctx, `
		UPDATE restaurants
		SET name = $1, description = $2, address = $3, phone = $4, email = $5,
			cuisine_type = $6, opening_hours = $7, updated_at = NOW()
		WHERE id = $8 AND is_active = true
		RETURNING is_active, created_at, updated_at`,
		rest.Name, rest.Description, rest.Address, rest.Phone, rest.Email, rest.CuisineType, rest.OpeningHours, rest.ID,
	).Scan(&rest.IsActive, &rest.CreatedAt, &rest.UpdatedAt)
	return notFound(err, "restaurant")
}

func (r *PostgresRepository) DeactivateRestaurant(ctx context.Context, id int) (*domain.Restaurant, error) {
	rest, err := scanRestaurant(r.DB.QueryRowContext(ctx, `
		UPDATE restaurants
		SET is_active = false, updated_at = NOW()
		WHERE id = $1 AND is_active = true
		RETURNING `+restaurantColumns, id))
	if err != nil {
		return nil, notFound(err, "restaurant")
	}
	return rest, nil
}

const menuItemColumns = `m.id, m.restaurant_id, r.name, m.name, COALESCE(m.description, ''), m.price,
	COALESCE(m.category, ''), COALESCE(m.preparation_time, 0), COALESCE(m.image_url, ''),
	m.is_available, m.created_at, m.updated_at`

func scanMenuItem(row rowScanner) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := row.Scan(&item.ID, &item.RestaurantID, &item.RestaurantName, &item.Name, &item.Description, &item.Price,
		&item.Category, &item.PreparationTime, &item.ImageURL, &item.IsAvailable, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func collectMenuItems(rows *sql.Rows) ([]domain.MenuItem, error) {
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO menu_items (restaurant_id, name, description, price, category, preparation_time, image_url, is_available)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`,
		item.RestaurantID, item.Name, item.Description, item.Price, item.Category, item.PreparationTime, item.ImageURL, item.IsAvailable,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if pqCode(err) == pqForeignKeyViolation {
		return domain.NotFound("restaurant")
	}
	return err
}

func (r *PostgresRepository) GetMenuItem(ctx context.Context, id int) (*domain.MenuItem, error) {
	item, err := scanMenuItem(r.DB.QueryRowContext(ctx, `
		SELECT `+menuItemColumns+`
		FROM menu_items m
		JOIN restaurants r ON r.id = m.restaurant_id
		WHERE m.id = $1`, id))
	if err != nil {
		return nil, notFound(err, "menu_item")
	}
	return item, nil
}

func (r *PostgresRepository) ListMenuItems(ctx context.Context, restaurantID int, includeUnavailable bool) ([]domain.MenuItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+menuItemColumns+`
		FROM menu_items m
		JOIN restaurants r ON r.id = m.restaurant_id
		WHERE m.restaurant_id = $1 AND ($2::boolean OR m.is_available = true)
		ORDER BY m.category, m.name`, restaurantID, includeUnavailable)
	if err != nil {
		return nil, err
	}
	return collectMenuItems(rows)
}

// UpdateMenuItem rewrites the descriptive fields and price. Availability is only
// changed through ToggleAvailability.
func (r *PostgresRepository) UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	err := r.DB.QueryRowContext(ctx, `
		UPDATE menu_items
		SET name = $1, description = $2, price = $3, category = $4, preparation_time = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING restaurant_id, COALESCE(image_url, ''), is_available, created_at, updated_at`,
		item.Name, item.Description, item.Price, item.Category, item.PreparationTime, item.ID,
	).Scan(&item.RestaurantID, &item.ImageURL, &item.IsAvailable, &item.CreatedAt, &item.UpdatedAt)
	return notFound(err, "menu_item")
}

func (r *PostgresRepository) DeleteMenuItem(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM menu_items WHERE id = $1", id)
	if err != nil {
		if pqCode(err) == pqForeignKeyViolation {
			return domain.InvalidState(domain.CodeReferenced, "menu item is referenced by existing orders")
		}
		return err
	}
	return expectAffected(result, "menu_item")
}

func (r *PostgresRepository) ToggleAvailability(ctx context.Context, id int) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := r.DB.QueryRowContext(ctx, `
		UPDATE menu_items
		SET is_available = NOT is_available, updated_at = NOW()
		WHERE id = $1
		RETURNING id, restaurant_id, name, COALESCE(description, ''), price, COALESCE(category, ''),
			COALESCE(preparation_time, 0), COALESCE(image_url, ''), is_available, created_at, updated_at`, id,
	).Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Description, &item.Price, &item.Category,
		&item.PreparationTime, &item.ImageURL, &item.IsAvailable, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, notFound(err, "menu_item")
	}
	return &item, nil
}

func (r *PostgresRepository) UpdateMenuItemImage(ctx context.Context, id int, imageURL string) error {
	result, err := r.DB.ExecContext(ctx,
		"UPDATE menu_items SET image_url = $1, updated_at = NOW() WHERE id = $2", imageURL, id)
	if err != nil {
		return err
	}
	return expectAffected(result, "menu_item")
}

// SearchByCategory matches categories case-insensitively and only returns items
// that can be ordered right now.
func (r *PostgresRepository) SearchByCategory(ctx context.Context, category string) ([]domain.MenuItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+menuItemColumns+`
		FROM menu_items m
		JOIN restaurants r ON r.id = m.restaurant_id
		WHERE m.category ILIKE $1 AND m.is_available = true AND r.is_active = true
		ORDER BY r.name, m.name`, "%"+category+"%")
	if err != nil {
		return nil, err
	}
	return collectMenuItems(rows)
}

const customerColumns = `id, name, phone, COALESCE(email, ''), COALESCE(address, ''), created_at, updated_at`

func scanCustomer(row rowScanner) (*domain.Customer, error) {
	var customer domain.Customer
	err := row.Scan(&customer.ID, &customer.Name, &customer.Phone, &customer.Email, &customer.Address,
		&customer.CreatedAt, &customer.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func collectCustomers(rows *sql.Rows) ([]domain.Customer, error) {
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, *customer)
	}
	return customers, rows.Err()
}

func duplicatePhone(err error) error {
	if pqCode(err) == pqUniqueViolation {
		return domain.InvalidState(domain.CodeDuplicatePhone, "customer with this phone number already exists")
	}
	return err
}

func (r *PostgresRepository) CreateCustomer(ctx context.Context, customer *domain.Customer) error {
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO customers (name, phone, email, address)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`,
		customer.Name, customer.Phone, customer.Email, customer.Address,
	).Scan(&customer.ID, &customer.CreatedAt, &customer.UpdatedAt)
	return duplicatePhone(err)
}

func (r *PostgresRepository) ListCustomers(ctx context.Context, page domain.PageRequest) ([]domain.Customer, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM customers").Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+customerColumns+`
		FROM customers
		ORDER BY name
		LIMIT $1 OFFSET $2`, page.Limit, page.Offset())
	if err != nil {
		return nil, 0, err
	}
	customers, err := collectCustomers(rows)
	if err != nil {
		return nil, 0, err
	}
	return customers, total, nil
}

func (r *PostgresRepository) GetCustomer(ctx context.Context, id int) (*domain.Customer, error) {
	customer, err := scanCustomer(r.DB.QueryRowContext(ctx,
		"SELECT "+customerColumns+" FROM customers WHERE id = $1", id))
	if err != nil {
		return nil, notFound(err, "customer")
	}
	return customer, nil
}

func (r *PostgresRepository) GetCustomerByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	customer, err := scanCustomer(r.DB.QueryRowContext(ctx,
		"SELECT "+customerColumns+" FROM customers WHERE phone = $1", phone))
	if err != nil {
		return nil, notFound(err, "customer")
	}
	return customer, nil
}

func (r *PostgresRepository) UpdateCustomer(ctx context.Context, customer *domain.Customer) error {
	err := r.DB.QueryRowContext(ctx, `
		UPDATE customers
		SET name = $1, phone = $2, email = $3, address = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING created_at, updated_at`,
		customer.Name, customer.Phone, customer.Email, customer.Address, customer.ID,
	).Scan(&customer.CreatedAt, &customer.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFound("customer")
	}
	return duplicatePhone(err)
}

// DeleteCustomer removes a customer without orders. Orders keep their customer,
// so the foreign key refuses the delete otherwise.
func (r *PostgresRepository) DeleteCustomer(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM customers WHERE id = $1", id)
	if err != nil {
		if pqCode(err) == pqForeignKeyViolation {
			return domain.InvalidState(domain.CodeReferenced, "cannot delete customer with existing orders")
		}
		return err
	}
	return expectAffected(result, "customer")
}

func (r *PostgresRepository) SearchCustomers(ctx context.Context, name string) ([]domain.Customer, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+customerColumns+`
		FROM customers
		WHERE name ILIKE $1
		ORDER BY name
		LIMIT 50`, "%"+name+"%")
	if err != nil {
		return nil, err
	}
	return collectCustomers(rows)
}
