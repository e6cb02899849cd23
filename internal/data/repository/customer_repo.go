package repository

import (
	"context"
	"errors"
	"fmt"

	"hotel-management/internal/data/entity"
	"hotel-management/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	FindByID(ctx context.Context, id int64) (*entity.Customer, error)
	FindIDsByName(ctx context.Context, name string, limit int) ([]int64, error)
	FindAll(ctx context.Context, search string, limit, offset int) ([]*entity.Customer, error)
	Count(ctx context.Context, search string) (int64, error)
	ListNames(ctx context.Context) ([]string, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id int64) error
}

type customerRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewCustomerRepository(db database.Querier, log *zap.Logger) CustomerRepository {
	return &customerRepository{
		db:  db,
		log: log.With(zap.String("repository", "customer")),
	}
}

const customerColumns = `customer_id, name, phone, nationality, gender, dob, address`

// search matches name or phone; empty search matches everything
const customerSearch = `($1 = '' OR name ILIKE '%' || $1 || '%' OR phone ILIKE '%' || $1 || '%')`

func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (name, phone, nationality, gender, dob, address)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING customer_id
	`

	err := r.db.QueryRow(ctx, query,
		customer.Name,
		customer.Phone,
		customer.Nationality,
		customer.Gender,
		customer.DOB,
		customer.Address,
	).Scan(&customer.ID)

	if err != nil {
		r.log.Error("Failed to create customer",
			zap.Error(err),
			zap.String("name", customer.Name),
		)
		return fmt.Errorf("create customer %s: %w", customer.Name, translateConstraintError(err, "", nil))
	}

	return nil
}

func (r *customerRepository) FindByID(ctx context.Context, id int64) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE customer_id = $1`

	var c entity.Customer
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.Name,
		&c.Phone,
		&c.Nationality,
		&c.Gender,
		&c.DOB,
		&c.Address,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find customer by ID",
			zap.Error(err),
			zap.Int64("customer_id", id),
		)
		return nil, fmt.Errorf("find customer by ID %d: %w", id, err)
	}

	return &c, nil
}

// FindIDsByName returns up to limit customers whose name matches exactly.
// Names are not unique, so callers decide what more than one match means.
func (r *customerRepository) FindIDsByName(ctx context.Context, name string, limit int) ([]int64, error) {
	query := `SELECT customer_id FROM customers WHERE name = $1 ORDER BY customer_id LIMIT $2`

	rows, err := r.db.Query(ctx, query, name, limit)
	if err != nil {
		r.log.Error("Failed to find customers by name",
			zap.Error(err),
			zap.String("name", name),
		)
		return nil, fmt.Errorf("find customers by name %s: %w", name, err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("collect customer ids: %w", err)
	}

	return ids, nil
}

func (r *customerRepository) FindAll(ctx context.Context, search string, limit, offset int) ([]*entity.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE ` + customerSearch + `
		ORDER BY customer_id
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, search, limit, offset)
	if err != nil {
		r.log.Error("Failed to list customers",
			zap.Error(err),
			zap.String("search", search),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var customers []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Phone,
			&c.Nationality,
			&c.Gender,
			&c.DOB,
			&c.Address,
		); err != nil {
			r.log.Error("Failed to scan customer row", zap.Error(err))
			return nil, fmt.Errorf("scan customer row: %w", err)
		}
		customers = append(customers, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate customer rows: %w", err)
	}

	return customers, nil
}

func (r *customerRepository) Count(ctx context.Context, search string) (int64, error) {
	query := `SELECT COUNT(*) FROM customers WHERE ` + customerSearch

	var count int64
	if err := r.db.QueryRow(ctx, query, search).Scan(&count); err != nil {
		r.log.Error("Failed to count customers", zap.Error(err))
		return 0, fmt.Errorf("count customers: %w", err)
	}

	return count, nil
}

// ListNames feeds the customer selection of the booking form
func (r *customerRepository) ListNames(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT name FROM customers ORDER BY name`)
	if err != nil {
		r.log.Error("Failed to list customer names", zap.Error(err))
		return nil, fmt.Errorf("list customer names: %w", err)
	}

	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("collect customer names: %w", err)
	}

	return names, nil
}

func (r *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	query := `
		UPDATE customers
		SET name = $2, phone = $3, nationality = $4, gender = $5, dob = $6, address = $7
		WHERE customer_id = $1
	`

	result, err := r.db.Exec(ctx, query,
		customer.ID,
		customer.Name,
		customer.Phone,
		customer.Nationality,
		customer.Gender,
		customer.DOB,
		customer.Address,
	)
	if err != nil {
		r.log.Error("Failed to update customer",
			zap.Error(err),
			zap.Int64("customer_id", customer.ID),
		)
		return fmt.Errorf("update customer %d: %w", customer.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("customer %d: %w", customer.ID, entity.ErrNotFound)
	}

	return nil
}

// Delete cascades to the customer's reservations; the reservations trigger
// frees their rooms.
func (r *customerRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM customers WHERE customer_id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete customer",
			zap.Error(err),
			zap.Int64("customer_id", id),
		)
		return fmt.Errorf("delete customer %d: %w", id, translateConstraintError(err, "", nil))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("customer %d: %w", id, entity.ErrNotFound)
	}

	r.log.Info("Customer deleted", zap.Int64("customer_id", id))
	return nil
}
