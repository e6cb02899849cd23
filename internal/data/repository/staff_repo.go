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

type StaffRepository interface {
	Create(ctx context.Context, staff *entity.Staff) error
	FindByID(ctx context.Context, id int64) (*entity.Staff, error)
	FindAll(ctx context.Context, search string) ([]*entity.Staff, error)
	Update(ctx context.Context, staff *entity.Staff) error
	Delete(ctx context.Context, id int64) error
}

type staffRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewStaffRepository(db database.Querier, log *zap.Logger) StaffRepository {
	return &staffRepository{
		db:  db,
		log: log.With(zap.String("repository", "staff")),
	}
}

func (r *staffRepository) Create(ctx context.Context, staff *entity.Staff) error {
	query := `
		INSERT INTO staff (name, phone, role, salary)
		VALUES ($1, $2, $3, $4)
		RETURNING staff_id
	`

	err := r.db.QueryRow(ctx, query, staff.Name, staff.Phone, staff.Role, staff.Salary).Scan(&staff.ID)
	if err != nil {
		r.log.Error("Failed to create staff member",
			zap.Error(err),
			zap.String("name", staff.Name),
		)
		return fmt.Errorf("create staff %s: %w", staff.Name, err)
	}

	return nil
}

func (r *staffRepository) FindByID(ctx context.Context, id int64) (*entity.Staff, error) {
	query := `SELECT staff_id, name, phone, role, salary FROM staff WHERE staff_id = $1`

	var s entity.Staff
	err := r.db.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name, &s.Phone, &s.Role, &s.Salary)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find staff by ID",
			zap.Error(err),
			zap.Int64("staff_id", id),
		)
		return nil, fmt.Errorf("find staff by ID %d: %w", id, err)
	}

	return &s, nil
}

// FindAll matches search against name or role; empty search lists everyone
func (r *staffRepository) FindAll(ctx context.Context, search string) ([]*entity.Staff, error) {
	query := `
		SELECT staff_id, name, phone, role, salary
		FROM staff
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR role ILIKE '%' || $1 || '%')
		ORDER BY staff_id
	`

	rows, err := r.db.Query(ctx, query, search)
	if err != nil {
		r.log.Error("Failed to list staff", zap.Error(err), zap.String("search", search))
		return nil, fmt.Errorf("list staff: %w", err)
	}
	defer rows.Close()

	var staff []*entity.Staff
	for rows.Next() {
		var s entity.Staff
		if err := rows.Scan(&s.ID, &s.Name, &s.Phone, &s.Role, &s.Salary); err != nil {
			r.log.Error("Failed to scan staff row", zap.Error(err))
			return nil, fmt.Errorf("scan staff row: %w", err)
		}
		staff = append(staff, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate staff rows: %w", err)
	}

	return staff, nil
}

func (r *staffRepository) Update(ctx context.Context, staff *entity.Staff) error {
	query := `UPDATE staff SET name = $2, phone = $3, role = $4, salary = $5 WHERE staff_id = $1`

	result, err := r.db.Exec(ctx, query, staff.ID, staff.Name, staff.Phone, staff.Role, staff.Salary)
	if err != nil {
		r.log.Error("Failed to update staff",
			zap.Error(err),
			zap.Int64("staff_id", staff.ID),
		)
		return fmt.Errorf("update staff %d: %w", staff.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("staff %d: %w", staff.ID, entity.ErrNotFound)
	}

	return nil
}

func (r *staffRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM staff WHERE staff_id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete staff",
			zap.Error(err),
			zap.Int64("staff_id", id),
		)
		return fmt.Errorf("delete staff %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("staff %d: %w", id, entity.ErrNotFound)
	}

	r.log.Info("Staff deleted", zap.Int64("staff_id", id))
	return nil
}
