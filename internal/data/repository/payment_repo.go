package repository

import (
	"context"
	"fmt"

	"hotel-management/internal/data/entity"
	"hotel-management/pkg/database"

	"go.uber.org/zap"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindAll(ctx context.Context, limit, offset int) ([]*entity.PaymentDetail, error)
	CountAll(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type paymentRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewPaymentRepository(db database.Querier, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	query := `
		INSERT INTO payments (res_id, amount, payment_date, method)
		VALUES ($1, $2, $3, $4)
		RETURNING payment_id
	`

	err := r.db.QueryRow(ctx, query,
		payment.ReservationID,
		payment.Amount,
		payment.PaymentDate,
		payment.Method,
	).Scan(&payment.ID)

	if err != nil {
		r.log.Error("Failed to create payment",
			zap.Error(err),
			zap.Int64p("res_id", payment.ReservationID),
			zap.Float64("amount", payment.Amount),
		)
		// the reservation can be deleted between lookup and insert
		err = translateConstraintError(err, "payments_res_id_fkey", entity.ErrReservationNotFound)
		return fmt.Errorf("create payment: %w", err)
	}

	return nil
}

// FindAll lists payments newest first. Payments whose reservation was deleted
// are kept with an empty customer name.
func (r *paymentRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.PaymentDetail, error) {
	query := `
		SELECT p.payment_id, p.res_id, p.amount::float8, p.payment_date, p.method, COALESCE(c.name, '')
		FROM payments p
		LEFT JOIN reservations r ON p.res_id = r.res_id
		LEFT JOIN customers c ON r.customer_id = c.customer_id
		ORDER BY p.payment_id DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list payments",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var payments []*entity.PaymentDetail
	for rows.Next() {
		var p entity.PaymentDetail
		if err := rows.Scan(
			&p.ID,
			&p.ReservationID,
			&p.Amount,
			&p.PaymentDate,
			&p.Method,
			&p.CustomerName,
		); err != nil {
			r.log.Error("Failed to scan payment row", zap.Error(err))
			return nil, fmt.Errorf("scan payment row: %w", err)
		}
		payments = append(payments, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payment rows: %w", err)
	}

	return payments, nil
}

func (r *paymentRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM payments`).Scan(&count); err != nil {
		r.log.Error("Failed to count payments", zap.Error(err))
		return 0, fmt.Errorf("count payments: %w", err)
	}
	return count, nil
}

func (r *paymentRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM payments WHERE payment_id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete payment",
			zap.Error(err),
			zap.Int64("payment_id", id),
		)
		return fmt.Errorf("delete payment %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("payment %d: %w", id, entity.ErrNotFound)
	}

	r.log.Info("Payment deleted", zap.Int64("payment_id", id))
	return nil
}
