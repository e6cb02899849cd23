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

type ReservationRepository interface {
	Create(ctx context.Context, reservation *entity.Reservation) error
	FindByID(ctx context.Context, id int64) (*entity.Reservation, error)
	FindDetailByID(ctx context.Context, id int64) (*entity.ReservationDetail, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.ReservationDetail, error)
	CountAll(ctx context.Context) (int64, error)

	// Booking engine only: must run inside a transaction
	FindByIDForUpdate(ctx context.Context, id int64) (*entity.Reservation, error)
	Delete(ctx context.Context, id int64) error
}

type reservationRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewReservationRepository(db database.Querier, log *zap.Logger) ReservationRepository {
	return &reservationRepository{
		db:  db,
		log: log.With(zap.String("repository", "reservation")),
	}
}

const reservationColumns = `res_id, customer_id, room_id, check_in, check_out, total_days, total_cost, status`

const reservationDetailQuery = `
	SELECT r.res_id, r.customer_id, r.room_id, r.check_in, r.check_out,
	       r.total_days, r.total_cost, r.status, c.name, ro.room_no
	FROM reservations r
	JOIN customers c ON r.customer_id = c.customer_id
	JOIN rooms ro ON r.room_id = ro.room_id
`

func (r *reservationRepository) Create(ctx context.Context, res *entity.Reservation) error {
	query := `
		INSERT INTO reservations (customer_id, room_id, check_in, check_out, total_days, total_cost, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING res_id
	`

	err := r.db.QueryRow(ctx, query,
		res.CustomerID,
		res.RoomID,
		res.CheckIn,
		res.CheckOut,
		res.TotalDays,
		res.TotalCost,
		res.Status,
	).Scan(&res.ID)

	if err != nil {
		r.log.Error("Failed to create reservation",
			zap.Error(err),
			zap.Int64("customer_id", res.CustomerID),
			zap.Int64("room_id", res.RoomID),
		)
		return fmt.Errorf("create reservation for room %d: %w", res.RoomID, translateConstraintError(err, "", nil))
	}

	return nil
}

func (r *reservationRepository) FindByID(ctx context.Context, id int64) (*entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE res_id = $1`
	return r.findOne(ctx, query, id)
}

// FindByIDForUpdate locks the reservation row until the surrounding transaction ends
func (r *reservationRepository) FindByIDForUpdate(ctx context.Context, id int64) (*entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE res_id = $1 FOR UPDATE`
	return r.findOne(ctx, query, id)
}

func (r *reservationRepository) findOne(ctx context.Context, query string, id int64) (*entity.Reservation, error) {
	var res entity.Reservation
	err := r.db.QueryRow(ctx, query, id).Scan(
		&res.ID,
		&res.CustomerID,
		&res.RoomID,
		&res.CheckIn,
		&res.CheckOut,
		&res.TotalDays,
		&res.TotalCost,
		&res.Status,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find reservation by ID",
			zap.Error(err),
			zap.Int64("res_id", id),
		)
		return nil, fmt.Errorf("find reservation by ID %d: %w", id, err)
	}

	return &res, nil
}

func (r *reservationRepository) FindDetailByID(ctx context.Context, id int64) (*entity.ReservationDetail, error) {
	query := reservationDetailQuery + ` WHERE r.res_id = $1`

	row := r.db.QueryRow(ctx, query, id)
	detail, err := scanReservationDetail(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find reservation detail",
			zap.Error(err),
			zap.Int64("res_id", id),
		)
		return nil, fmt.Errorf("find reservation detail %d: %w", id, err)
	}

	return detail, nil
}

func (r *reservationRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.ReservationDetail, error) {
	query := reservationDetailQuery + ` ORDER BY r.res_id DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list reservations",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	var reservations []*entity.ReservationDetail
	for rows.Next() {
		detail, err := scanReservationDetail(rows)
		if err != nil {
			r.log.Error("Failed to scan reservation row", zap.Error(err))
			return nil, fmt.Errorf("scan reservation row: %w", err)
		}
		reservations = append(reservations, detail)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reservation rows: %w", err)
	}

	return reservations, nil
}

func (r *reservationRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM reservations`).Scan(&count); err != nil {
		r.log.Error("Failed to count reservations", zap.Error(err))
		return 0, fmt.Errorf("count reservations: %w", err)
	}
	return count, nil
}

func (r *reservationRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM reservations WHERE res_id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete reservation",
			zap.Error(err),
			zap.Int64("res_id", id),
		)
		return fmt.Errorf("delete reservation %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reservation %d: %w", id, entity.ErrReservationNotFound)
	}

	return nil
}

func scanReservationDetail(row pgx.Row) (*entity.ReservationDetail, error) {
	var d entity.ReservationDetail
	err := row.Scan(
		&d.ID,
		&d.CustomerID,
		&d.RoomID,
		&d.CheckIn,
		&d.CheckOut,
		&d.TotalDays,
		&d.TotalCost,
		&d.Status,
		&d.CustomerName,
		&d.RoomNo,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
