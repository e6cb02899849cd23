package repository

import (
	"context"
	"fmt"

	"hotel-management/internal/data/entity"
	"hotel-management/pkg/database"

	"go.uber.org/zap"
)

type DashboardRepository interface {
	Stats(ctx context.Context) (*entity.DashboardStats, error)
}

type dashboardRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewDashboardRepository(db database.Querier, log *zap.Logger) DashboardRepository {
	return &dashboardRepository{
		db:  db,
		log: log.With(zap.String("repository", "dashboard")),
	}
}

func (r *dashboardRepository) Stats(ctx context.Context) (*entity.DashboardStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM customers),
			(SELECT COUNT(*) FROM rooms WHERE status = $1),
			(SELECT COUNT(*) FROM reservations WHERE status = $2),
			(SELECT COALESCE(SUM(amount), 0)::float8 FROM payments)
	`

	var stats entity.DashboardStats
	err := r.db.QueryRow(ctx, query, entity.RoomStatusAvailable, entity.ReservationStatusActive).Scan(
		&stats.TotalCustomers,
		&stats.AvailableRooms,
		&stats.ActiveReservations,
		&stats.TotalPayments,
	)
	if err != nil {
		r.log.Error("Failed to load dashboard stats", zap.Error(err))
		return nil, fmt.Errorf("load dashboard stats: %w", err)
	}

	return &stats, nil
}
