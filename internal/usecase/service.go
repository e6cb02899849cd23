package usecase

import (
	"context"
	"fmt"

	"hotel-management/internal/data/entity"
	"hotel-management/internal/data/repository"
	"hotel-management/pkg/cache"
	"hotel-management/pkg/events"
	"hotel-management/pkg/utils"

	"go.uber.org/zap"
)

// dashboardStatsKey is invalidated by every write that changes a dashboard figure
const dashboardStatsKey = "dashboard:stats"

type Service struct {
	Auth      AuthService
	Customer  CustomerService
	Room      RoomService
	Booking   BookingService
	Payment   PaymentService
	Staff     StaffService
	Dashboard DashboardService
}

func NewService(
	repo *repository.Repository,
	config *utils.Config,
	statsCache cache.Cache,
	publisher events.Publisher,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:      NewAuthService(repo, config, log),
		Customer:  NewCustomerService(repo.Customer, statsCache, log),
		Room:      NewRoomService(repo.Room, statsCache, log),
		Booking:   NewBookingService(repo, statsCache, publisher, log),
		Payment:   NewPaymentService(repo.Payment, statsCache, log),
		Staff:     NewStaffService(repo.Staff, log),
		Dashboard: NewDashboardService(repo.Dashboard, statsCache, config.Redis.StatsTTL, log),
	}
}

// invalidateStats drops the cached dashboard figures. Cache failures never
// fail the write that triggered them.
func invalidateStats(ctx context.Context, statsCache cache.Cache, log *zap.Logger) {
	if err := statsCache.Delete(ctx, dashboardStatsKey); err != nil {
		log.Warn("Failed to invalidate dashboard stats", zap.Error(err))
	}
}

// validationError wraps struct validation failures in ErrValidation
func validationError(errs map[string]string) error {
	return fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
}
