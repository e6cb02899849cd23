package usecase

import (
	"context"
	"fmt"
	"time"

	"hotel-management/internal/data/entity"
	"hotel-management/internal/data/repository"
	"hotel-management/pkg/cache"

	"go.uber.org/zap"
)

type DashboardService interface {
	Stats(ctx context.Context) (*entity.DashboardStats, error)
}

type dashboardService struct {
	dashboardRepo repository.DashboardRepository
	cache         cache.Cache
	ttl           time.Duration
	log           *zap.Logger
}

func NewDashboardService(
	dashboardRepo repository.DashboardRepository,
	statsCache cache.Cache,
	ttl time.Duration,
	log *zap.Logger,
) DashboardService {
	return &dashboardService{
		dashboardRepo: dashboardRepo,
		cache:         statsCache,
		ttl:           ttl,
		log:           log.With(zap.String("service", "dashboard")),
	}
}

// Stats serves from the cache when possible. A broken cache degrades to
// reading the database.
func (ds *dashboardService) Stats(ctx context.Context) (*entity.DashboardStats, error) {
	var cached entity.DashboardStats
	found, err := ds.cache.Get(ctx, dashboardStatsKey, &cached)
	if err != nil {
		ds.log.Warn("Dashboard cache read failed", zap.Error(err))
	}
	if found {
		return &cached, nil
	}

	stats, err := ds.dashboardRepo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}

	if ds.ttl > 0 {
		if err := ds.cache.Set(ctx, dashboardStatsKey, stats, ds.ttl); err != nil {
			ds.log.Warn("Dashboard cache write failed", zap.Error(err))
		}
	}

	return stats, nil
}
