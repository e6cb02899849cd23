package usecase

import (
	"context"
	"fmt"

	"hotel-management/internal/data/repository"
	"hotel-management/internal/dto/request"
	"hotel-management/internal/dto/response"
	"hotel-management/pkg/cache"

	"go.uber.org/zap"
)

// PaymentService lists and removes payments. Recording goes through
// BookingService.RecordPayment.
type PaymentService interface {
	List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PaymentResponse], error)
	Delete(ctx context.Context, id int64) error
}

type paymentService struct {
	paymentRepo repository.PaymentRepository
	cache       cache.Cache
	log         *zap.Logger
}

func NewPaymentService(paymentRepo repository.PaymentRepository, statsCache cache.Cache, log *zap.Logger) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		cache:       statsCache,
		log:         log.With(zap.String("service", "payment")),
	}
}

func (ps *paymentService) List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PaymentResponse], error) {
	payments, err := ps.paymentRepo.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}

	total, err := ps.paymentRepo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count payments: %w", err)
	}

	items := make([]response.PaymentResponse, len(payments))
	for i, p := range payments {
		items[i] = response.PaymentToResponse(&p.Payment, p.CustomerName)
	}

	return response.NewPaginatedResponse(items, req.Page, req.Limit(), total), nil
}

func (ps *paymentService) Delete(ctx context.Context, id int64) error {
	if err := ps.paymentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}

	invalidateStats(ctx, ps.cache, ps.log)
	ps.log.Info("Payment deleted", zap.Int64("payment_id", id))
	return nil
}
