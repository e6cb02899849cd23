package usecase

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"hotel-management/internal/data/entity"
	"hotel-management/internal/data/repository"
	"hotel-management/internal/dto/request"
	"hotel-management/internal/dto/response"
	"hotel-management/pkg/cache"
	"hotel-management/pkg/events"
	"hotel-management/pkg/metrics"
	"hotel-management/pkg/utils"

	"go.uber.org/zap"
)

// maxPaymentAmount is the largest value payments.amount NUMERIC(12, 2) holds
const maxPaymentAmount = 9999999999.99

// BookingService is the only writer of room status
type BookingService interface {
	CreateReservation(ctx context.Context, req *request.CreateReservationRequest) (*response.ReservationResponse, error)
	DeleteReservation(ctx context.Context, reservationID int64) error
	RecordPayment(ctx context.Context, req *request.RecordPaymentRequest) (*response.PaymentResponse, error)

	ListReservations(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReservationResponse], error)
	ListAvailableRooms(ctx context.Context) ([]string, error)
	ListCustomerNames(ctx context.Context) ([]string, error)
}

type bookingService struct {
	repo      *repository.Repository
	cache     cache.Cache
	publisher events.Publisher
	log       *zap.Logger
}

func NewBookingService(
	repo *repository.Repository,
	statsCache cache.Cache,
	publisher events.Publisher,
	log *zap.Logger,
) BookingService {
	return &bookingService{
		repo:      repo,
		cache:     statsCache,
		publisher: publisher,
		log:       log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateReservation(ctx context.Context, req *request.CreateReservationRequest) (resp *response.ReservationResponse, err error) {
	defer func() { metrics.ObserveBooking("create_reservation", err) }()

	customerName := strings.TrimSpace(req.CustomerName)
	roomNo := strings.TrimSpace(req.RoomNo)
	if customerName == "" || roomNo == "" {
		return nil, entity.ErrMissingSelection
	}

	checkIn, err := utils.ParseDate(strings.TrimSpace(req.CheckIn))
	if err != nil {
		return nil, fmt.Errorf("%w: check-in %q", entity.ErrInvalidDateFormat, req.CheckIn)
	}
	checkOut, err := utils.ParseDate(strings.TrimSpace(req.CheckOut))
	if err != nil {
		return nil, fmt.Errorf("%w: check-out %q", entity.ErrInvalidDateFormat, req.CheckOut)
	}

	days := utils.DaysBetween(checkIn, checkOut)
	if days <= 0 {
		return nil, entity.ErrInvalidDateRange
	}

	var detail *entity.ReservationDetail
	err = s.repo.WithinTx(ctx, func(tx *repository.Repository) error {
		customerIDs, err := tx.Customer.FindIDsByName(ctx, customerName, 2)
		if err != nil {
			return err
		}
		switch len(customerIDs) {
		case 0:
			return fmt.Errorf("%w: %s", entity.ErrCustomerNotFound, customerName)
		case 1:
		default:
			return fmt.Errorf("%w: name %q matches more than one customer", entity.ErrCustomerNotFound, customerName)
		}

		// the row lock keeps a concurrent booking from reading Available too
		room, err := tx.Room.FindByNumberForUpdate(ctx, roomNo)
		if err != nil {
			return err
		}
		if room == nil || room.Status != entity.RoomStatusAvailable {
			return fmt.Errorf("%w: %s", entity.ErrRoomUnavailable, roomNo)
		}
		if room.Price > 0 && int64(days) > math.MaxInt64/room.Price {
			return fmt.Errorf("%w: %d days at %d per day overflows the total cost", entity.ErrValidation, days, room.Price)
		}

		reservation := &entity.Reservation{
			CustomerID: customerIDs[0],
			RoomID:     room.ID,
			CheckIn:    checkIn,
			CheckOut:   checkOut,
			TotalDays:  days,
			TotalCost:  int64(days) * room.Price,
			Status:     entity.ReservationStatusActive,
		}
		if err := tx.Reservation.Create(ctx, reservation); err != nil {
			return err
		}

		if err := tx.Room.UpdateStatus(ctx, room.ID, entity.RoomStatusBooked); err != nil {
			return err
		}

		detail = &entity.ReservationDetail{
			Reservation:  *reservation,
			CustomerName: customerName,
			RoomNo:       room.RoomNo,
		}
		return nil
	})
	if err != nil {
		s.log.Warn("Create reservation failed",
			zap.Error(err),
			zap.String("customer", customerName),
			zap.String("room_no", roomNo),
		)
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	result := response.ReservationToResponse(detail)

	s.log.Info("Reservation created",
		zap.Int64("res_id", detail.ID),
		zap.String("room_no", detail.RoomNo),
		zap.Int("total_days", detail.TotalDays),
		zap.Int64("total_cost", detail.TotalCost),
	)
	s.afterCommit(ctx, events.ReservationCreated, result)

	return &result, nil
}

func (s *bookingService) DeleteReservation(ctx context.Context, reservationID int64) (err error) {
	defer func() { metrics.ObserveBooking("delete_reservation", err) }()

	var roomID int64
	err = s.repo.WithinTx(ctx, func(tx *repository.Repository) error {
		reservation, err := tx.Reservation.FindByIDForUpdate(ctx, reservationID)
		if err != nil {
			return err
		}
		if reservation == nil {
			return fmt.Errorf("%w: %d", entity.ErrReservationNotFound, reservationID)
		}
		roomID = reservation.RoomID

		if err := tx.Room.UpdateStatus(ctx, reservation.RoomID, entity.RoomStatusAvailable); err != nil {
			return err
		}

		return tx.Reservation.Delete(ctx, reservationID)
	})
	if err != nil {
		s.log.Warn("Delete reservation failed", zap.Error(err), zap.Int64("res_id", reservationID))
		return fmt.Errorf("delete reservation: %w", err)
	}

	s.log.Info("Reservation deleted", zap.Int64("res_id", reservationID), zap.Int64("room_id", roomID))
	s.afterCommit(ctx, events.ReservationDeleted, map[string]int64{
		"reservation_id": reservationID,
		"room_id":        roomID,
	})

	return nil
}

func (s *bookingService) RecordPayment(ctx context.Context, req *request.RecordPaymentRequest) (resp *response.PaymentResponse, err error) {
	defer func() { metrics.ObserveBooking("record_payment", err) }()

	reservation, err := s.repo.Reservation.FindDetailByID(ctx, req.ReservationID)
	if err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}
	if reservation == nil {
		return nil, fmt.Errorf("%w: %d", entity.ErrReservationNotFound, req.ReservationID)
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	paymentDate, err := utils.ParseDate(strings.TrimSpace(req.PaymentDate))
	if err != nil {
		return nil, fmt.Errorf("%w: payment date %q", entity.ErrInvalidDateFormat, req.PaymentDate)
	}

	method := entity.PaymentMethod(strings.TrimSpace(req.Method))
	if !method.Valid() {
		return nil, fmt.Errorf("%w: method must be one of Cash, Card, Online", entity.ErrValidation)
	}

	payment := &entity.Payment{
		ReservationID: &reservation.ID,
		Amount:        amount,
		PaymentDate:   paymentDate,
		Method:        method,
	}
	if err := s.repo.Payment.Create(ctx, payment); err != nil {
		s.log.Error("Failed to record payment", zap.Error(err), zap.Int64("res_id", reservation.ID))
		return nil, fmt.Errorf("record payment: %w", err)
	}

	result := response.PaymentToResponse(payment, reservation.CustomerName)

	s.log.Info("Payment recorded",
		zap.Int64("payment_id", payment.ID),
		zap.Int64("res_id", reservation.ID),
		zap.Float64("amount", amount),
		zap.String("method", string(method)),
	)
	s.afterCommit(ctx, events.PaymentRecorded, result)

	return &result, nil
}

func (s *bookingService) ListReservations(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReservationResponse], error) {
	reservations, err := s.repo.Reservation.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	total, err := s.repo.Reservation.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count reservations: %w", err)
	}

	items := make([]response.ReservationResponse, len(reservations))
	for i, r := range reservations {
		items[i] = response.ReservationToResponse(r)
	}

	return response.NewPaginatedResponse(items, req.Page, req.Limit(), total), nil
}

func (s *bookingService) ListAvailableRooms(ctx context.Context) ([]string, error) {
	rooms, err := s.repo.Room.ListAvailableNumbers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list available rooms: %w", err)
	}
	if rooms == nil {
		rooms = []string{}
	}
	return rooms, nil
}

func (s *bookingService) ListCustomerNames(ctx context.Context) ([]string, error) {
	names, err := s.repo.Customer.ListNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("list customer names: %w", err)
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// afterCommit runs the side channels of a committed booking change. Their
// failures are logged only.
func (s *bookingService) afterCommit(ctx context.Context, eventType string, payload any) {
	invalidateStats(ctx, s.cache, s.log)

	if err := s.publisher.Publish(ctx, eventType, payload); err != nil {
		s.log.Warn("Failed to publish booking event", zap.Error(err), zap.String("event", eventType))
	}
}

func parseAmount(raw string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 || amount > maxPaymentAmount {
		return 0, fmt.Errorf("%w: %q", entity.ErrInvalidAmount, raw)
	}
	return amount, nil
}
