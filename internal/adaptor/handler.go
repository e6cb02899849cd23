package adaptor

import (
	"hotel-management/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth        *AuthHandler
	Customer    *CustomerHandler
	Room        *RoomHandler
	Reservation *ReservationHandler
	Payment     *PaymentHandler
	Staff       *StaffHandler
	Dashboard   *DashboardHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(service.Auth, log),
		Customer:    NewCustomerHandler(service.Customer, log),
		Room:        NewRoomHandler(service.Room, log),
		Reservation: NewReservationHandler(service.Booking, log),
		Payment:     NewPaymentHandler(service.Booking, service.Payment, log),
		Staff:       NewStaffHandler(service.Staff, log),
		Dashboard:   NewDashboardHandler(service.Dashboard, log),
	}
}
