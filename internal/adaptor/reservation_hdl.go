package adaptor

import (
	"encoding/json"
	"net/http"

	"hotel-management/internal/dto/request"
	"hotel-management/internal/usecase"
	"hotel-management/pkg/utils"

	"go.uber.org/zap"
)

type ReservationHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewReservationHandler(service usecase.BookingService, log *zap.Logger) *ReservationHandler {
	return &ReservationHandler{
		service: service,
		log:     log.With(zap.String("handler", "reservation")),
	}
}

// Create handles POST /api/reservations
func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	reservation, err := h.service.CreateReservation(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create reservation")
		return
	}

	utils.ResponseCreated(w, "Reservation created", reservation)
}

// List handles GET /api/reservations?page=&per_page=
func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request) {
	req := paginationFromQuery(r)

	reservations, err := h.service.ListReservations(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "list reservations")
		return
	}

	utils.ResponseSuccess(w, "success", reservations)
}

// Delete handles DELETE /api/reservations/{id}
func (h *ReservationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteReservation(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete reservation")
		return
	}

	utils.ResponseSuccess(w, "Reservation deleted", nil)
}

// AvailableRooms handles GET /api/reservations/options/rooms
func (h *ReservationHandler) AvailableRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.service.ListAvailableRooms(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list available rooms")
		return
	}

	utils.ResponseSuccess(w, "success", rooms)
}

// CustomerNames handles GET /api/reservations/options/customers
func (h *ReservationHandler) CustomerNames(w http.ResponseWriter, r *http.Request) {
	names, err := h.service.ListCustomerNames(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list customer names")
		return
	}

	utils.ResponseSuccess(w, "success", names)
}
