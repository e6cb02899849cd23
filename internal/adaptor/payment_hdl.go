package adaptor

import (
	"encoding/json"
	"net/http"

	"hotel-management/internal/dto/request"
	"hotel-management/internal/usecase"
	"hotel-management/pkg/utils"

	"go.uber.org/zap"
)

type PaymentHandler struct {
	booking usecase.BookingService
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(booking usecase.BookingService, service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		booking: booking,
		service: service,
		log:     log.With(zap.String("handler", "payment")),
	}
}

// Record handles POST /api/payments
func (h *PaymentHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req request.RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	payment, err := h.booking.RecordPayment(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "record payment")
		return
	}

	utils.ResponseCreated(w, "Payment recorded", payment)
}

// List handles GET /api/payments?page=&per_page=
func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	req := paginationFromQuery(r)

	payments, err := h.service.List(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "list payments")
		return
	}

	utils.ResponseSuccess(w, "success", payments)
}

// Delete handles DELETE /api/payments/{id}
func (h *PaymentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete payment")
		return
	}

	utils.ResponseSuccess(w, "Payment deleted", nil)
}
