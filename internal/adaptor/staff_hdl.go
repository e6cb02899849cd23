package adaptor

import (
	"encoding/json"
	"net/http"

	"hotel-management/internal/dto/request"
	"hotel-management/internal/usecase"
	"hotel-management/pkg/utils"

	"go.uber.org/zap"
)

type StaffHandler struct {
	service usecase.StaffService
	log     *zap.Logger
}

func NewStaffHandler(service usecase.StaffService, log *zap.Logger) *StaffHandler {
	return &StaffHandler{
		service: service,
		log:     log.With(zap.String("handler", "staff")),
	}
}

// List handles GET /api/staff?search=
func (h *StaffHandler) List(w http.ResponseWriter, r *http.Request) {
	staff, err := h.service.List(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		handleServiceError(w, h.log, err, "list staff")
		return
	}

	utils.ResponseSuccess(w, "success", staff)
}

// Get handles GET /api/staff/{id}
func (h *StaffHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	staff, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get staff")
		return
	}

	utils.ResponseSuccess(w, "success", staff)
}

// Create handles POST /api/staff
func (h *StaffHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.StaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	staff, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create staff")
		return
	}

	utils.ResponseCreated(w, "Staff member added", staff)
}

// Update handles PUT /api/staff/{id}
func (h *StaffHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req request.StaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	staff, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update staff")
		return
	}

	utils.ResponseSuccess(w, "Staff member updated", staff)
}

// Delete handles DELETE /api/staff/{id}
func (h *StaffHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete staff")
		return
	}

	utils.ResponseSuccess(w, "Staff member deleted", nil)
}
