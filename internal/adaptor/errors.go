package adaptor

import (
	"errors"
	"net/http"

	"hotel-management/internal/data/entity"
	"hotel-management/internal/dto/request"
	"hotel-management/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// handleServiceError maps service errors to HTTP responses. Unknown errors are
// logged and hidden behind a generic 500.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, entity.ErrValidation),
		errors.Is(err, entity.ErrMissingSelection),
		errors.Is(err, entity.ErrInvalidDateFormat),
		errors.Is(err, entity.ErrInvalidDateRange),
		errors.Is(err, entity.ErrInvalidAmount):
		log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, entity.ErrNotFound),
		errors.Is(err, entity.ErrCustomerNotFound),
		errors.Is(err, entity.ErrReservationNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, entity.ErrRoomUnavailable),
		errors.Is(err, entity.ErrDuplicateRoomNumber),
		errors.Is(err, entity.ErrUsernameTaken),
		errors.Is(err, entity.ErrIntegrityViolation):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, entity.ErrInvalidCredentials):
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// pathID reads the {id} URL parameter, answering 400 when it is not a positive integer
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid ID", nil)
	}
	return id, ok
}

func paginationFromQuery(r *http.Request) request.PaginatedRequest {
	query := r.URL.Query()
	return request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}
}
