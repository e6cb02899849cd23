package entity

import "errors"

// Booking engine failures
var (
	ErrMissingSelection    = errors.New("customer and room must be selected")
	ErrInvalidDateFormat   = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrInvalidDateRange    = errors.New("check-out must be after check-in")
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrRoomUnavailable     = errors.New("room not available")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrInvalidAmount       = errors.New("amount must be a non-negative number")
)

// Storage constraint failures, translated at the repository boundary
var (
	ErrDuplicateRoomNumber = errors.New("room number already exists")
	ErrIntegrityViolation  = errors.New("integrity constraint violated")
)

var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
