package request

// Booking requests are checked by the booking engine itself so that every
// failure maps to its booking error.

type CreateReservationRequest struct {
	CustomerName string `json:"customer_name"`
	RoomNo       string `json:"room_no"`
	CheckIn      string `json:"check_in"`
	CheckOut     string `json:"check_out"`
}

// RecordPaymentRequest keeps Amount as text: "6000" and "6000.50" are both
// accepted, anything that is not a non-negative number is rejected.
type RecordPaymentRequest struct {
	ReservationID int64  `json:"reservation_id"`
	Amount        string `json:"amount"`
	PaymentDate   string `json:"payment_date"`
	Method        string `json:"method"`
}
