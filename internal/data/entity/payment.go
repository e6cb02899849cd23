package entity

import "time"

type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "Cash"
	PaymentMethodCard   PaymentMethod = "Card"
	PaymentMethodOnline PaymentMethod = "Online"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodOnline:
		return true
	}
	return false
}

// Payment.ReservationID is nil once the reservation has been deleted
type Payment struct {
	ID            int64         `db:"payment_id"`
	ReservationID *int64        `db:"res_id"`
	Amount        float64       `db:"amount"`
	PaymentDate   time.Time     `db:"payment_date"`
	Method        PaymentMethod `db:"method"`
}

// PaymentDetail is a payment joined with the paying customer
type PaymentDetail struct {
	Payment
	CustomerName string `db:"name"`
}
