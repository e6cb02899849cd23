package entity

import "time"

type ReservationStatus string

const (
	ReservationStatusActive ReservationStatus = "Active"
)

// Reservation keeps TotalDays and TotalCost as computed at booking time; a
// later change of the room price does not touch them.
type Reservation struct {
	ID         int64             `db:"res_id"`
	CustomerID int64             `db:"customer_id"`
	RoomID     int64             `db:"room_id"`
	CheckIn    time.Time         `db:"check_in"`
	CheckOut   time.Time         `db:"check_out"`
	TotalDays  int               `db:"total_days"`
	TotalCost  int64             `db:"total_cost"`
	Status     ReservationStatus `db:"status"`
}

// ReservationDetail is a reservation joined with its customer and room
type ReservationDetail struct {
	Reservation
	CustomerName string `db:"name"`
	RoomNo       string `db:"room_no"`
}
