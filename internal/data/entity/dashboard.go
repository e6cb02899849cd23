package entity

type DashboardStats struct {
	TotalCustomers     int64   `json:"total_customers"`
	AvailableRooms     int64   `json:"available_rooms"`
	ActiveReservations int64   `json:"active_reservations"`
	TotalPayments      float64 `json:"total_payments"`
}
