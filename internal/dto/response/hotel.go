package response

import (
	"hotel-management/internal/data/entity"
	"hotel-management/pkg/utils"
)

type CustomerResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Nationality string `json:"nationality"`
	Gender      string `json:"gender"`
	DOB         string `json:"dob"`
	Address     string `json:"address"`
}

type RoomResponse struct {
	ID       int64             `json:"id"`
	RoomNo   string            `json:"room_no"`
	RoomType string            `json:"room_type"`
	Bed      string            `json:"bed"`
	Price    int64             `json:"price"`
	Status   entity.RoomStatus `json:"status"`
}

type StaffResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Role   string `json:"role"`
	Salary int64  `json:"salary"`
}

type ReservationResponse struct {
	ID           int64                    `json:"id"`
	CustomerName string                   `json:"customer_name"`
	RoomNo       string                   `json:"room_no"`
	CheckIn      string                   `json:"check_in"`
	CheckOut     string                   `json:"check_out"`
	TotalDays    int                      `json:"total_days"`
	TotalCost    int64                    `json:"total_cost"`
	Status       entity.ReservationStatus `json:"status"`
}

type PaymentResponse struct {
	ID            int64                `json:"id"`
	ReservationID *int64               `json:"reservation_id"`
	CustomerName  string               `json:"customer_name,omitempty"`
	Amount        float64              `json:"amount"`
	PaymentDate   string               `json:"payment_date"`
	Method        entity.PaymentMethod `json:"method"`
}

func CustomerToResponse(c *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          c.ID,
		Name:        c.Name,
		Phone:       c.Phone,
		Nationality: c.Nationality,
		Gender:      c.Gender,
		DOB:         c.DOB,
		Address:     c.Address,
	}
}

func RoomToResponse(r *entity.Room) RoomResponse {
	return RoomResponse{
		ID:       r.ID,
		RoomNo:   r.RoomNo,
		RoomType: r.RoomType,
		Bed:      r.Bed,
		Price:    r.Price,
		Status:   r.Status,
	}
}

func StaffToResponse(s *entity.Staff) StaffResponse {
	return StaffResponse{
		ID:     s.ID,
		Name:   s.Name,
		Phone:  s.Phone,
		Role:   s.Role,
		Salary: s.Salary,
	}
}

func ReservationToResponse(d *entity.ReservationDetail) ReservationResponse {
	return ReservationResponse{
		ID:           d.ID,
		CustomerName: d.CustomerName,
		RoomNo:       d.RoomNo,
		CheckIn:      d.CheckIn.Format(utils.DateLayout),
		CheckOut:     d.CheckOut.Format(utils.DateLayout),
		TotalDays:    d.TotalDays,
		TotalCost:    d.TotalCost,
		Status:       d.Status,
	}
}

func PaymentToResponse(p *entity.Payment, customerName string) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		ReservationID: p.ReservationID,
		CustomerName:  customerName,
		Amount:        p.Amount,
		PaymentDate:   p.PaymentDate.Format(utils.DateLayout),
		Method:        p.Method,
	}
}
