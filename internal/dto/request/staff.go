package request

type StaffRequest struct {
	Name   string `json:"name" validate:"required,max=100"`
	Phone  string `json:"phone" validate:"max=20"`
	Role   string `json:"role" validate:"max=50"`
	Salary int64  `json:"salary" validate:"gte=0"`
}
