package request

type CustomerRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Phone       string `json:"phone" validate:"max=20"`
	Nationality string `json:"nationality" validate:"max=50"`
	Gender      string `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	DOB         string `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	Address     string `json:"address" validate:"max=255"`
}

type CustomerListRequest struct {
	PaginatedRequest
	Search string `json:"search"`
}
