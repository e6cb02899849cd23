package request

// RoomRequest carries no status: availability only changes through bookings
type RoomRequest struct {
	RoomNo   string `json:"room_no" validate:"required,max=20"`
	RoomType string `json:"room_type" validate:"omitempty,oneof=Single Double Deluxe"`
	Bed      string `json:"bed" validate:"omitempty,oneof=Single Double King"`
	Price    int64  `json:"price" validate:"required,gte=0"`
}

type RoomListRequest struct {
	RoomType      string `json:"room_type"`
	OnlyAvailable bool   `json:"only_available"`
	Search        string `json:"search"`
}
