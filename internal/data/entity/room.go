package entity

type RoomStatus string

const (
	RoomStatusAvailable RoomStatus = "Available"
	RoomStatusBooked    RoomStatus = "Booked"
)

// Room.Status is owned by the booking engine: it is Booked exactly while an
// Active reservation references the room.
type Room struct {
	ID       int64      `db:"room_id"`
	RoomNo   string     `db:"room_no"`
	RoomType string     `db:"room_type"`
	Bed      string     `db:"bed"`
	Price    int64      `db:"price"`
	Status   RoomStatus `db:"status"`
}

// RoomFilter narrows room listings. Zero value lists every room.
type RoomFilter struct {
	RoomType      string
	OnlyAvailable bool
	Search        string
}
