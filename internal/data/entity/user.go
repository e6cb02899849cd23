package entity

import "time"

type User struct {
	ID           int64     `db:"user_id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password"`
	CreatedAt    time.Time `db:"created_at"`
}
