package entity

import (
	"time"

	"github.com/google/uuid"
)

type Session struct {
	ID        int64      `db:"session_id"`
	UserID    int64      `db:"user_id"`
	Token     uuid.UUID  `db:"token"`
	ExpiresAt time.Time  `db:"expires_at"`
	RevokedAt *time.Time `db:"revoked_at"`
	CreatedAt time.Time  `db:"created_at"`
}
