package domain

import (
	"time"

	"github.com/google/uuid"
)

type PasswordReset struct {
	ID        int64     `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	TokenID   uuid.UUID `db:"token_id" json:"token_id"`
	ExpiresAt time.Time `db:"expires_at" json:"expires_at"`
	Consumed  bool      `db:"consumed" json:"consumed"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

func (p *PasswordReset) Usable(now time.Time) bool {
	return p != nil && !p.Consumed && now.Before(p.ExpiresAt)
}
