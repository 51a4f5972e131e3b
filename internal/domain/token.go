package domain

import "time"

// AuthToken is an opaque bearer credential. One live token per user: login
// reuses the stored token until it expires.
type AuthToken struct {
	Token     string    `json:"token"`
	UserID    int32     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (t *AuthToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
