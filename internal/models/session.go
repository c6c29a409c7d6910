package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is a login of a user. Only the sha256 of the bearer token is stored.
type Session struct {
	DefaultModel
	UserID    uuid.UUID `gorm:"index"`
	User      User      `gorm:"constraint:OnDelete:CASCADE"`
	TokenHash string    `gorm:"uniqueIndex"`
	ExpiresAt time.Time
}

// Expired reports if the session is no longer valid at the given time.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
