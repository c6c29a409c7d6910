package models

import (
	"time"

	"github.com/google/uuid"
)

// Badge is an achievement a user unlocked.
type Badge struct {
	DefaultModel
	UserID     uuid.UUID `json:"-" gorm:"uniqueIndex:badge_user_key"`
	User       User      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Key        string    `json:"key" gorm:"uniqueIndex:badge_user_key" example:"first-expense"`
	UnlockedAt time.Time `json:"unlockedAt" example:"2024-03-12T08:30:00Z"`
}
