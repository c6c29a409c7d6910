package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultModel is embedded by every resource that users own.
type DefaultModel struct {
	ID uuid.UUID `json:"id" gorm:"type:uuid;primaryKey" example:"65392deb-5e92-4268-b114-297faad6cdce"` // UUID for the resource
	Timestamps
}

// Timestamps are maintained by gorm.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt" example:"2024-03-01T09:12:44.491514Z"` // Time the resource was created
	UpdatedAt time.Time `json:"updatedAt" example:"2024-03-17T20:14:01.048145Z"` // Last time the resource was updated
}

// AfterFind normalizes the timestamps to time.UTC.
//
// The driver returns them with a zero-offset FixedZone, which compares
// unequal to time.UTC with reflect.DeepEqual and renders differently.
func (m *DefaultModel) AfterFind(_ *gorm.DB) error {
	m.Timestamps = m.Timestamps.utc()
	return nil
}

// BeforeCreate assigns a random ID unless one was set explicitly.
func (m *DefaultModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func (t Timestamps) utc() Timestamps {
	return Timestamps{
		CreatedAt: t.CreatedAt.In(time.UTC),
		UpdatedAt: t.UpdatedAt.In(time.UTC),
	}
}
