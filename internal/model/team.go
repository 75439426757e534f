package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultThemeColor is applied to newly created teams.
const DefaultThemeColor = "#6366F1"

// Team is the tenant boundary. OwnerID never changes after creation; the
// owner membership is written at creation time. InviteCode is the single
// active join secret and is regenerable.
type Team struct {
	ID         uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	Name       string         `json:"name" gorm:"size:255;not null;index"`
	OwnerID    uint           `json:"owner_id" gorm:"not null;index"`
	InviteCode *string        `json:"-" gorm:"size:16;uniqueIndex"` // join secret, never serialized
	ThemeColor string         `json:"theme_color" gorm:"size:16;not null;default:'#6366F1'"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (t *Team) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
