package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Channel is a named message stream within a single team.
type Channel struct {
	ID          uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	TeamID      uuid.UUID      `json:"team_id" gorm:"type:char(36);not null;index"`
	Name        string         `json:"name" gorm:"size:255;not null"`
	Description string         `json:"description" gorm:"size:500"`
	CreatedBy   uint           `json:"created_by" gorm:"not null"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Channel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
