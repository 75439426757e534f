package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project groups tasks within a team.
type Project struct {
	ID        uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	TeamID    uuid.UUID      `json:"team_id" gorm:"type:char(36);not null;index"`
	Name      string         `json:"name" gorm:"size:255;not null"`
	CreatedBy uint           `json:"created_by" gorm:"not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
