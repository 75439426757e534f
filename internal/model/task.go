package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Task statuses follow the board columns.
const (
	TaskStatusTodo       = "TODO"
	TaskStatusInProgress = "IN_PROGRESS"
	TaskStatusDone       = "DONE"
)

// Task is a unit of work scoped to a team, optionally grouped in a project
// and assigned to a member.
type Task struct {
	ID         uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	TeamID     uuid.UUID      `json:"team_id" gorm:"type:char(36);not null;index"`
	ProjectID  *uuid.UUID     `json:"project_id,omitempty" gorm:"type:char(36);index"`
	Title      string         `json:"title" gorm:"size:255;not null"`
	Details    string         `json:"details" gorm:"size:2000"`
	Status     string         `json:"status" gorm:"size:50;not null;default:'TODO';index"`
	AssigneeID *uint          `json:"assignee_id,omitempty" gorm:"index"`
	CreatedBy  uint           `json:"created_by" gorm:"not null"`
	DueAt      *time.Time     `json:"due_at,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
