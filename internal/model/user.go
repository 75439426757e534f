package model

import (
	"time"

	"github.com/google/uuid"
)

// Roles a user can hold. There are exactly two privilege levels.
const (
	RoleAdmin    = "ADMIN"
	RoleEmployee = "EMPLOYEE"
)

// User represents an authenticated user in the system. TeamID is the user's
// active team and is the only column membership changes touch.
type User struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Name         string     `json:"name" gorm:"size:255;not null"`
	Email        string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string     `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         string     `json:"role" gorm:"size:50;not null;default:'EMPLOYEE';index"`
	TeamID       *uuid.UUID `json:"team_id,omitempty" gorm:"type:char(36);index"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// IsAdmin reports whether the user currently holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
