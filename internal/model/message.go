package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message scopes. A message belongs to exactly one scope: global has neither
// channel nor receiver, channel-scoped has a channel, direct has a receiver.
const (
	ScopeGlobal  = "global"
	ScopeChannel = "channel"
	ScopeDirect  = "direct"
)

// Message is a chat message within a team.
type Message struct {
	ID         uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	TeamID     uuid.UUID  `json:"team_id" gorm:"type:char(36);not null;index"`
	ChannelID  *uuid.UUID `json:"channel_id,omitempty" gorm:"type:char(36);index"`
	SenderID   uint       `json:"sender_id" gorm:"not null;index"`
	ReceiverID *uint      `json:"receiver_id,omitempty" gorm:"index"`
	Content    string     `json:"content" gorm:"size:4000;not null"`
	CreatedAt  time.Time  `json:"created_at" gorm:"index"`
}

// Scope derives the visibility partition from the nullable columns.
func (m *Message) Scope() string {
	switch {
	case m.ChannelID != nil:
		return ScopeChannel
	case m.ReceiverID != nil:
		return ScopeDirect
	default:
		return ScopeGlobal
	}
}

// BeforeCreate sets UUID before creating the record.
func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
