package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Subscription plans and statuses.
const (
	PlanFree     = "FREE"
	PlanStandard = "STANDARD"
	PlanPremium  = "PREMIUM"

	SubscriptionActive   = "ACTIVE"
	SubscriptionPastDue  = "PAST_DUE"
	SubscriptionCanceled = "CANCELED"
)

// Subscription is the per-team billing record. One row per team.
type Subscription struct {
	ID           uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	TeamID       uuid.UUID       `json:"team_id" gorm:"type:char(36);uniqueIndex;not null"`
	Plan         string          `json:"plan" gorm:"size:50;not null;default:'FREE'"`
	Status       string          `json:"status" gorm:"size:50;not null;default:'ACTIVE'"`
	SeatPrice    decimal.Decimal `json:"seat_price" gorm:"type:decimal(10,2);not null;default:0"`
	PeriodEndsAt time.Time       `json:"period_ends_at"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// SeatPriceFor returns the per-seat monthly price for a plan.
func SeatPriceFor(plan string) decimal.Decimal {
	switch plan {
	case PlanStandard:
		return decimal.NewFromFloat(6.50)
	case PlanPremium:
		return decimal.NewFromFloat(12.00)
	default:
		return decimal.Zero
	}
}

// BeforeCreate sets UUID before creating the record.
func (s *Subscription) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
