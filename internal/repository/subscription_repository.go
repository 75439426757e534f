package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"huddle/internal/model"
)

// SubscriptionRepository defines billing persistence operations.
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *model.Subscription) error
	Update(ctx context.Context, sub *model.Subscription) error
	FindByTeam(ctx context.Context, teamID uuid.UUID) (*model.Subscription, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new subscription repository.
func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Create(ctx context.Context, sub *model.Subscription) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *subscriptionRepository) Update(ctx context.Context, sub *model.Subscription) error {
	return r.db.WithContext(ctx).Save(sub).Error
}

func (r *subscriptionRepository) FindByTeam(ctx context.Context, teamID uuid.UUID) (*model.Subscription, error) {
	var sub model.Subscription
	if err := r.db.WithContext(ctx).Where("team_id = ?", teamID).First(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}
