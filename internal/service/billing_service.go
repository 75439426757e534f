package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"huddle/internal/cache"
	"huddle/internal/errors"
	"huddle/internal/model"
	"huddle/internal/repository"
)

const subscriptionCacheTTL = 5 * time.Minute

// BillingService owns per-team subscriptions.
type BillingService interface {
	GetSubscription(ctx context.Context, callerID uint, teamID uuid.UUID) (*model.Subscription, error)
	ChangePlan(ctx context.Context, callerID uint, teamID uuid.UUID, plan string) (*model.Subscription, error)
	EnsureSubscription(ctx context.Context, teamID uuid.UUID) (*model.Subscription, error)
}

type billingService struct {
	subRepo  repository.SubscriptionRepository
	userRepo repository.UserRepository
	cache    *cache.Client
}

// NewBillingService creates a new billing service.
func NewBillingService(subRepo repository.SubscriptionRepository, userRepo repository.UserRepository, cache *cache.Client) BillingService {
	return &billingService{
		subRepo:  subRepo,
		userRepo: userRepo,
		cache:    cache,
	}
}

func subscriptionCacheKey(teamID uuid.UUID) string {
	return fmt.Sprintf("subscription:%s", teamID.String())
}

// GetSubscription retrieves the team's subscription with caching. Any member
// of the team may read it.
func (s *billingService) GetSubscription(ctx context.Context, callerID uint, teamID uuid.UUID) (*model.Subscription, error) {
	caller, err := s.userRepo.FindByID(ctx, callerID)
	if err != nil {
		return nil, errors.ErrUnauthenticated
	}
	if caller.TeamID == nil || *caller.TeamID != teamID {
		return nil, errors.ErrUnauthorized
	}

	if data, _ := s.cache.Get(ctx, subscriptionCacheKey(teamID)); data != nil {
		var cached model.Subscription
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	sub, err := s.subRepo.FindByTeam(ctx, teamID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrSubscriptionNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(sub); err == nil {
		_ = s.cache.Set(ctx, subscriptionCacheKey(teamID), payload, subscriptionCacheTTL)
	}

	return sub, nil
}

// ChangePlan switches the team's plan. Admin only, fresh role check.
func (s *billingService) ChangePlan(ctx context.Context, callerID uint, teamID uuid.UUID, plan string) (*model.Subscription, error) {
	caller, err := s.userRepo.FindByID(ctx, callerID)
	if err != nil {
		return nil, errors.ErrUnauthenticated
	}
	if !caller.IsAdmin() || caller.TeamID == nil || *caller.TeamID != teamID {
		return nil, errors.ErrUnauthorized
	}

	sub, err := s.subRepo.FindByTeam(ctx, teamID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrSubscriptionNotFound
		}
		return nil, err
	}

	sub.Plan = plan
	sub.SeatPrice = model.SeatPriceFor(plan)
	sub.Status = model.SubscriptionActive
	sub.PeriodEndsAt = time.Now().AddDate(0, 1, 0)
	if err := s.subRepo.Update(ctx, sub); err != nil {
		return nil, fmt.Errorf("change plan: %w", err)
	}
	_ = s.cache.Delete(ctx, subscriptionCacheKey(teamID))

	return sub, nil
}

// EnsureSubscription creates the default free subscription for a new team if
// none exists yet.
func (s *billingService) EnsureSubscription(ctx context.Context, teamID uuid.UUID) (*model.Subscription, error) {
	existing, err := s.subRepo.FindByTeam(ctx, teamID)
	if err == nil {
		return existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	sub := &model.Subscription{
		TeamID:       teamID,
		Plan:         model.PlanFree,
		Status:       model.SubscriptionActive,
		SeatPrice:    model.SeatPriceFor(model.PlanFree),
		PeriodEndsAt: time.Now().AddDate(0, 1, 0),
	}
	if err := s.subRepo.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("create subscription: %w", err)
	}
	return sub, nil
}
