package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"huddle/internal/errors"
	"huddle/internal/model"
)

// MockSubscriptionRepository is a mock implementation of SubscriptionRepository.
type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) Create(ctx context.Context, sub *model.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) Update(ctx context.Context, sub *model.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) FindByTeam(ctx context.Context, teamID uuid.UUID) (*model.Subscription, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Subscription), args.Error(1)
}

func TestBillingService_ChangePlan(t *testing.T) {
	teamID := uuid.New()

	t.Run("admin upgrades to standard", func(t *testing.T) {
		mockSubRepo := new(MockSubscriptionRepository)
		mockUserRepo := new(MockUserRepository)

		mockUserRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1, Role: model.RoleAdmin, TeamID: &teamID}, nil)
		mockSubRepo.On("FindByTeam", mock.Anything, teamID).Return(&model.Subscription{
			TeamID: teamID,
			Plan:   model.PlanFree,
			Status: model.SubscriptionActive,
		}, nil)
		mockSubRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Subscription")).Return(nil)

		service := NewBillingService(mockSubRepo, mockUserRepo, nil)
		sub, err := service.ChangePlan(context.Background(), 1, teamID, model.PlanStandard)

		assert.NoError(t, err)
		assert.Equal(t, model.PlanStandard, sub.Plan)
		assert.True(t, sub.SeatPrice.Equal(decimal.NewFromFloat(6.50)))
		assert.Equal(t, model.SubscriptionActive, sub.Status)

		mockSubRepo.AssertExpectations(t)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("employee cannot change the plan", func(t *testing.T) {
		mockSubRepo := new(MockSubscriptionRepository)
		mockUserRepo := new(MockUserRepository)

		mockUserRepo.On("FindByID", mock.Anything, uint(2)).Return(&model.User{ID: 2, Role: model.RoleEmployee, TeamID: &teamID}, nil)

		service := NewBillingService(mockSubRepo, mockUserRepo, nil)
		sub, err := service.ChangePlan(context.Background(), 2, teamID, model.PlanPremium)

		assert.ErrorIs(t, err, errors.ErrUnauthorized)
		assert.Nil(t, sub)
		mockSubRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestBillingService_GetSubscription_MemberOnly(t *testing.T) {
	teamID := uuid.New()
	otherTeamID := uuid.New()

	mockSubRepo := new(MockSubscriptionRepository)
	mockUserRepo := new(MockUserRepository)

	mockUserRepo.On("FindByID", mock.Anything, uint(3)).Return(&model.User{ID: 3, TeamID: &otherTeamID}, nil)

	service := NewBillingService(mockSubRepo, mockUserRepo, nil)
	sub, err := service.GetSubscription(context.Background(), 3, teamID)

	assert.ErrorIs(t, err, errors.ErrUnauthorized)
	assert.Nil(t, sub)
	mockSubRepo.AssertNotCalled(t, "FindByTeam", mock.Anything, mock.Anything)
}

func TestBillingService_EnsureSubscription(t *testing.T) {
	teamID := uuid.New()

	t.Run("creates the default free plan", func(t *testing.T) {
		mockSubRepo := new(MockSubscriptionRepository)
		mockUserRepo := new(MockUserRepository)

		mockSubRepo.On("FindByTeam", mock.Anything, teamID).Return(nil, gorm.ErrRecordNotFound)
		mockSubRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Subscription")).Return(nil)

		service := NewBillingService(mockSubRepo, mockUserRepo, nil)
		sub, err := service.EnsureSubscription(context.Background(), teamID)

		assert.NoError(t, err)
		assert.Equal(t, model.PlanFree, sub.Plan)
		assert.True(t, sub.SeatPrice.IsZero())
		mockSubRepo.AssertExpectations(t)
	})

	t.Run("existing subscription is kept", func(t *testing.T) {
		mockSubRepo := new(MockSubscriptionRepository)
		mockUserRepo := new(MockUserRepository)

		existing := &model.Subscription{TeamID: teamID, Plan: model.PlanPremium}
		mockSubRepo.On("FindByTeam", mock.Anything, teamID).Return(existing, nil)

		service := NewBillingService(mockSubRepo, mockUserRepo, nil)
		sub, err := service.EnsureSubscription(context.Background(), teamID)

		assert.NoError(t, err)
		assert.Equal(t, existing, sub)
		mockSubRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
