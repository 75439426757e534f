package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"huddle/internal/errors"
	"huddle/internal/model"
)

func TestTeamService_KickMember(t *testing.T) {
	teamID := uuid.New()
	otherTeamID := uuid.New()

	tests := []struct {
		name          string
		callerID      uint
		targetID      uint
		setupMock     func(*MockTeamRepository, *MockUserRepository)
		expectedError error
	}{
		{
			name:     "admin kicks a member",
			callerID: 1,
			targetID: 2,
			setupMock: func(mTeam *MockTeamRepository, mUser *MockUserRepository) {
				mUser.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1, Role: model.RoleAdmin, TeamID: &teamID}, nil)
				mTeam.On("FindByID", mock.Anything, teamID).Return(&model.Team{ID: teamID, OwnerID: 1}, nil)
				mUser.On("FindByID", mock.Anything, uint(2)).Return(&model.User{ID: 2, Role: model.RoleEmployee, TeamID: &teamID}, nil)
				mUser.On("SetTeam", mock.Anything, uint(2), (*uuid.UUID)(nil)).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "owner can never be kicked",
			callerID: 3,
			targetID: 1,
			setupMock: func(mTeam *MockTeamRepository, mUser *MockUserRepository) {
				mUser.On("FindByID", mock.Anything, uint(3)).Return(&model.User{ID: 3, Role: model.RoleAdmin, TeamID: &teamID}, nil)
				mTeam.On("FindByID", mock.Anything, teamID).Return(&model.Team{ID: teamID, OwnerID: 1}, nil)
			},
			expectedError: errors.ErrOwnerImmune,
		},
		{
			name:     "employee caller is rejected",
			callerID: 2,
			targetID: 4,
			setupMock: func(mTeam *MockTeamRepository, mUser *MockUserRepository) {
				mUser.On("FindByID", mock.Anything, uint(2)).Return(&model.User{ID: 2, Role: model.RoleEmployee, TeamID: &teamID}, nil)
			},
			expectedError: errors.ErrUnauthorized,
		},
		{
			name:     "admin of another team is rejected",
			callerID: 5,
			targetID: 2,
			setupMock: func(mTeam *MockTeamRepository, mUser *MockUserRepository) {
				mUser.On("FindByID", mock.Anything, uint(5)).Return(&model.User{ID: 5, Role: model.RoleAdmin, TeamID: &otherTeamID}, nil)
			},
			expectedError: errors.ErrUnauthorized,
		},
		{
			name:     "target is not a member",
			callerID: 1,
			targetID: 6,
			setupMock: func(mTeam *MockTeamRepository, mUser *MockUserRepository) {
				mUser.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1, Role: model.RoleAdmin, TeamID: &teamID}, nil)
				mTeam.On("FindByID", mock.Anything, teamID).Return(&model.Team{ID: teamID, OwnerID: 1}, nil)
				mUser.On("FindByID", mock.Anything, uint(6)).Return(&model.User{ID: 6, Role: model.RoleEmployee, TeamID: &otherTeamID}, nil)
			},
			expectedError: errors.ErrNotTeamMember,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTeamRepo := new(MockTeamRepository)
			mockUserRepo := new(MockUserRepository)
			tt.setupMock(mockTeamRepo, mockUserRepo)

			service := NewTeamService(mockTeamRepo, mockUserRepo, nil)
			err := service.KickMember(context.Background(), tt.callerID, tt.targetID, teamID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				// A rejected kick must never touch membership.
				mockUserRepo.AssertNotCalled(t, "SetTeam", mock.Anything, mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
			}

			mockTeamRepo.AssertExpectations(t)
			mockUserRepo.AssertExpectations(t)
		})
	}
}

func TestTeamService_GenerateInvite(t *testing.T) {
	teamID := uuid.New()

	t.Run("admin regenerates the code", func(t *testing.T) {
		mockTeamRepo := new(MockTeamRepository)
		mockUserRepo := new(MockUserRepository)

		mockUserRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1, Role: model.RoleAdmin, TeamID: &teamID}, nil)
		mockTeamRepo.On("FindByID", mock.Anything, teamID).Return(&model.Team{ID: teamID, OwnerID: 1}, nil)

		var stored string
		mockTeamRepo.On("SetInviteCode", mock.Anything, teamID, mock.AnythingOfType("string")).
			Run(func(args mock.Arguments) { stored = args.String(2) }).
			Return(nil)

		service := NewTeamService(mockTeamRepo, mockUserRepo, nil)
		code, err := service.GenerateInvite(context.Background(), 1, teamID)

		assert.NoError(t, err)
		assert.Len(t, code, 8)
		assert.Equal(t, stored, code)
		for _, ch := range code {
			assert.True(t, strings.ContainsRune(inviteAlphabet, ch))
		}

		mockTeamRepo.AssertExpectations(t)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("employee cannot regenerate", func(t *testing.T) {
		mockTeamRepo := new(MockTeamRepository)
		mockUserRepo := new(MockUserRepository)

		mockUserRepo.On("FindByID", mock.Anything, uint(2)).Return(&model.User{ID: 2, Role: model.RoleEmployee, TeamID: &teamID}, nil)

		service := NewTeamService(mockTeamRepo, mockUserRepo, nil)
		code, err := service.GenerateInvite(context.Background(), 2, teamID)

		assert.ErrorIs(t, err, errors.ErrUnauthorized)
		assert.Empty(t, code)
		mockTeamRepo.AssertNotCalled(t, "SetInviteCode", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestTeamService_JoinByCode(t *testing.T) {
	teamID := uuid.New()

	t.Run("current code joins the team", func(t *testing.T) {
		mockTeamRepo := new(MockTeamRepository)
		mockUserRepo := new(MockUserRepository)

		mockUserRepo.On("FindByID", mock.Anything, uint(9)).Return(&model.User{ID: 9, Role: model.RoleEmployee}, nil)
		mockTeamRepo.On("FindByInviteCode", mock.Anything, "AB12CD34").Return(&model.Team{ID: teamID, OwnerID: 1}, nil)
		mockUserRepo.On("SetTeam", mock.Anything, uint(9), &teamID).Return(nil)

		service := NewTeamService(mockTeamRepo, mockUserRepo, nil)
		team, err := service.JoinByCode(context.Background(), 9, "AB12CD34")

		assert.NoError(t, err)
		assert.Equal(t, teamID, team.ID)
		mockTeamRepo.AssertExpectations(t)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("stale code is a structured not-found", func(t *testing.T) {
		mockTeamRepo := new(MockTeamRepository)
		mockUserRepo := new(MockUserRepository)

		mockUserRepo.On("FindByID", mock.Anything, uint(9)).Return(&model.User{ID: 9, Role: model.RoleEmployee}, nil)
		mockTeamRepo.On("FindByInviteCode", mock.Anything, "STALE123").Return(nil, gorm.ErrRecordNotFound)

		service := NewTeamService(mockTeamRepo, mockUserRepo, nil)
		team, err := service.JoinByCode(context.Background(), 9, "STALE123")

		assert.ErrorIs(t, err, errors.ErrInviteNotFound)
		assert.Nil(t, team)
		mockUserRepo.AssertNotCalled(t, "SetTeam", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestTeamService_SwitchTeam(t *testing.T) {
	teamID := uuid.New()

	tests := []struct {
		name          string
		callerID      uint
		owner         uint
		expectedError error
	}{
		{name: "owner switches in", callerID: 1, owner: 1, expectedError: nil},
		{name: "non-owner is rejected", callerID: 2, owner: 1, expectedError: errors.ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTeamRepo := new(MockTeamRepository)
			mockUserRepo := new(MockUserRepository)

			mockUserRepo.On("FindByID", mock.Anything, tt.callerID).Return(&model.User{ID: tt.callerID, Role: model.RoleAdmin}, nil)
			mockTeamRepo.On("FindByID", mock.Anything, teamID).Return(&model.Team{ID: teamID, OwnerID: tt.owner}, nil)
			if tt.expectedError == nil {
				mockUserRepo.On("SetTeam", mock.Anything, tt.callerID, &teamID).Return(nil)
			}

			service := NewTeamService(mockTeamRepo, mockUserRepo, nil)
			team, err := service.SwitchTeam(context.Background(), tt.callerID, teamID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, team)
				mockUserRepo.AssertNotCalled(t, "SetTeam", mock.Anything, mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, teamID, team.ID)
			}

			mockTeamRepo.AssertExpectations(t)
			mockUserRepo.AssertExpectations(t)
		})
	}
}

func TestTeamService_CreateTeam(t *testing.T) {
	t.Run("admin becomes owner and member", func(t *testing.T) {
		mockTeamRepo := new(MockTeamRepository)
		mockUserRepo := new(MockUserRepository)

		mockUserRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1, Role: model.RoleAdmin}, nil)
		mockTeamRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Team")).Return(nil)
		mockUserRepo.On("SetTeam", mock.Anything, uint(1), mock.AnythingOfType("*uuid.UUID")).Return(nil)

		service := NewTeamService(mockTeamRepo, mockUserRepo, nil)
		team, err := service.CreateTeam(context.Background(), 1, "Design")

		assert.NoError(t, err)
		assert.Equal(t, "Design", team.Name)
		assert.Equal(t, uint(1), team.OwnerID)
		assert.Equal(t, model.DefaultThemeColor, team.ThemeColor)

		mockTeamRepo.AssertExpectations(t)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("employee cannot create a team", func(t *testing.T) {
		mockTeamRepo := new(MockTeamRepository)
		mockUserRepo := new(MockUserRepository)

		mockUserRepo.On("FindByID", mock.Anything, uint(2)).Return(&model.User{ID: 2, Role: model.RoleEmployee}, nil)

		service := NewTeamService(mockTeamRepo, mockUserRepo, nil)
		team, err := service.CreateTeam(context.Background(), 2, "Rogue")

		assert.ErrorIs(t, err, errors.ErrUnauthorized)
		assert.Nil(t, team)
		mockTeamRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
