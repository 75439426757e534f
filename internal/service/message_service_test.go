package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"huddle/internal/errors"
	"huddle/internal/model"
)

func TestMessageService_Post(t *testing.T) {
	teamID := uuid.New()
	otherTeamID := uuid.New()
	channelID := uuid.New()

	member := &model.User{ID: 1, Role: model.RoleEmployee, TeamID: &teamID}

	t.Run("global message has no channel and no receiver", func(t *testing.T) {
		mockMsgRepo := new(MockMessageRepository)
		mockChanRepo := new(MockChannelRepository)
		mockUserRepo := new(MockUserRepository)

		mockUserRepo.On("FindByID", mock.Anything, uint(1)).Return(member, nil)
		mockMsgRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Message")).Return(nil)

		service := NewMessageService(mockMsgRepo, mockChanRepo, mockUserRepo)
		msg, err := service.PostGlobal(context.Background(), 1, teamID, "hello team")

		assert.NoError(t, err)
		assert.Equal(t, model.ScopeGlobal, msg.Scope())
		assert.Nil(t, msg.ChannelID)
		assert.Nil(t, msg.ReceiverID)
		assert.Equal(t, teamID, msg.TeamID)
	})

	t.Run("channel message requires the channel to exist in the team", func(t *testing.T) {
		mockMsgRepo := new(MockMessageRepository)
		mockChanRepo := new(MockChannelRepository)
		mockUserRepo := new(MockUserRepository)

		mockUserRepo.On("FindByID", mock.Anything, uint(1)).Return(member, nil)
		mockChanRepo.On("FindByID", mock.Anything, teamID, channelID).Return(nil, gorm.ErrRecordNotFound)

		service := NewMessageService(mockMsgRepo, mockChanRepo, mockUserRepo)
		msg, err := service.PostToChannel(context.Background(), 1, teamID, channelID, "hi")

		assert.ErrorIs(t, err, errors.ErrChannelNotFound)
		assert.Nil(t, msg)
		mockMsgRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("channel message is channel scoped", func(t *testing.T) {
		mockMsgRepo := new(MockMessageRepository)
		mockChanRepo := new(MockChannelRepository)
		mockUserRepo := new(MockUserRepository)

		mockUserRepo.On("FindByID", mock.Anything, uint(1)).Return(member, nil)
		mockChanRepo.On("FindByID", mock.Anything, teamID, channelID).Return(&model.Channel{ID: channelID, TeamID: teamID}, nil)
		mockMsgRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Message")).Return(nil)

		service := NewMessageService(mockMsgRepo, mockChanRepo, mockUserRepo)
		msg, err := service.PostToChannel(context.Background(), 1, teamID, channelID, "hi")

		assert.NoError(t, err)
		assert.Equal(t, model.ScopeChannel, msg.Scope())
		assert.Equal(t, channelID, *msg.ChannelID)
		assert.Nil(t, msg.ReceiverID)
	})

	t.Run("direct message to a member of another team is rejected", func(t *testing.T) {
		mockMsgRepo := new(MockMessageRepository)
		mockChanRepo := new(MockChannelRepository)
		mockUserRepo := new(MockUserRepository)

		mockUserRepo.On("FindByID", mock.Anything, uint(1)).Return(member, nil)
		mockUserRepo.On("FindByID", mock.Anything, uint(8)).Return(&model.User{ID: 8, Role: model.RoleEmployee, TeamID: &otherTeamID}, nil)

		service := NewMessageService(mockMsgRepo, mockChanRepo, mockUserRepo)
		msg, err := service.PostDirect(context.Background(), 1, teamID, 8, "psst")

		assert.ErrorIs(t, err, errors.ErrNotTeamMember)
		assert.Nil(t, msg)
		mockMsgRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("direct message carries sender and receiver", func(t *testing.T) {
		mockMsgRepo := new(MockMessageRepository)
		mockChanRepo := new(MockChannelRepository)
		mockUserRepo := new(MockUserRepository)

		mockUserRepo.On("FindByID", mock.Anything, uint(1)).Return(member, nil)
		mockUserRepo.On("FindByID", mock.Anything, uint(2)).Return(&model.User{ID: 2, Role: model.RoleEmployee, TeamID: &teamID}, nil)
		mockMsgRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Message")).Return(nil)

		service := NewMessageService(mockMsgRepo, mockChanRepo, mockUserRepo)
		msg, err := service.PostDirect(context.Background(), 1, teamID, 2, "psst")

		assert.NoError(t, err)
		assert.Equal(t, model.ScopeDirect, msg.Scope())
		assert.Equal(t, uint(1), msg.SenderID)
		assert.Equal(t, uint(2), *msg.ReceiverID)
		assert.Nil(t, msg.ChannelID)
	})

	t.Run("non-member cannot post", func(t *testing.T) {
		mockMsgRepo := new(MockMessageRepository)
		mockChanRepo := new(MockChannelRepository)
		mockUserRepo := new(MockUserRepository)

		outsider := &model.User{ID: 3, Role: model.RoleEmployee, TeamID: &otherTeamID}
		mockUserRepo.On("FindByID", mock.Anything, uint(3)).Return(outsider, nil)

		service := NewMessageService(mockMsgRepo, mockChanRepo, mockUserRepo)
		msg, err := service.PostGlobal(context.Background(), 3, teamID, "hello")

		assert.ErrorIs(t, err, errors.ErrUnauthorized)
		assert.Nil(t, msg)
		mockMsgRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestMessageService_ListDirect_CallerIsAlwaysOneEndpoint(t *testing.T) {
	teamID := uuid.New()
	after := time.Unix(1700000000, 0)
	member := &model.User{ID: 1, Role: model.RoleEmployee, TeamID: &teamID}

	mockMsgRepo := new(MockMessageRepository)
	mockChanRepo := new(MockChannelRepository)
	mockUserRepo := new(MockUserRepository)

	mockUserRepo.On("FindByID", mock.Anything, uint(1)).Return(member, nil)
	// The repository is asked for the caller's own pair; a third party's
	// conversation can never be requested through this path.
	mockMsgRepo.On("ListDirect", mock.Anything, teamID, uint(1), uint(2), after).Return([]model.Message{}, nil)

	service := NewMessageService(mockMsgRepo, mockChanRepo, mockUserRepo)
	_, err := service.ListDirect(context.Background(), 1, teamID, 2, after)

	assert.NoError(t, err)
	mockMsgRepo.AssertExpectations(t)
}

func TestMessageService_List_NonMemberRejected(t *testing.T) {
	teamID := uuid.New()
	otherTeamID := uuid.New()
	after := time.Time{}

	mockMsgRepo := new(MockMessageRepository)
	mockChanRepo := new(MockChannelRepository)
	mockUserRepo := new(MockUserRepository)

	mockUserRepo.On("FindByID", mock.Anything, uint(3)).Return(&model.User{ID: 3, TeamID: &otherTeamID}, nil)

	service := NewMessageService(mockMsgRepo, mockChanRepo, mockUserRepo)
	msgs, err := service.ListGlobal(context.Background(), 3, teamID, after)

	assert.ErrorIs(t, err, errors.ErrUnauthorized)
	assert.Nil(t, msgs)
	mockMsgRepo.AssertNotCalled(t, "ListGlobal", mock.Anything, mock.Anything, mock.Anything)
}
