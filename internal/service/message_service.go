package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"huddle/internal/errors"
	"huddle/internal/model"
	"huddle/internal/repository"
)

// MessageService owns posting and scope-partitioned fetching of messages.
// Clients keep views fresh by polling with an `after` cursor; the staleness
// window is the poll interval.
type MessageService interface {
	PostGlobal(ctx context.Context, callerID uint, teamID uuid.UUID, content string) (*model.Message, error)
	PostToChannel(ctx context.Context, callerID uint, teamID, channelID uuid.UUID, content string) (*model.Message, error)
	PostDirect(ctx context.Context, callerID uint, teamID uuid.UUID, receiverID uint, content string) (*model.Message, error)
	ListGlobal(ctx context.Context, callerID uint, teamID uuid.UUID, after time.Time) ([]model.Message, error)
	ListChannel(ctx context.Context, callerID uint, teamID, channelID uuid.UUID, after time.Time) ([]model.Message, error)
	ListDirect(ctx context.Context, callerID uint, teamID uuid.UUID, otherID uint, after time.Time) ([]model.Message, error)
}

type messageService struct {
	messageRepo repository.MessageRepository
	channelRepo repository.ChannelRepository
	userRepo    repository.UserRepository
}

// NewMessageService creates a new message service.
func NewMessageService(messageRepo repository.MessageRepository, channelRepo repository.ChannelRepository, userRepo repository.UserRepository) MessageService {
	return &messageService{
		messageRepo: messageRepo,
		channelRepo: channelRepo,
		userRepo:    userRepo,
	}
}

func (s *messageService) requireMember(ctx context.Context, callerID uint, teamID uuid.UUID) (*model.User, error) {
	caller, err := s.userRepo.FindByID(ctx, callerID)
	if err != nil {
		return nil, errors.ErrUnauthenticated
	}
	if caller.TeamID == nil || *caller.TeamID != teamID {
		return nil, errors.ErrUnauthorized
	}
	return caller, nil
}

// requireChannel asserts the channel exists within the team.
func (s *messageService) requireChannel(ctx context.Context, teamID, channelID uuid.UUID) error {
	if _, err := s.channelRepo.FindByID(ctx, teamID, channelID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrChannelNotFound
		}
		return err
	}
	return nil
}

// PostGlobal posts a team-wide message: no channel, no receiver.
func (s *messageService) PostGlobal(ctx context.Context, callerID uint, teamID uuid.UUID, content string) (*model.Message, error) {
	caller, err := s.requireMember(ctx, callerID, teamID)
	if err != nil {
		return nil, err
	}

	message := &model.Message{
		TeamID:   teamID,
		SenderID: caller.ID,
		Content:  content,
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("post message: %w", err)
	}
	return message, nil
}

// PostToChannel posts a channel-scoped message.
func (s *messageService) PostToChannel(ctx context.Context, callerID uint, teamID, channelID uuid.UUID, content string) (*model.Message, error) {
	caller, err := s.requireMember(ctx, callerID, teamID)
	if err != nil {
		return nil, err
	}
	if err := s.requireChannel(ctx, teamID, channelID); err != nil {
		return nil, err
	}

	message := &model.Message{
		TeamID:    teamID,
		ChannelID: &channelID,
		SenderID:  caller.ID,
		Content:   content,
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("post message: %w", err)
	}
	return message, nil
}

// PostDirect posts a direct message to another member of the same team.
func (s *messageService) PostDirect(ctx context.Context, callerID uint, teamID uuid.UUID, receiverID uint, content string) (*model.Message, error) {
	caller, err := s.requireMember(ctx, callerID, teamID)
	if err != nil {
		return nil, err
	}

	receiver, err := s.userRepo.FindByID(ctx, receiverID)
	if err != nil {
		return nil, errors.ErrUserNotFound
	}
	if receiver.TeamID == nil || *receiver.TeamID != teamID {
		return nil, errors.ErrNotTeamMember
	}

	message := &model.Message{
		TeamID:     teamID,
		SenderID:   caller.ID,
		ReceiverID: &receiverID,
		Content:    content,
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("post message: %w", err)
	}
	return message, nil
}

func (s *messageService) ListGlobal(ctx context.Context, callerID uint, teamID uuid.UUID, after time.Time) ([]model.Message, error) {
	if _, err := s.requireMember(ctx, callerID, teamID); err != nil {
		return nil, err
	}
	return s.messageRepo.ListGlobal(ctx, teamID, after)
}

func (s *messageService) ListChannel(ctx context.Context, callerID uint, teamID, channelID uuid.UUID, after time.Time) ([]model.Message, error) {
	if _, err := s.requireMember(ctx, callerID, teamID); err != nil {
		return nil, err
	}
	if err := s.requireChannel(ctx, teamID, channelID); err != nil {
		return nil, err
	}
	return s.messageRepo.ListChannel(ctx, teamID, channelID, after)
}

// ListDirect returns the caller's conversation with one other member. The
// caller is always one endpoint of the pair; nobody can read third-party
// conversations.
func (s *messageService) ListDirect(ctx context.Context, callerID uint, teamID uuid.UUID, otherID uint, after time.Time) ([]model.Message, error) {
	caller, err := s.requireMember(ctx, callerID, teamID)
	if err != nil {
		return nil, err
	}
	return s.messageRepo.ListDirect(ctx, teamID, caller.ID, otherID, after)
}
