package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"huddle/internal/errors"
	"huddle/internal/model"
	"huddle/internal/repository"
)

// ChannelService owns channel lifecycle within a team.
type ChannelService interface {
	CreateChannel(ctx context.Context, callerID uint, teamID uuid.UUID, name, description string) (*model.Channel, error)
	ListChannels(ctx context.Context, callerID uint, teamID uuid.UUID) ([]model.Channel, error)
	DeleteChannel(ctx context.Context, callerID uint, teamID, channelID uuid.UUID) error
}

type channelService struct {
	channelRepo repository.ChannelRepository
	userRepo    repository.UserRepository
}

// NewChannelService creates a new channel service.
func NewChannelService(channelRepo repository.ChannelRepository, userRepo repository.UserRepository) ChannelService {
	return &channelService{
		channelRepo: channelRepo,
		userRepo:    userRepo,
	}
}

// requireMember asserts the caller currently belongs to the team.
func (s *channelService) requireMember(ctx context.Context, callerID uint, teamID uuid.UUID) (*model.User, error) {
	caller, err := s.userRepo.FindByID(ctx, callerID)
	if err != nil {
		return nil, errors.ErrUnauthenticated
	}
	if caller.TeamID == nil || *caller.TeamID != teamID {
		return nil, errors.ErrUnauthorized
	}
	return caller, nil
}

// CreateChannel creates a channel. Admin only.
func (s *channelService) CreateChannel(ctx context.Context, callerID uint, teamID uuid.UUID, name, description string) (*model.Channel, error) {
	caller, err := s.requireMember(ctx, callerID, teamID)
	if err != nil {
		return nil, err
	}
	if !caller.IsAdmin() {
		return nil, errors.ErrUnauthorized
	}

	channel := &model.Channel{
		TeamID:      teamID,
		Name:        name,
		Description: description,
		CreatedBy:   caller.ID,
	}
	if err := s.channelRepo.Create(ctx, channel); err != nil {
		return nil, fmt.Errorf("create channel: %w", err)
	}
	return channel, nil
}

// ListChannels lists the team's channels for any member.
func (s *channelService) ListChannels(ctx context.Context, callerID uint, teamID uuid.UUID) ([]model.Channel, error) {
	if _, err := s.requireMember(ctx, callerID, teamID); err != nil {
		return nil, err
	}
	return s.channelRepo.ListByTeam(ctx, teamID)
}

// DeleteChannel removes a channel. Admin only.
func (s *channelService) DeleteChannel(ctx context.Context, callerID uint, teamID, channelID uuid.UUID) error {
	caller, err := s.requireMember(ctx, callerID, teamID)
	if err != nil {
		return err
	}
	if !caller.IsAdmin() {
		return errors.ErrUnauthorized
	}

	if _, err := s.channelRepo.FindByID(ctx, teamID, channelID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrChannelNotFound
		}
		return err
	}
	return s.channelRepo.Delete(ctx, teamID, channelID)
}
