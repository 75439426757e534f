package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"huddle/internal/model"
)

// MessageRepository defines message persistence operations. Each listing
// targets exactly one visibility scope for one team; scopes never mix.
type MessageRepository interface {
	Create(ctx context.Context, message *model.Message) error
	ListGlobal(ctx context.Context, teamID uuid.UUID, after time.Time) ([]model.Message, error)
	ListChannel(ctx context.Context, teamID, channelID uuid.UUID, after time.Time) ([]model.Message, error)
	ListDirect(ctx context.Context, teamID uuid.UUID, userA, userB uint, after time.Time) ([]model.Message, error)
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new message repository.
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *model.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

// ListGlobal returns team-wide messages: no channel, no receiver.
func (r *messageRepository) ListGlobal(ctx context.Context, teamID uuid.UUID, after time.Time) ([]model.Message, error) {
	var messages []model.Message
	if err := r.db.WithContext(ctx).
		Where("team_id = ? AND channel_id IS NULL AND receiver_id IS NULL AND created_at > ?", teamID, after).
		Order("created_at ASC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// ListChannel returns messages for one channel of one team.
func (r *messageRepository) ListChannel(ctx context.Context, teamID, channelID uuid.UUID, after time.Time) ([]model.Message, error) {
	var messages []model.Message
	if err := r.db.WithContext(ctx).
		Where("team_id = ? AND channel_id = ? AND created_at > ?", teamID, channelID, after).
		Order("created_at ASC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// ListDirect returns the pairwise conversation between two users, both
// directions, excluding channel rows.
func (r *messageRepository) ListDirect(ctx context.Context, teamID uuid.UUID, userA, userB uint, after time.Time) ([]model.Message, error) {
	var messages []model.Message
	if err := r.db.WithContext(ctx).
		Where("team_id = ? AND channel_id IS NULL AND created_at > ?", teamID, after).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA).
		Order("created_at ASC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}
