package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"huddle/internal/model"
)

// ChannelRepository defines channel persistence operations. Every query is
// constrained to a team.
type ChannelRepository interface {
	Create(ctx context.Context, channel *model.Channel) error
	FindByID(ctx context.Context, teamID, id uuid.UUID) (*model.Channel, error)
	ListByTeam(ctx context.Context, teamID uuid.UUID) ([]model.Channel, error)
	Delete(ctx context.Context, teamID, id uuid.UUID) error
}

type channelRepository struct {
	db *gorm.DB
}

// NewChannelRepository creates a new channel repository.
func NewChannelRepository(db *gorm.DB) ChannelRepository {
	return &channelRepository{db: db}
}

func (r *channelRepository) Create(ctx context.Context, channel *model.Channel) error {
	return r.db.WithContext(ctx).Create(channel).Error
}

func (r *channelRepository) FindByID(ctx context.Context, teamID, id uuid.UUID) (*model.Channel, error) {
	var channel model.Channel
	if err := r.db.WithContext(ctx).
		Where("team_id = ? AND id = ?", teamID, id).
		First(&channel).Error; err != nil {
		return nil, err
	}
	return &channel, nil
}

func (r *channelRepository) ListByTeam(ctx context.Context, teamID uuid.UUID) ([]model.Channel, error) {
	var channels []model.Channel
	if err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("created_at ASC").
		Find(&channels).Error; err != nil {
		return nil, err
	}
	return channels, nil
}

func (r *channelRepository) Delete(ctx context.Context, teamID, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("team_id = ? AND id = ?", teamID, id).
		Delete(&model.Channel{}).Error
}
