package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"huddle/internal/model"
)

// TeamRepository defines team persistence operations.
type TeamRepository interface {
	Create(ctx context.Context, team *model.Team) error
	Update(ctx context.Context, team *model.Team) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Team, error)
	FindByInviteCode(ctx context.Context, code string) (*model.Team, error)
	SetInviteCode(ctx context.Context, id uuid.UUID, code string) error
	SetThemeColor(ctx context.Context, id uuid.UUID, color string) error
}

type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository.
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) Create(ctx context.Context, team *model.Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

func (r *teamRepository) Update(ctx context.Context, team *model.Team) error {
	return r.db.WithContext(ctx).Save(team).Error
}

func (r *teamRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Team, error) {
	var team model.Team
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&team).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

// FindByInviteCode matches the current invite code only. Regenerated codes
// replace the column value, so stale codes stop matching immediately.
func (r *teamRepository) FindByInviteCode(ctx context.Context, code string) (*model.Team, error) {
	var team model.Team
	if err := r.db.WithContext(ctx).Where("invite_code = ?", code).First(&team).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) SetInviteCode(ctx context.Context, id uuid.UUID, code string) error {
	return r.db.WithContext(ctx).Model(&model.Team{}).
		Where("id = ?", id).
		Update("invite_code", code).Error
}

func (r *teamRepository) SetThemeColor(ctx context.Context, id uuid.UUID, color string) error {
	return r.db.WithContext(ctx).Model(&model.Team{}).
		Where("id = ?", id).
		Update("theme_color", color).Error
}
