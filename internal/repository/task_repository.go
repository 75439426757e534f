package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"huddle/internal/model"
)

// TaskFilter narrows team-scoped task listings.
type TaskFilter struct {
	ProjectID  *uuid.UUID
	Status     string
	AssigneeID *uint
}

// TaskRepository defines task persistence operations, team-scoped.
type TaskRepository interface {
	Create(ctx context.Context, task *model.Task) error
	Update(ctx context.Context, task *model.Task) error
	FindByID(ctx context.Context, teamID, id uuid.UUID) (*model.Task, error)
	ListByTeam(ctx context.Context, teamID uuid.UUID, filter TaskFilter) ([]model.Task, error)
	Delete(ctx context.Context, teamID, id uuid.UUID) error
	DeleteByProject(ctx context.Context, teamID, projectID uuid.UUID) error
}

type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository.
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *taskRepository) Update(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Save(task).Error
}

func (r *taskRepository) FindByID(ctx context.Context, teamID, id uuid.UUID) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).
		Where("team_id = ? AND id = ?", teamID, id).
		First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) ListByTeam(ctx context.Context, teamID uuid.UUID, filter TaskFilter) ([]model.Task, error) {
	q := r.db.WithContext(ctx).Where("team_id = ?", teamID)
	if filter.ProjectID != nil {
		q = q.Where("project_id = ?", *filter.ProjectID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.AssigneeID != nil {
		q = q.Where("assignee_id = ?", *filter.AssigneeID)
	}

	var tasks []model.Task
	if err := q.Order("created_at ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) Delete(ctx context.Context, teamID, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("team_id = ? AND id = ?", teamID, id).
		Delete(&model.Task{}).Error
}

func (r *taskRepository) DeleteByProject(ctx context.Context, teamID, projectID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("team_id = ? AND project_id = ?", teamID, projectID).
		Delete(&model.Task{}).Error
}
