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

// TaskInput carries the mutable task fields.
type TaskInput struct {
	Title      string
	Details    string
	ProjectID  *uuid.UUID
	AssigneeID *uint
	DueAt      *time.Time
}

// TaskService owns task CRUD within a team. Any member may create and update
// tasks; deletion is admin only.
type TaskService interface {
	CreateTask(ctx context.Context, callerID uint, teamID uuid.UUID, input TaskInput) (*model.Task, error)
	ListTasks(ctx context.Context, callerID uint, teamID uuid.UUID, filter repository.TaskFilter) ([]model.Task, error)
	UpdateStatus(ctx context.Context, callerID uint, teamID, taskID uuid.UUID, status string) (*model.Task, error)
	AssignTask(ctx context.Context, callerID uint, teamID, taskID uuid.UUID, assigneeID *uint) (*model.Task, error)
	DeleteTask(ctx context.Context, callerID uint, teamID, taskID uuid.UUID) error
}

type taskService struct {
	taskRepo repository.TaskRepository
	userRepo repository.UserRepository
}

// NewTaskService creates a new task service.
func NewTaskService(taskRepo repository.TaskRepository, userRepo repository.UserRepository) TaskService {
	return &taskService{
		taskRepo: taskRepo,
		userRepo: userRepo,
	}
}

func (s *taskService) requireMember(ctx context.Context, callerID uint, teamID uuid.UUID) (*model.User, error) {
	caller, err := s.userRepo.FindByID(ctx, callerID)
	if err != nil {
		return nil, errors.ErrUnauthenticated
	}
	if caller.TeamID == nil || *caller.TeamID != teamID {
		return nil, errors.ErrUnauthorized
	}
	return caller, nil
}

func (s *taskService) findTask(ctx context.Context, teamID, taskID uuid.UUID) (*model.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, teamID, taskID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

func (s *taskService) CreateTask(ctx context.Context, callerID uint, teamID uuid.UUID, input TaskInput) (*model.Task, error) {
	caller, err := s.requireMember(ctx, callerID, teamID)
	if err != nil {
		return nil, err
	}

	task := &model.Task{
		TeamID:     teamID,
		ProjectID:  input.ProjectID,
		Title:      input.Title,
		Details:    input.Details,
		Status:     model.TaskStatusTodo,
		AssigneeID: input.AssigneeID,
		CreatedBy:  caller.ID,
		DueAt:      input.DueAt,
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

func (s *taskService) ListTasks(ctx context.Context, callerID uint, teamID uuid.UUID, filter repository.TaskFilter) ([]model.Task, error) {
	if _, err := s.requireMember(ctx, callerID, teamID); err != nil {
		return nil, err
	}
	return s.taskRepo.ListByTeam(ctx, teamID, filter)
}

func (s *taskService) UpdateStatus(ctx context.Context, callerID uint, teamID, taskID uuid.UUID, status string) (*model.Task, error) {
	if _, err := s.requireMember(ctx, callerID, teamID); err != nil {
		return nil, err
	}

	task, err := s.findTask(ctx, teamID, taskID)
	if err != nil {
		return nil, err
	}
	task.Status = status
	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("update task status: %w", err)
	}
	return task, nil
}

func (s *taskService) AssignTask(ctx context.Context, callerID uint, teamID, taskID uuid.UUID, assigneeID *uint) (*model.Task, error) {
	if _, err := s.requireMember(ctx, callerID, teamID); err != nil {
		return nil, err
	}

	// The assignee must be a current member of the same team.
	if assigneeID != nil {
		assignee, err := s.userRepo.FindByID(ctx, *assigneeID)
		if err != nil {
			return nil, errors.ErrUserNotFound
		}
		if assignee.TeamID == nil || *assignee.TeamID != teamID {
			return nil, errors.ErrNotTeamMember
		}
	}

	task, err := s.findTask(ctx, teamID, taskID)
	if err != nil {
		return nil, err
	}
	task.AssigneeID = assigneeID
	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("assign task: %w", err)
	}
	return task, nil
}

func (s *taskService) DeleteTask(ctx context.Context, callerID uint, teamID, taskID uuid.UUID) error {
	caller, err := s.requireMember(ctx, callerID, teamID)
	if err != nil {
		return err
	}
	if !caller.IsAdmin() {
		return errors.ErrUnauthorized
	}

	if _, err := s.findTask(ctx, teamID, taskID); err != nil {
		return err
	}
	return s.taskRepo.Delete(ctx, teamID, taskID)
}
