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

// ProjectService owns project lifecycle within a team.
type ProjectService interface {
	CreateProject(ctx context.Context, callerID uint, teamID uuid.UUID, name string) (*model.Project, error)
	ListProjects(ctx context.Context, callerID uint, teamID uuid.UUID) ([]model.Project, error)
	DeleteProject(ctx context.Context, callerID uint, teamID, projectID uuid.UUID) error
}

type projectService struct {
	projectRepo repository.ProjectRepository
	taskRepo    repository.TaskRepository
	userRepo    repository.UserRepository
}

// NewProjectService creates a new project service.
func NewProjectService(projectRepo repository.ProjectRepository, taskRepo repository.TaskRepository, userRepo repository.UserRepository) ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
		userRepo:    userRepo,
	}
}

func (s *projectService) requireMember(ctx context.Context, callerID uint, teamID uuid.UUID) (*model.User, error) {
	caller, err := s.userRepo.FindByID(ctx, callerID)
	if err != nil {
		return nil, errors.ErrUnauthenticated
	}
	if caller.TeamID == nil || *caller.TeamID != teamID {
		return nil, errors.ErrUnauthorized
	}
	return caller, nil
}

// CreateProject creates a project. Admin only.
func (s *projectService) CreateProject(ctx context.Context, callerID uint, teamID uuid.UUID, name string) (*model.Project, error) {
	caller, err := s.requireMember(ctx, callerID, teamID)
	if err != nil {
		return nil, err
	}
	if !caller.IsAdmin() {
		return nil, errors.ErrUnauthorized
	}

	project := &model.Project{
		TeamID:    teamID,
		Name:      name,
		CreatedBy: caller.ID,
	}
	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return project, nil
}

// ListProjects lists the team's projects for any member.
func (s *projectService) ListProjects(ctx context.Context, callerID uint, teamID uuid.UUID) ([]model.Project, error) {
	if _, err := s.requireMember(ctx, callerID, teamID); err != nil {
		return nil, err
	}
	return s.projectRepo.ListByTeam(ctx, teamID)
}

// DeleteProject removes a project and its tasks. Admin only; the caller's
// role is read fresh from the store.
func (s *projectService) DeleteProject(ctx context.Context, callerID uint, teamID, projectID uuid.UUID) error {
	caller, err := s.requireMember(ctx, callerID, teamID)
	if err != nil {
		return err
	}
	if !caller.IsAdmin() {
		return errors.ErrUnauthorized
	}

	if _, err := s.projectRepo.FindByID(ctx, teamID, projectID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrProjectNotFound
		}
		return err
	}

	if err := s.taskRepo.DeleteByProject(ctx, teamID, projectID); err != nil {
		return fmt.Errorf("delete project tasks: %w", err)
	}
	return s.projectRepo.Delete(ctx, teamID, projectID)
}
