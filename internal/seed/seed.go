// Package seed provisions a demo workspace for local development. It is used
// by cmd/seed and by the dev-only seed endpoint.
package seed

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"huddle/internal/model"
	"huddle/internal/repository"
)

// Repos bundles the repositories the seeder writes through.
type Repos struct {
	Users         repository.UserRepository
	Teams         repository.TeamRepository
	Channels      repository.ChannelRepository
	Projects      repository.ProjectRepository
	Tasks         repository.TaskRepository
	Messages      repository.MessageRepository
	Subscriptions repository.SubscriptionRepository
}

// DemoAdminEmail is the login of the seeded admin ("demo1234" password).
const DemoAdminEmail = "admin@demo.huddle"

// Demo creates a demo team with an admin, two employees, channels, a project
// with tasks, and a few messages. Idempotent: a second run is a no-op.
func Demo(ctx context.Context, r Repos) error {
	if existing, err := r.Users.FindByEmail(ctx, DemoAdminEmail); err == nil && existing != nil {
		return nil
	} else if err != nil && err != gorm.ErrRecordNotFound {
		return fmt.Errorf("check demo admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	admin := &model.User{
		Name:         "Demo Admin",
		Email:        DemoAdminEmail,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
	}
	if err := r.Users.Create(ctx, admin); err != nil {
		return fmt.Errorf("create demo admin: %w", err)
	}

	team := &model.Team{
		ID:         uuid.New(),
		Name:       "Demo Workspace",
		OwnerID:    admin.ID,
		ThemeColor: model.DefaultThemeColor,
	}
	if err := r.Teams.Create(ctx, team); err != nil {
		return fmt.Errorf("create demo team: %w", err)
	}
	if err := r.Users.SetTeam(ctx, admin.ID, &team.ID); err != nil {
		return fmt.Errorf("attach demo admin: %w", err)
	}

	employees := make([]*model.User, 0, 2)
	for i, name := range []string{"Avery Fields", "Jordan Reyes"} {
		emp := &model.User{
			Name:         name,
			Email:        fmt.Sprintf("employee%d@demo.huddle", i+1),
			PasswordHash: string(hash),
			Role:         model.RoleEmployee,
			TeamID:       &team.ID,
		}
		if err := r.Users.Create(ctx, emp); err != nil {
			return fmt.Errorf("create demo employee: %w", err)
		}
		employees = append(employees, emp)
	}

	general := &model.Channel{
		TeamID:      team.ID,
		Name:        "general",
		Description: "Team-wide announcements",
		CreatedBy:   admin.ID,
	}
	if err := r.Channels.Create(ctx, general); err != nil {
		return fmt.Errorf("create demo channel: %w", err)
	}

	project := &model.Project{
		TeamID:    team.ID,
		Name:      "Launch Plan",
		CreatedBy: admin.ID,
	}
	if err := r.Projects.Create(ctx, project); err != nil {
		return fmt.Errorf("create demo project: %w", err)
	}

	tasks := []model.Task{
		{TeamID: team.ID, ProjectID: &project.ID, Title: "Draft pricing page", Status: model.TaskStatusInProgress, AssigneeID: &employees[0].ID, CreatedBy: admin.ID},
		{TeamID: team.ID, ProjectID: &project.ID, Title: "Set up onboarding flow", Status: model.TaskStatusTodo, AssigneeID: &employees[1].ID, CreatedBy: admin.ID},
		{TeamID: team.ID, Title: "Review support backlog", Status: model.TaskStatusTodo, CreatedBy: admin.ID},
	}
	for i := range tasks {
		if err := r.Tasks.Create(ctx, &tasks[i]); err != nil {
			return fmt.Errorf("create demo task: %w", err)
		}
	}

	messages := []model.Message{
		{TeamID: team.ID, SenderID: admin.ID, Content: "Welcome to the demo workspace!"},
		{TeamID: team.ID, ChannelID: &general.ID, SenderID: employees[0].ID, Content: "Pricing page draft is up."},
		{TeamID: team.ID, SenderID: admin.ID, ReceiverID: &employees[1].ID, Content: "Can you pick up onboarding this week?"},
	}
	for i := range messages {
		if err := r.Messages.Create(ctx, &messages[i]); err != nil {
			return fmt.Errorf("create demo message: %w", err)
		}
	}

	sub := &model.Subscription{
		TeamID:    team.ID,
		Plan:      model.PlanStandard,
		Status:    model.SubscriptionActive,
		SeatPrice: model.SeatPriceFor(model.PlanStandard),
	}
	if err := r.Subscriptions.Create(ctx, sub); err != nil {
		return fmt.Errorf("create demo subscription: %w", err)
	}

	return nil
}
