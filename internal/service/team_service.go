package service

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"huddle/internal/cache"
	"huddle/internal/errors"
	"huddle/internal/model"
	"huddle/internal/repository"
)

const (
	teamCacheTTL     = 5 * time.Minute
	inviteCodeLength = 8
)

// TeamService owns team lifecycle, membership, invites, and theming.
// Security-sensitive mutations re-derive the caller's role and team from the
// user store instead of trusting the token claim, so a demoted admin loses
// privileges immediately rather than at token expiry.
type TeamService interface {
	CreateTeam(ctx context.Context, callerID uint, name string) (*model.Team, error)
	GetTeam(ctx context.Context, id uuid.UUID) (*model.Team, error)
	GenerateInvite(ctx context.Context, callerID uint, teamID uuid.UUID) (string, error)
	JoinByCode(ctx context.Context, callerID uint, code string) (*model.Team, error)
	SwitchTeam(ctx context.Context, callerID uint, teamID uuid.UUID) (*model.Team, error)
	KickMember(ctx context.Context, callerID, targetID uint, teamID uuid.UUID) error
	UpdateTheme(ctx context.Context, callerID uint, teamID uuid.UUID, color string) (*model.Team, error)
	ListMembers(ctx context.Context, callerID uint, teamID uuid.UUID) ([]model.User, error)
}

type teamService struct {
	teamRepo repository.TeamRepository
	userRepo repository.UserRepository
	cache    *cache.Client
}

// NewTeamService creates a new team service.
func NewTeamService(teamRepo repository.TeamRepository, userRepo repository.UserRepository, cache *cache.Client) TeamService {
	return &teamService{
		teamRepo: teamRepo,
		userRepo: userRepo,
		cache:    cache,
	}
}

func teamCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("team:%s", id.String())
}

// requireFreshAdmin loads the caller's current row and asserts an admin role
// plus membership of the target team.
func (s *teamService) requireFreshAdmin(ctx context.Context, callerID uint, teamID uuid.UUID) (*model.User, error) {
	caller, err := s.userRepo.FindByID(ctx, callerID)
	if err != nil {
		return nil, errors.ErrUnauthenticated
	}
	if !caller.IsAdmin() || caller.TeamID == nil || *caller.TeamID != teamID {
		return nil, errors.ErrUnauthorized
	}
	return caller, nil
}

// CreateTeam creates a team owned by the caller and makes the caller its
// first member. Owner membership is only ever established here.
func (s *teamService) CreateTeam(ctx context.Context, callerID uint, name string) (*model.Team, error) {
	caller, err := s.userRepo.FindByID(ctx, callerID)
	if err != nil {
		return nil, errors.ErrUnauthenticated
	}
	if !caller.IsAdmin() {
		return nil, errors.ErrUnauthorized
	}

	team := &model.Team{
		ID:         uuid.New(),
		Name:       name,
		OwnerID:    caller.ID,
		ThemeColor: model.DefaultThemeColor,
	}
	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, fmt.Errorf("create team: %w", err)
	}

	if err := s.userRepo.SetTeam(ctx, caller.ID, &team.ID); err != nil {
		return nil, fmt.Errorf("set owner membership: %w", err)
	}
	_ = s.cache.Delete(ctx, userCacheKey(caller.ID))

	return team, nil
}

// GetTeam retrieves a team by ID with caching.
func (s *teamService) GetTeam(ctx context.Context, id uuid.UUID) (*model.Team, error) {
	if data, _ := s.cache.Get(ctx, teamCacheKey(id)); data != nil {
		var cached model.Team
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	team, err := s.teamRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrTeamNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(team); err == nil {
		_ = s.cache.Set(ctx, teamCacheKey(id), payload, teamCacheTTL)
	}

	return team, nil
}

// GenerateInvite replaces the team's invite code. There is one active code
// per team; the previous code stops granting access the moment the new one
// is written.
func (s *teamService) GenerateInvite(ctx context.Context, callerID uint, teamID uuid.UUID) (string, error) {
	if _, err := s.requireFreshAdmin(ctx, callerID, teamID); err != nil {
		return "", err
	}
	if _, err := s.teamRepo.FindByID(ctx, teamID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", errors.ErrTeamNotFound
		}
		return "", err
	}

	code, err := newInviteCode()
	if err != nil {
		return "", fmt.Errorf("generate invite code: %w", err)
	}
	if err := s.teamRepo.SetInviteCode(ctx, teamID, code); err != nil {
		return "", fmt.Errorf("store invite code: %w", err)
	}
	_ = s.cache.Delete(ctx, teamCacheKey(teamID))

	return code, nil
}

// JoinByCode moves the caller into the team holding the given invite code.
// The lookup always hits the store: a cached team row must never let a
// regenerated code keep working.
func (s *teamService) JoinByCode(ctx context.Context, callerID uint, code string) (*model.Team, error) {
	caller, err := s.userRepo.FindByID(ctx, callerID)
	if err != nil {
		return nil, errors.ErrUnauthenticated
	}

	team, err := s.teamRepo.FindByInviteCode(ctx, code)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrInviteNotFound
		}
		return nil, err
	}

	if err := s.userRepo.SetTeam(ctx, caller.ID, &team.ID); err != nil {
		return nil, fmt.Errorf("join team: %w", err)
	}
	_ = s.cache.Delete(ctx, userCacheKey(caller.ID))

	return team, nil
}

// SwitchTeam makes the given team the caller's active team. Only the team's
// owner may switch into it.
func (s *teamService) SwitchTeam(ctx context.Context, callerID uint, teamID uuid.UUID) (*model.Team, error) {
	caller, err := s.userRepo.FindByID(ctx, callerID)
	if err != nil {
		return nil, errors.ErrUnauthenticated
	}

	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrTeamNotFound
		}
		return nil, err
	}
	if team.OwnerID != caller.ID {
		return nil, errors.ErrUnauthorized
	}

	if err := s.userRepo.SetTeam(ctx, caller.ID, &team.ID); err != nil {
		return nil, fmt.Errorf("switch team: %w", err)
	}
	_ = s.cache.Delete(ctx, userCacheKey(caller.ID))

	return team, nil
}

// KickMember removes a user from the team by clearing their active team.
// The team owner can never be kicked, regardless of who asks.
func (s *teamService) KickMember(ctx context.Context, callerID, targetID uint, teamID uuid.UUID) error {
	if _, err := s.requireFreshAdmin(ctx, callerID, teamID); err != nil {
		return err
	}

	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrTeamNotFound
		}
		return err
	}
	if team.OwnerID == targetID {
		return errors.ErrOwnerImmune
	}

	target, err := s.userRepo.FindByID(ctx, targetID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrUserNotFound
		}
		return err
	}
	if target.TeamID == nil || *target.TeamID != teamID {
		return errors.ErrNotTeamMember
	}

	if err := s.userRepo.SetTeam(ctx, target.ID, nil); err != nil {
		return fmt.Errorf("remove member: %w", err)
	}
	_ = s.cache.Delete(ctx, userCacheKey(target.ID))

	return nil
}

// UpdateTheme changes the team's theme color.
func (s *teamService) UpdateTheme(ctx context.Context, callerID uint, teamID uuid.UUID, color string) (*model.Team, error) {
	if _, err := s.requireFreshAdmin(ctx, callerID, teamID); err != nil {
		return nil, err
	}

	if err := s.teamRepo.SetThemeColor(ctx, teamID, color); err != nil {
		return nil, fmt.Errorf("update theme: %w", err)
	}
	_ = s.cache.Delete(ctx, teamCacheKey(teamID))

	return s.GetTeam(ctx, teamID)
}

// ListMembers lists the team's current members. The caller must belong to
// the team; membership is enough, admin is not required for reads.
func (s *teamService) ListMembers(ctx context.Context, callerID uint, teamID uuid.UUID) ([]model.User, error) {
	caller, err := s.userRepo.FindByID(ctx, callerID)
	if err != nil {
		return nil, errors.ErrUnauthenticated
	}
	if caller.TeamID == nil || *caller.TeamID != teamID {
		return nil, errors.ErrUnauthorized
	}
	return s.userRepo.ListByTeam(ctx, teamID)
}

const inviteAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// newInviteCode returns a short random join code, e.g. "AB12CD34".
func newInviteCode() (string, error) {
	raw := make([]byte, inviteCodeLength)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	code := make([]byte, inviteCodeLength)
	for i, b := range raw {
		code[i] = inviteAlphabet[int(b)%len(inviteAlphabet)]
	}
	return string(code), nil
}
