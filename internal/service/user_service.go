package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"huddle/internal/cache"
	"huddle/internal/errors"
	"huddle/internal/model"
	"huddle/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UserService handles user lookups and admin-side employee provisioning.
type UserService interface {
	GetUser(ctx context.Context, id uint) (*model.User, error)
	CreateEmployee(ctx context.Context, callerID uint, email, password, name string) (*model.User, error)
}

type userService struct {
	userRepo repository.UserRepository
	cache    *cache.Client
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{
		userRepo: userRepo,
		cache:    cache,
	}
}

func userCacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

// GetUser retrieves a user by ID with caching.
func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, userCacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, userCacheKey(id), payload, userCacheTTL)
	}

	return user, nil
}

// CreateEmployee provisions an employee account bound to the caller's team.
// The caller's admin role and team come from the store, not the token.
func (s *userService) CreateEmployee(ctx context.Context, callerID uint, email, password, name string) (*model.User, error) {
	caller, err := s.userRepo.FindByID(ctx, callerID)
	if err != nil {
		return nil, errors.ErrUnauthenticated
	}
	if !caller.IsAdmin() || caller.TeamID == nil {
		return nil, errors.ErrUnauthorized
	}

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, ErrUserAlreadyExists
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	employee := &model.User{
		Email:        email,
		PasswordHash: string(hashedPassword),
		Name:         name,
		Role:         model.RoleEmployee,
		TeamID:       caller.TeamID,
	}
	if err := s.userRepo.Create(ctx, employee); err != nil {
		return nil, fmt.Errorf("create employee: %w", err)
	}

	return employee, nil
}
