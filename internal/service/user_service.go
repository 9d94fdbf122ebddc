// internal/service/user_service.go
package service

import (
	"context"
	"fmt"

	"userbase/internal/domain"
	"userbase/internal/repository"
	"userbase/internal/util"
)

// UserService defines the interface for user-related business logic.
type UserService interface {
	CreateUser(ctx context.Context, params domain.CreateUserParams) (*domain.User, error)
	ListUsers(ctx context.Context, filter domain.UserFilter) ([]domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	UpdateUser(ctx context.Context, id string, params domain.UpdateUserParams) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// userService implements the UserService interface. It bridges validated
// input to the repository and normalizes persistence failures into typed
// domain errors; status-code mapping lives in the handler.
type userService struct {
	dbExecutor repository.DBExecutor
	userRepo   repository.UserRepository
}

// NewUserService creates a new instance of UserService.
func NewUserService(dbExecutor repository.DBExecutor, userRepo repository.UserRepository) UserService {
	return &userService{
		dbExecutor: dbExecutor,
		userRepo:   userRepo,
	}
}

// CreateUser inserts a new user. A username or email collision surfaces as
// util.ErrDuplicateEntry; everything else is an internal failure.
func (s *userService) CreateUser(ctx context.Context, params domain.CreateUserParams) (*domain.User, error) {
	user, err := s.userRepo.Create(ctx, s.dbExecutor, params)
	if err != nil {
		if util.IsError(err, util.ErrDuplicateEntry) {
			return nil, util.ErrDuplicateEntry
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// ListUsers returns all users matching the filter, most recent first. An
// empty match set is a success with an empty slice.
func (s *userService) ListUsers(ctx context.Context, filter domain.UserFilter) ([]domain.User, error) {
	users, err := s.userRepo.FindAll(ctx, s.dbExecutor, filter)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// GetUser retrieves a single user by id.
func (s *userService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, s.dbExecutor, id)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	return user, nil
}

// UpdateUser applies a partial update and returns the stored record.
func (s *userService) UpdateUser(ctx context.Context, id string, params domain.UpdateUserParams) (*domain.User, error) {
	user, err := s.userRepo.Update(ctx, s.dbExecutor, id, params)
	if err != nil {
		switch {
		case util.IsError(err, util.ErrNotFound):
			return nil, util.ErrUserNotFound
		case util.IsError(err, util.ErrDuplicateEntry):
			return nil, util.ErrDuplicateEntry
		}
		return nil, fmt.Errorf("update user %s: %w", id, err)
	}
	return user, nil
}

// DeleteUser removes a user by id, reporting absence as ErrUserNotFound.
func (s *userService) DeleteUser(ctx context.Context, id string) error {
	deleted, err := s.userRepo.Delete(ctx, s.dbExecutor, id)
	if err != nil {
		return fmt.Errorf("delete user %s: %w", id, err)
	}
	if !deleted {
		return util.ErrUserNotFound
	}
	return nil
}
