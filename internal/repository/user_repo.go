// internal/repository/user_repo.go
package repository

import (
	"context"

	"userbase/internal/domain"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// Create generates a fresh identifier, inserts the record and returns it.
	// Returns util.ErrDuplicateEntry when username or email collides.
	Create(ctx context.Context, q DBExecutor, params domain.CreateUserParams) (*domain.User, error)
	// FindAll returns all records matching the filter, most recent first.
	// An empty match set is an empty slice, never an error.
	FindAll(ctx context.Context, q DBExecutor, filter domain.UserFilter) ([]domain.User, error)
	// FindByID returns the record or util.ErrNotFound when no row matches.
	FindByID(ctx context.Context, q DBExecutor, id string) (*domain.User, error)
	// Update overwrites only the supplied fields and refreshes updated_at.
	// An empty field set skips the write and returns the current record.
	Update(ctx context.Context, q DBExecutor, id string, params domain.UpdateUserParams) (*domain.User, error)
	// Delete removes the record, reporting whether a row was actually removed.
	Delete(ctx context.Context, q DBExecutor, id string) (bool, error)
}
