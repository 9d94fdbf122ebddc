// internal/repository/postgres/user_pg.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"userbase/internal/domain"
	"userbase/internal/repository"
	"userbase/internal/util"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const userColumns = "id, username, email, name, gender, bio, created_at, updated_at"

// UserRepository implements repository.UserRepository for PostgreSQL.
type UserRepository struct {
	// Methods receive a DBExecutor directly, so no connection is held here.
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &UserRepository{}
}

// uniqueViolation is the PostgreSQL error code for a violated unique
// constraint. Inspecting the code keeps detection structural; the error
// message text is never examined.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// Create inserts a new user with a freshly generated UUID. Both timestamps
// are set to the same instant so createdAt == updatedAt at creation.
func (r *UserRepository) Create(ctx context.Context, q repository.DBExecutor, params domain.CreateUserParams) (*domain.User, error) {
	// Truncated to microseconds so the returned record matches what the
	// engine stores (timestamptz has microsecond precision).
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := &domain.User{
		ID:        uuid.NewString(),
		Username:  params.Username,
		Email:     params.Email,
		Name:      params.Name,
		Gender:    params.Gender,
		Bio:       params.Bio,
		CreatedAt: now,
		UpdatedAt: now,
	}

	query := `INSERT INTO users (id, username, email, name, gender, bio, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := q.ExecContext(ctx, query,
		user.ID, user.Username, user.Email, user.Name, user.Gender, user.Bio, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, util.ErrDuplicateEntry
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// FindAll retrieves users matching the filter, most recently created first.
// Text filters are containment checks via LIKE, which is case-sensitive in
// PostgreSQL; gender is an exact match.
func (r *UserRepository) FindAll(ctx context.Context, q repository.DBExecutor, filter domain.UserFilter) ([]domain.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE 1=1"
	args := []interface{}{}

	if filter.Username != "" {
		args = append(args, "%"+filter.Username+"%")
		query += fmt.Sprintf(" AND username LIKE $%d", len(args))
	}
	if filter.Email != "" {
		args = append(args, "%"+filter.Email+"%")
		query += fmt.Sprintf(" AND email LIKE $%d", len(args))
	}
	if filter.Name != "" {
		args = append(args, "%"+filter.Name+"%")
		query += fmt.Sprintf(" AND name LIKE $%d", len(args))
	}
	if filter.Gender != "" {
		args = append(args, filter.Gender)
		query += fmt.Sprintf(" AND gender = $%d", len(args))
	}

	query += " ORDER BY created_at DESC"

	users := []domain.User{}
	if err := q.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	return users, nil
}

// FindByID retrieves a user by primary key.
func (r *UserRepository) FindByID(ctx context.Context, q repository.DBExecutor, id string) (*domain.User, error) {
	var user domain.User
	query := "SELECT " + userColumns + " FROM users WHERE id = $1"
	if err := q.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID %s: %w", id, err)
	}
	return &user, nil
}

// Update overwrites only the fields present in params and refreshes
// updated_at. An empty field set skips the write entirely and returns the
// current record, leaving updated_at untouched.
func (r *UserRepository) Update(ctx context.Context, q repository.DBExecutor, id string, params domain.UpdateUserParams) (*domain.User, error) {
	if params.IsEmpty() {
		return r.FindByID(ctx, q, id)
	}

	sets := []string{}
	args := []interface{}{}

	appendSet := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if params.Username != nil {
		appendSet("username", *params.Username)
	}
	if params.Email != nil {
		appendSet("email", *params.Email)
	}
	if params.Name != nil {
		appendSet("name", *params.Name)
	}
	if params.Gender != nil {
		appendSet("gender", *params.Gender)
	}
	if params.Bio != nil {
		appendSet("bio", *params.Bio)
	}
	appendSet("updated_at", time.Now().UTC().Truncate(time.Microsecond))

	args = append(args, id)
	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, util.ErrDuplicateEntry
		}
		return nil, fmt.Errorf("failed to update user %s: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected updating user %s: %w", id, err)
	}
	if rowsAffected == 0 {
		return nil, util.ErrNotFound
	}

	return r.FindByID(ctx, q, id)
}

// Delete removes a user by id. Returns true when a row was removed, false
// when no record matched.
func (r *UserRepository) Delete(ctx context.Context, q repository.DBExecutor, id string) (bool, error) {
	result, err := q.ExecContext(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete user %s: %w", id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected deleting user %s: %w", id, err)
	}
	return rowsAffected > 0, nil
}
