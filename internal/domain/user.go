// internal/domain/user.go
package domain

import "time"

// User represents a single user record as stored and returned by the API.
// Gender and Bio are nullable columns, hence pointers.
type User struct {
	ID        string    `db:"id" json:"id"`             // UUID v4, generated at insert time, immutable
	Username  string    `db:"username" json:"username"` // Unique username
	Email     string    `db:"email" json:"email"`       // Unique email
	Name      string    `db:"name" json:"name"`         // Display name, not unique
	Gender    *string   `db:"gender" json:"gender,omitempty"`
	Bio       *string   `db:"bio" json:"bio,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"` // Set once at creation
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"` // Refreshed on every successful mutation
}

// CreateUserParams holds the fields accepted when creating a user. Keeping
// input types separate from the User model keeps the contract explicit: id
// and timestamps are never caller-supplied.
type CreateUserParams struct {
	Username string  `json:"username" validate:"required"`
	Email    string  `json:"email" validate:"required,email"`
	Name     string  `json:"name" validate:"required"`
	Gender   *string `json:"gender"`
	Bio      *string `json:"bio"`
}

// UpdateUserParams holds the fields accepted by a partial update. All fields
// are pointers so callers set only what needs changing; the repository builds
// the SET list from the non-nil fields.
type UpdateUserParams struct {
	// min=1 rather than required: a present-but-empty value must be
	// rejected, and required treats any non-nil pointer as satisfied.
	Username *string `json:"username" validate:"omitnil,min=1"`
	Email    *string `json:"email" validate:"omitnil,min=1,email"`
	Name     *string `json:"name" validate:"omitnil,min=1"`
	Gender   *string `json:"gender"`
	Bio      *string `json:"bio"`
}

// IsEmpty reports whether no field was supplied at all. An empty update is a
// no-op: nothing is written and updated_at is left untouched.
func (p UpdateUserParams) IsEmpty() bool {
	return p.Username == nil && p.Email == nil && p.Name == nil && p.Gender == nil && p.Bio == nil
}

// UserFilter narrows a listing. Username, Email and Name match by
// case-sensitive containment; Gender matches exactly. Empty fields impose no
// constraint.
type UserFilter struct {
	Username string
	Email    string
	Name     string
	Gender   string
}
