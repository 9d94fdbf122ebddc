// internal/util/errors.go
package util

import "errors"

// Common application-specific errors.
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input provided")
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEntry = errors.New("duplicate entry") // unique constraint on username or email violated
)

// IsError reports whether any error in err's chain matches target.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
