// internal/validation/user.go
package validation

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"userbase/internal/domain"
	"userbase/internal/util"
)

var validate = validator.New()

// Error carries the combined human-readable list of violated rules. It
// matches util.ErrInvalidInput so handlers can map it to a 400 without
// losing the message.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is lets errors.Is(err, util.ErrInvalidInput) succeed for validation errors.
func (e *Error) Is(target error) bool {
	return target == util.ErrInvalidInput
}

// ValidateCreate checks a create payload. Every violated rule is reported,
// joined into a single message.
func ValidateCreate(params domain.CreateUserParams) error {
	return translate(validate.Struct(params))
}

// ValidateUpdate checks a partial-update payload. Absent fields pass; present
// fields follow the same rules as create.
func ValidateUpdate(params domain.UpdateUserParams) error {
	return translate(validate.Struct(params))
}

// ValidateUserID checks that a path identifier is a canonical hyphenated
// UUID. Rejection happens before any persistence lookup.
func ValidateUserID(id string) error {
	if len(id) != 36 {
		return &Error{Message: "Invalid user ID format"}
	}
	if _, err := uuid.Parse(id); err != nil {
		return &Error{Message: "Invalid user ID format"}
	}
	return nil
}

// translate converts validator failures into one aggregated Error.
func translate(err error) error {
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		msgs := make([]string, 0, len(ve))
		for _, fe := range ve {
			msgs = append(msgs, fieldError(fe))
		}
		return &Error{Message: strings.Join(msgs, ", ")}
	}
	return &Error{Message: "Invalid request payload"}
}

// fieldError converts a single rule violation into its user-facing message.
func fieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "min":
		// min=1 on text fields means "present but empty", which reads the
		// same as a missing required field.
		return fe.Field() + " is required"
	case "email":
		return "Invalid email format"
	default:
		return fe.Field() + " is invalid"
	}
}
