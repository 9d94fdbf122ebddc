// internal/validation/user_test.go
package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"userbase/internal/domain"
	"userbase/internal/util"
)

func strPtr(s string) *string { return &s }

func TestValidateCreate(t *testing.T) {
	t.Run("ValidPayload", func(t *testing.T) {
		err := ValidateCreate(domain.CreateUserParams{
			Username: "ana",
			Email:    "ana@example.com",
			Name:     "Ana",
		})
		assert.NoError(t, err)
	})

	t.Run("AllRequiredMissing", func(t *testing.T) {
		err := ValidateCreate(domain.CreateUserParams{})
		assert.Error(t, err)
		assert.ErrorIs(t, err, util.ErrInvalidInput)
		// Every violated rule is reported, not just the first.
		assert.Equal(t, "Username is required, Email is required, Name is required", err.Error())
	})

	t.Run("InvalidEmail", func(t *testing.T) {
		err := ValidateCreate(domain.CreateUserParams{
			Username: "ana",
			Email:    "not-an-email",
			Name:     "Ana",
		})
		assert.Error(t, err)
		assert.Equal(t, "Invalid email format", err.Error())
	})

	t.Run("MissingUsernameAndBadEmail", func(t *testing.T) {
		err := ValidateCreate(domain.CreateUserParams{
			Email: "nope",
			Name:  "Ana",
		})
		assert.Error(t, err)
		assert.Equal(t, "Username is required, Invalid email format", err.Error())
	})

	t.Run("OptionalFieldsUnconstrained", func(t *testing.T) {
		err := ValidateCreate(domain.CreateUserParams{
			Username: "ana",
			Email:    "ana@example.com",
			Name:     "Ana",
			Gender:   strPtr(""),
			Bio:      strPtr(""),
		})
		assert.NoError(t, err)
	})
}

func TestValidateUpdate(t *testing.T) {
	t.Run("EmptyPayloadPasses", func(t *testing.T) {
		assert.NoError(t, ValidateUpdate(domain.UpdateUserParams{}))
	})

	t.Run("PresentFieldsValidated", func(t *testing.T) {
		err := ValidateUpdate(domain.UpdateUserParams{Username: strPtr("")})
		assert.Error(t, err)
		assert.ErrorIs(t, err, util.ErrInvalidInput)
		assert.Equal(t, "Username is required", err.Error())
	})

	t.Run("PresentBadEmail", func(t *testing.T) {
		err := ValidateUpdate(domain.UpdateUserParams{Email: strPtr("nope")})
		assert.Error(t, err)
		assert.Equal(t, "Invalid email format", err.Error())
	})

	t.Run("ValidSubset", func(t *testing.T) {
		err := ValidateUpdate(domain.UpdateUserParams{
			Name: strPtr("New Name"),
			Bio:  strPtr("new bio"),
		})
		assert.NoError(t, err)
	})
}

func TestValidateUserID(t *testing.T) {
	t.Run("CanonicalUUID", func(t *testing.T) {
		assert.NoError(t, ValidateUserID("7f9c24e8-3b12-4fef-91d0-3c2a9f6d24a1"))
	})

	t.Run("NilUUIDIsStillValidFormat", func(t *testing.T) {
		assert.NoError(t, ValidateUserID("00000000-0000-0000-0000-000000000000"))
	})

	t.Run("Garbage", func(t *testing.T) {
		err := ValidateUserID("invalid-id")
		assert.Error(t, err)
		assert.ErrorIs(t, err, util.ErrInvalidInput)
		assert.Equal(t, "Invalid user ID format", err.Error())
	})

	t.Run("UnhyphenatedHexRejected", func(t *testing.T) {
		err := ValidateUserID("7f9c24e83b124fef91d03c2a9f6d24a1")
		assert.Error(t, err)
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Error(t, ValidateUserID(""))
	})
}
