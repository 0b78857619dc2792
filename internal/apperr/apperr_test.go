package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindsMatchThroughWrapping(t *testing.T) {
	err := fmt.Errorf("failed to get reminder: %w", NotFound("Reminder not found"))

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrConflict))
	assert.Equal(t, "Reminder not found", Message(err, "fallback"))
}

func TestSentinelWrapping(t *testing.T) {
	err := fmt.Errorf("user 4: %w", ErrNotFound)

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "fallback", Message(err, "fallback"))
}

func TestValidationFields(t *testing.T) {
	err := Validation("Invalid reminder data", FieldError{Field: "collectionId", Message: "collection does not exist"})

	assert.True(t, errors.Is(err, ErrValidation))
	assert.Len(t, Fields(err), 1)
	assert.Nil(t, Fields(errors.New("plain")))
}

func TestInternalKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Internal("Failed to fetch user", cause)

	assert.True(t, errors.Is(err, ErrInternal))
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "connection reset")
}
