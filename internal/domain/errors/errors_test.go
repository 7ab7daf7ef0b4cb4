package errors

import (
	"net/http"
	"testing"

	"notes/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("title is required")

	assert.True(t, errors.Is(detailed, ErrValidationFailed))
	assert.False(t, errors.Is(detailed, ErrForbidden))
	assert.Equal(t, "title is required", detailed.Details())
	assert.Equal(t, "Invalid input: title is required", detailed.Error())
	assert.Empty(t, ErrValidationFailed.Details())
}

func TestBaseError_WrapMessageIsRecoverable(t *testing.T) {
	wrapped := errors.Wrap(ErrForbidden.WrapMessage("note belongs to another user"), "update note")

	var appErr AppError
	require.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode())
	assert.Equal(t, "FORBIDDEN", appErr.ErrorCode())
	assert.True(t, errors.Is(wrapped, ErrForbidden))
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to create note")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Contains(t, err.Error(), "connection reset")
	assert.True(t, errors.Is(err, cause))
}

func TestConflictsUseBadRequest(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, ErrUserAlreadyExists.HTTPCode())
	assert.Equal(t, http.StatusBadRequest, ErrCategoryAlreadyExists.HTTPCode())
}
