package validation

import (
	"strings"
	"testing"

	domainerrors "notes/internal/domain/errors"
	"notes/internal/errors"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestCredentials(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantErr  bool
	}{
		{name: "valid", email: "a@b.c", password: "secret"},
		{name: "missing email", email: "", password: "secret", wantErr: true},
		{name: "missing password", email: "a@b.c", password: "", wantErr: true},
		{name: "blank password", email: "a@b.c", password: "   ", wantErr: true},
		{name: "blank email", email: " \t", password: "secret", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Credentials(tt.email, tt.password)
			if tt.wantErr {
				assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNoteContent(t *testing.T) {
	assert.NoError(t, NoteContent("Groceries", "milk"))
	assert.Error(t, NoteContent("  ", "milk"))
	assert.Error(t, NoteContent("Groceries", "\n"))
	assert.Error(t, NoteContent("", ""))

	assert.NoError(t, NoteContent(strings.Repeat("é", 255), "milk"))
	err := NoteContent(strings.Repeat("a", 256), "milk")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestNoteUpdate(t *testing.T) {
	assert.NoError(t, NoteUpdate(nil, nil))
	assert.NoError(t, NoteUpdate(strPtr("new title"), nil))
	assert.NoError(t, NoteUpdate(nil, strPtr("new body")))

	err := NoteUpdate(strPtr(" "), nil)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	err = NoteUpdate(strPtr("ok"), strPtr(""))
	var appErr domainerrors.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "content is required", appErr.Details())

	err = NoteUpdate(strPtr(strings.Repeat("a", 256)), nil)
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "title must be at most 255 characters", appErr.Details())
}

func TestCategoryName(t *testing.T) {
	assert.NoError(t, CategoryName("Work"))
	assert.Error(t, CategoryName(""))
	assert.Error(t, CategoryName("   "))
	assert.NoError(t, CategoryName(" "+strings.Repeat("w", 100)+" "))
	assert.True(t, errors.Is(CategoryName(strings.Repeat("w", 101)), domainerrors.ErrValidationFailed))
}

func TestPassword(t *testing.T) {
	assert.NoError(t, Password(strings.Repeat("a", 72)))
	assert.True(t, errors.Is(Password(strings.Repeat("a", 73)), domainerrors.ErrValidationFailed))
}
