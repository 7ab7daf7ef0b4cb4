// Package validation holds the presence and length checks applied to inbound payloads
// before any persistence call. All checks are pure.
package validation

import (
	"strconv"
	"strings"
	"unicode/utf8"

	domainerrors "notes/internal/domain/errors"
)

// IsBlank reports whether s is empty after trimming whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Required fails with a validation error naming field when value is blank.
func Required(field, value string) error {
	if IsBlank(value) {
		return domainerrors.ErrValidationFailed.WithDetails(field + " is required")
	}

	return nil
}

// Credentials checks a signup or login payload.
func Credentials(email, password string) error {
	if IsBlank(email) || IsBlank(password) {
		return domainerrors.ErrValidationFailed.WithDetails("Email and password are required")
	}

	return nil
}

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

// Password checks a new password against the limits of the hasher.
func Password(password string) error {
	if len(password) > maxPasswordBytes {
		return domainerrors.ErrValidationFailed.WithDetails("Password must be at most 72 bytes")
	}

	return nil
}

// Column limits of the notes and categories tables.
const (
	MaxTitleLength        = 255
	MaxCategoryNameLength = 100
)

// MaxLength fails with a validation error naming field when value has more
// than limit characters.
func MaxLength(field, value string, limit int) error {
	if utf8.RuneCountInString(value) > limit {
		return domainerrors.ErrValidationFailed.WithDetails(field + " must be at most " + strconv.Itoa(limit) + " characters")
	}

	return nil
}

// NoteContent checks the fields required to create a note.
func NoteContent(title, content string) error {
	if IsBlank(title) || IsBlank(content) {
		return domainerrors.ErrValidationFailed.WithDetails("Title and content are required")
	}

	return MaxLength("title", title, MaxTitleLength)
}

// NoteUpdate checks a partial update. Absent fields are left alone but a
// provided field must not be blank.
func NoteUpdate(title, content *string) error {
	if title != nil {
		if err := Required("title", *title); err != nil {
			return err
		}
		if err := MaxLength("title", *title, MaxTitleLength); err != nil {
			return err
		}
	}
	if content != nil {
		if err := Required("content", *content); err != nil {
			return err
		}
	}

	return nil
}

// CategoryName checks a category name.
func CategoryName(name string) error {
	if IsBlank(name) {
		return domainerrors.ErrValidationFailed.WithDetails("Category name is required")
	}

	return MaxLength("name", strings.TrimSpace(name), MaxCategoryNameLength)
}
