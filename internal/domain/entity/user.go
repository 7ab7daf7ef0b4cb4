// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is an account that owns notes and categories.
type User struct {
	ID           uuid.UUID `json:"id"`    // The Global Unique Identifier (GUID) for the user.
	Email        string    `json:"email"` // Login identifier, unique across all users.
	PasswordHash string    `json:"-"`     // bcrypt digest of the password. Never serialized.
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NormalizeEmail trims surrounding whitespace and lowercases the address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
