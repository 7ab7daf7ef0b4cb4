// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"notes/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignupInput defines the data required to create an account.
type SignupInput struct {
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the issued token and the authenticated user.
type AuthOutput struct {
	Token string
	User  *entity.User
}

// AuthUsecase defines account and credential operations.
type AuthUsecase interface {
	// Signup creates an account and returns a token for it.
	Signup(ctx context.Context, input SignupInput) (*AuthOutput, error)

	// Login verifies credentials. Unknown email and wrong password fail identically.
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)

	// Me returns the account of the authenticated caller.
	Me(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
