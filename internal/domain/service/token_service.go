package service

import (
	"time"

	"notes/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by access tokens.
// The subject (sub) holds the user ID.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim.
func (c *Claims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// TokenService defines the interface for issuing and verifying bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed access token for the user.
	Issue(user *entity.User) (string, error)

	// Verify checks signature and expiry and returns the claims. Expired tokens
	// fail with domainerrors.ErrTokenExpired; any other failure is
	// domainerrors.ErrTokenInvalid.
	Verify(tokenString string) (*Claims, error)

	// TTL returns the lifetime of issued tokens.
	TTL() time.Duration
}
