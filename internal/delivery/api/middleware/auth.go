// Package middleware contains the echo middleware specific to the API server.
package middleware

import (
	"strings"

	deliverycontext "notes/internal/delivery/context"
	domainerrors "notes/internal/domain/errors"
	"notes/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for bearer token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate verifies the bearer token and stores the caller identity on
// both the echo context and the request context. Requests without a usable
// token never reach the handler.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			return domainerrors.ErrAuthHeaderInvalid
		}

		tokenString := strings.TrimSpace(authHeader[len(bearerPrefix):])
		if tokenString == "" {
			return domainerrors.ErrAuthHeaderInvalid
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return err
		}

		userID, err := claims.UserID()
		if err != nil || userID == uuid.Nil {
			return domainerrors.ErrTokenInvalid
		}

		identity := deliverycontext.Identity{UserID: userID, Email: claims.Email}
		c.Set(string(deliverycontext.KeyIdentity), identity)

		ctx := deliverycontext.WithIdentity(c.Request().Context(), identity)
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With("user_id", userID.String()))
		}
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// GetIdentity returns the identity stored by Authenticate.
func GetIdentity(c echo.Context) (deliverycontext.Identity, bool) {
	identity, ok := c.Get(string(deliverycontext.KeyIdentity)).(deliverycontext.Identity)

	return identity, ok && identity.UserID != uuid.Nil
}

// GetUserID is a helper function to extract the user ID from the context.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	identity, ok := GetIdentity(c)

	return identity.UserID, ok
}
