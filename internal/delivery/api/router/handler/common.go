package handler

import (
	"net/http"

	"notes/internal/delivery/api/middleware"
	"notes/internal/delivery/api/response"
	domainerrors "notes/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

func invalidBody() error {
	return domainerrors.ErrValidationFailed.WithDetails("Invalid request body")
}

// parseID reads a UUID path parameter.
func parseID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidID.WithDetails(name + " must be a UUID")
	}

	return id, nil
}

// requireUserID returns the caller set by the auth middleware.
func requireUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrTokenInvalid
	}

	return userID, nil
}
