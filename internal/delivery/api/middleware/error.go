package middleware

import (
	"log/slog"
	"net/http"

	"notes/internal/delivery/api/response"
	deliverycontext "notes/internal/delivery/context"
	domainerrors "notes/internal/domain/errors"
	"notes/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		m.log(c).Warn("Error after response was committed", slog.Any("error", err))

		return
	}

	appErr := m.toAppError(err)
	if appErr == nil {
		// Default to internal error, log the error but return a generic message (do not expose internal details)
		m.log(c).Error("Unhandled error",
			slog.Any("error", err),
			slog.String("path", c.Request().URL.Path),
			slog.String("method", c.Request().Method),
		)

		_ = response.InternalServerError(c, domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message())

		return
	}

	if appErr.HTTPCode() >= http.StatusInternalServerError {
		m.log(c).Error("Request failed",
			slog.String("code", appErr.ErrorCode()),
			slog.Any("error", err),
			slog.String("path", c.Request().URL.Path),
			slog.String("method", c.Request().Method),
		)
	}

	_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
}

// toAppError classifies err, returning nil for errors that have no public form.
func (m *ErrorMiddleware) toAppError(err error) domainerrors.AppError {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domainerrors.ErrConflict
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domainerrors.NewBaseError(http.StatusNotFound, "NOT_FOUND", "Resource not found", "")
	case errors.Is(err, jwt.ErrTokenExpired):
		return domainerrors.ErrTokenExpired
	case isJWTError(err):
		return domainerrors.ErrTokenInvalid
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return fromHTTPError(httpErr)
	}

	return nil
}

func (m *ErrorMiddleware) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
}

func isJWTError(err error) bool {
	for _, target := range []error{
		jwt.ErrTokenMalformed,
		jwt.ErrTokenSignatureInvalid,
		jwt.ErrTokenUnverifiable,
		jwt.ErrTokenInvalidClaims,
		jwt.ErrTokenNotValidYet,
		jwt.ErrTokenUsedBeforeIssued,
		jwt.ErrTokenRequiredClaimMissing,
	} {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}

// fromHTTPError maps echo's own errors (routing, body limit, binding).
func fromHTTPError(httpErr *echo.HTTPError) domainerrors.AppError {
	switch httpErr.Code {
	case http.StatusNotFound:
		return domainerrors.ErrNotFound
	case http.StatusMethodNotAllowed:
		return domainerrors.NewBaseError(httpErr.Code, "METHOD_NOT_ALLOWED", "Method not allowed", "")
	case http.StatusRequestEntityTooLarge:
		return domainerrors.NewBaseError(httpErr.Code, "REQUEST_TOO_LARGE", "Request body too large", "")
	}

	message := http.StatusText(httpErr.Code)
	if msg, ok := httpErr.Message.(string); ok && msg != "" {
		message = msg
	}

	return domainerrors.NewBaseError(httpErr.Code, "HTTP_ERROR", message, "")
}
