package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"notes/internal/delivery/api/response"
	domainerrors "notes/internal/domain/errors"
	"notes/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, response.ErrorResponse) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError(err, c)

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return rec, body
}

func TestHandleHTTPError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		details any
	}{
		{"app error", domainerrors.ErrForbidden, http.StatusForbidden, "FORBIDDEN", nil},
		{"wrapped app error", errors.Wrap(domainerrors.ErrUserAlreadyExists, "signup"), http.StatusBadRequest, "USER_ALREADY_EXISTS", nil},
		{"validation details", domainerrors.ErrValidationFailed.WithDetails("title is required"), http.StatusBadRequest, "VALIDATION_FAILED", "title is required"},
		{"duplicate key", gorm.ErrDuplicatedKey, http.StatusConflict, "CONFLICT", nil},
		{"record not found", gorm.ErrRecordNotFound, http.StatusNotFound, "NOT_FOUND", nil},
		{"jwt expired", jwt.ErrTokenExpired, http.StatusUnauthorized, "TOKEN_EXPIRED", nil},
		{"jwt malformed", jwt.ErrTokenMalformed, http.StatusUnauthorized, "TOKEN_INVALID", nil},
		{"route not found", echo.ErrNotFound, http.StatusNotFound, "NOT_FOUND", nil},
		{"method not allowed", echo.ErrMethodNotAllowed, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", nil},
		{"body too large", echo.ErrStatusRequestEntityTooLarge, http.StatusRequestEntityTooLarge, "REQUEST_TOO_LARGE", nil},
		{"other http error", echo.NewHTTPError(http.StatusTeapot, "short and stout"), http.StatusTeapot, "HTTP_ERROR", nil},
		{"database error", domainerrors.NewDatabaseExecuteError(errors.New("conn reset"), "failed to create user"), http.StatusInternalServerError, "DATABASE_EXECUTE_FAILED", nil},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := handleError(t, tt.err)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, body.Error.Code)
			assert.Equal(t, tt.details, body.Error.Details)
		})
	}
}

func TestHandleHTTPError_HidesInternalMessages(t *testing.T) {
	_, body := handleError(t, errors.New("pq: password authentication failed for user notes"))

	assert.Equal(t, domainerrors.ErrInternalError.Message(), body.Error.Message)
	assert.Nil(t, body.Error.Details)
}

func TestHandleHTTPError_CommittedResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.String(http.StatusOK, "partial"))

	NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError(errors.New("late"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "partial", rec.Body.String())
}
