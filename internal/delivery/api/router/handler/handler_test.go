package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"notes/internal/delivery/api/validator"
	deliverycontext "notes/internal/delivery/context"
	"notes/internal/domain/entity"
	domainerrors "notes/internal/domain/errors"
	mockusecase "notes/internal/mocks/usecase"
	"notes/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newContext builds an echo context for target. A non-nil userID marks the
// request as authenticated.
func newContext(t *testing.T, method, target, body string, userID *uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	v, err := validator.New()
	require.NoError(t, err)
	e := echo.New()
	e.Validator = v

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if userID != nil {
		c.Set(string(deliverycontext.KeyIdentity), deliverycontext.Identity{UserID: *userID})
	}

	return c, rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func TestAuthHandler_Signup(t *testing.T) {
	authUC := mockusecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: discardLogger()})

	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", PasswordHash: "secret-hash"}
	authUC.EXPECT().
		Signup(mock.Anything, usecase.SignupInput{Email: "ada@example.com", Password: "pw"}).
		Return(&usecase.AuthOutput{Token: "tok", User: user}, nil)

	c, rec := newContext(t, http.MethodPost, "/auth/signup", `{"email":"  ada@example.com ","password":"pw"}`, nil)
	require.NoError(t, h.Signup(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret-hash")

	var out AuthResponse
	decodeData(t, rec, &out)
	assert.Equal(t, "User created successfully", out.Message)
	assert.Equal(t, "tok", out.Token)
	assert.Equal(t, user.ID, out.User.ID)
}

func TestAuthHandler_Signup_Validation(t *testing.T) {
	h := NewAuthHandler(AuthHandlerParams{AuthUC: mockusecase.NewMockAuthUsecase(t), Logger: discardLogger()})

	for _, body := range []string{
		`{"password":"pw"}`,
		`{"email":"ada@example.com","password":"   "}`,
		`{"email":"not-an-email","password":"pw"}`,
		`{"email":`,
	} {
		c, _ := newContext(t, http.MethodPost, "/auth/signup", body, nil)
		assert.ErrorIs(t, h.Signup(c), domainerrors.ErrValidationFailed, body)
	}
}

func TestAuthHandler_Me_RequiresIdentity(t *testing.T) {
	h := NewAuthHandler(AuthHandlerParams{AuthUC: mockusecase.NewMockAuthUsecase(t), Logger: discardLogger()})

	c, _ := newContext(t, http.MethodGet, "/auth/me", "", nil)
	assert.ErrorIs(t, h.Me(c), domainerrors.ErrTokenInvalid)
}

func TestNoteHandler_ListNotes_Filters(t *testing.T) {
	userID := uuid.New()
	categoryID := uuid.New()
	noteUC := mockusecase.NewMockNoteUsecase(t)
	h := NewNoteHandler(NoteHandlerParams{NoteUC: noteUC, Logger: discardLogger()})

	noteUC.EXPECT().
		ListNotes(mock.Anything, userID, entity.NoteFilter{Search: "milk", CategoryName: "Home", CategoryID: &categoryID}).
		Return([]*entity.Note{}, nil)

	c, rec := newContext(t, http.MethodGet, "/api/notes?search=milk&category=Home&categoryId="+categoryID.String(), "", &userID)
	require.NoError(t, h.ListNotes(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNoteHandler_CreateNote(t *testing.T) {
	userID := uuid.New()
	categoryID := uuid.New()
	noteUC := mockusecase.NewMockNoteUsecase(t)
	h := NewNoteHandler(NoteHandlerParams{NoteUC: noteUC, Logger: discardLogger()})

	noteUC.EXPECT().
		CreateNote(mock.Anything, userID, mock.MatchedBy(func(in usecase.CreateNoteInput) bool {
			return in.Title == "t" && in.Content == "c" && in.Category == nil &&
				in.CategoryID != nil && *in.CategoryID == categoryID
		})).
		Return(&entity.Note{ID: uuid.New(), UserID: userID, Title: "t", Content: "c"}, nil)

	c, rec := newContext(t, http.MethodPost, "/api/notes", `{"title":"t","content":"c","categoryId":"`+categoryID.String()+`"}`, &userID)
	require.NoError(t, h.CreateNote(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestNoteHandler_UpdateNote_Partial(t *testing.T) {
	userID := uuid.New()
	noteID := uuid.New()
	noteUC := mockusecase.NewMockNoteUsecase(t)
	h := NewNoteHandler(NoteHandlerParams{NoteUC: noteUC, Logger: discardLogger()})

	noteUC.EXPECT().
		UpdateNote(mock.Anything, userID, noteID, mock.MatchedBy(func(in usecase.UpdateNoteInput) bool {
			return in.Title == nil && in.Content != nil && *in.Content == "new" && in.Category == nil && in.CategoryID == nil
		})).
		Return(&entity.Note{ID: noteID, UserID: userID, Content: "new"}, nil)

	c, rec := newContext(t, http.MethodPut, "/api/notes/"+noteID.String(), `{"content":"new"}`, &userID)
	c.SetParamNames("id")
	c.SetParamValues(noteID.String())
	require.NoError(t, h.UpdateNote(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNoteHandler_InvalidIDs(t *testing.T) {
	userID := uuid.New()
	h := NewNoteHandler(NoteHandlerParams{NoteUC: mockusecase.NewMockNoteUsecase(t), Logger: discardLogger()})

	c, _ := newContext(t, http.MethodDelete, "/api/notes/42", "", &userID)
	c.SetParamNames("id")
	c.SetParamValues("42")
	assert.ErrorIs(t, h.DeleteNote(c), domainerrors.ErrInvalidID)

	c, _ = newContext(t, http.MethodPost, "/api/notes", `{"title":"t","content":"c","categoryId":"nope"}`, &userID)
	assert.ErrorIs(t, h.CreateNote(c), domainerrors.ErrInvalidID)
}

func TestNoteHandler_DeleteNote(t *testing.T) {
	userID := uuid.New()
	noteID := uuid.New()
	noteUC := mockusecase.NewMockNoteUsecase(t)
	h := NewNoteHandler(NoteHandlerParams{NoteUC: noteUC, Logger: discardLogger()})

	noteUC.EXPECT().DeleteNote(mock.Anything, userID, noteID).
		Return(&entity.Note{ID: noteID, UserID: userID, Title: "gone"}, nil)

	c, rec := newContext(t, http.MethodDelete, "/api/notes/"+noteID.String(), "", &userID)
	c.SetParamNames("id")
	c.SetParamValues(noteID.String())
	require.NoError(t, h.DeleteNote(c))

	var out DeleteNoteResponse
	decodeData(t, rec, &out)
	assert.Equal(t, "Note deleted", out.Message)
	assert.Equal(t, "gone", out.Deleted.Title)
}

func TestCategoryHandler_CreateCategory(t *testing.T) {
	userID := uuid.New()
	categoryUC := mockusecase.NewMockCategoryUsecase(t)
	h := NewCategoryHandler(CategoryHandlerParams{CategoryUC: categoryUC, Logger: discardLogger()})

	categoryUC.EXPECT().CreateCategory(mock.Anything, userID, "Work").
		Return(nil, domainerrors.ErrCategoryAlreadyExists)

	c, _ := newContext(t, http.MethodPost, "/api/categories", `{"name":"Work"}`, &userID)
	assert.ErrorIs(t, h.CreateCategory(c), domainerrors.ErrCategoryAlreadyExists)

	c, _ = newContext(t, http.MethodPost, "/api/categories", `{"name":"  "}`, &userID)
	assert.ErrorIs(t, h.CreateCategory(c), domainerrors.ErrValidationFailed)
}

func TestAttachmentHandler_UploadWithoutFile(t *testing.T) {
	userID := uuid.New()
	noteID := uuid.New()
	attachmentUC := mockusecase.NewMockAttachmentUsecase(t)
	h := NewAttachmentHandler(AttachmentHandlerParams{AttachmentUC: attachmentUC, Logger: discardLogger()})

	attachmentUC.EXPECT().
		Upload(mock.Anything, userID, noteID, (*usecase.UploadInput)(nil)).
		Return(nil, domainerrors.ErrFileMissing)

	c, _ := newContext(t, http.MethodPost, "/api/notes/"+noteID.String()+"/upload", "", &userID)
	c.SetParamNames("id")
	c.SetParamValues(noteID.String())
	assert.ErrorIs(t, h.Upload(c), domainerrors.ErrFileMissing)
}

func TestAttachmentHandler_Download(t *testing.T) {
	userID := uuid.New()
	noteID := uuid.New()
	attachmentUC := mockusecase.NewMockAttachmentUsecase(t)
	h := NewAttachmentHandler(AttachmentHandlerParams{AttachmentUC: attachmentUC, Logger: discardLogger()})

	attachmentUC.EXPECT().Download(mock.Anything, userID, noteID).Return(&usecase.AttachmentFile{
		Content:     io.NopCloser(strings.NewReader("%PDF-1.4")),
		ContentType: "application/pdf",
		FileName:    "report final.pdf",
	}, nil)

	c, rec := newContext(t, http.MethodGet, "/api/notes/"+noteID.String()+"/file", "", &userID)
	c.SetParamNames("id")
	c.SetParamValues(noteID.String())
	require.NoError(t, h.Download(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, `attachment; filename="report final.pdf"`, rec.Header().Get(echo.HeaderContentDisposition))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "%PDF-1.4", rec.Body.String())
}

func TestAttachmentHandler_Remove(t *testing.T) {
	userID := uuid.New()
	noteID := uuid.New()
	attachmentUC := mockusecase.NewMockAttachmentUsecase(t)
	h := NewAttachmentHandler(AttachmentHandlerParams{AttachmentUC: attachmentUC, Logger: discardLogger()})

	attachmentUC.EXPECT().Remove(mock.Anything, userID, noteID).Return(nil)

	c, rec := newContext(t, http.MethodDelete, "/api/notes/"+noteID.String()+"/file", "", &userID)
	c.SetParamNames("id")
	c.SetParamValues(noteID.String())
	require.NoError(t, h.Remove(c))
	assert.JSONEq(t, `{"success":true}`, string(mustData(t, rec)))
}

func mustData(t *testing.T, rec *httptest.ResponseRecorder) json.RawMessage {
	t.Helper()

	var raw json.RawMessage
	decodeData(t, rec, &raw)

	return raw
}
