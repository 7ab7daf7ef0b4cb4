package handler

import (
	"log/slog"
	"net/http"

	"notes/internal/delivery/api/response"
	"notes/internal/domain/entity"
	domainerrors "notes/internal/domain/errors"
	"notes/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NoteHandlerParams holds dependencies for NoteHandler, injected by Fx.
type NoteHandlerParams struct {
	fx.In

	NoteUC usecase.NoteUsecase
	Logger *slog.Logger
}

// NoteHandler holds dependencies for note handlers
type NoteHandler struct {
	noteUC usecase.NoteUsecase
	logger *slog.Logger
}

// NewNoteHandler is the constructor for NoteHandler
func NewNoteHandler(params NoteHandlerParams) *NoteHandler {
	return &NoteHandler{
		noteUC: params.NoteUC,
		logger: params.Logger,
	}
}

// ListNotesQuery holds the optional filters of a note listing
type ListNotesQuery struct {
	Search     string `query:"search"`
	Category   string `query:"category"`
	CategoryID string `query:"categoryId"`
}

// CreateNoteRequest represents the request body for creating a note
type CreateNoteRequest struct {
	Title      string  `json:"title" validate:"required,notblank,max=255"`
	Content    string  `json:"content" validate:"required,notblank"`
	Category   *string `json:"category" validate:"omitnil,max=100"`
	CategoryID *string `json:"categoryId"`
}

// UpdateNoteRequest represents a partial note update. Omitted fields are unchanged.
type UpdateNoteRequest struct {
	Title      *string `json:"title" validate:"omitnil,notblank,max=255"`
	Content    *string `json:"content" validate:"omitnil,notblank"`
	Category   *string `json:"category" validate:"omitnil,max=100"`
	CategoryID *string `json:"categoryId"`
}

// DeleteNoteResponse is returned after a note is deleted
type DeleteNoteResponse struct {
	Message string       `json:"message"`
	Deleted *entity.Note `json:"deleted"`
}

// ListNotes returns the caller's notes, newest first
func (h *NoteHandler) ListNotes(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	var query ListNotesQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return invalidBody()
	}

	categoryID, err := parseOptionalID(query.CategoryID, "categoryId")
	if err != nil {
		return err
	}

	notes, err := h.noteUC.ListNotes(c.Request().Context(), userID, entity.NoteFilter{
		Search:       query.Search,
		CategoryID:   categoryID,
		CategoryName: query.Category,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, notes)
}

// CreateNote handles note creation
func (h *NoteHandler) CreateNote(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	var req CreateNoteRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	categoryID, err := parseOptionalIDPtr(req.CategoryID, "categoryId")
	if err != nil {
		return err
	}

	note, err := h.noteUC.CreateNote(c.Request().Context(), userID, usecase.CreateNoteInput{
		Title:      req.Title,
		Content:    req.Content,
		Category:   req.Category,
		CategoryID: categoryID,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, note)
}

// UpdateNote handles partial note updates
func (h *NoteHandler) UpdateNote(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	noteID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateNoteRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	categoryID, err := parseOptionalIDPtr(req.CategoryID, "categoryId")
	if err != nil {
		return err
	}

	note, err := h.noteUC.UpdateNote(c.Request().Context(), userID, noteID, usecase.UpdateNoteInput{
		Title:      req.Title,
		Content:    req.Content,
		Category:   req.Category,
		CategoryID: categoryID,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, note)
}

// DeleteNote handles note deletion
func (h *NoteHandler) DeleteNote(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	noteID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	note, err := h.noteUC.DeleteNote(c.Request().Context(), userID, noteID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, &DeleteNoteResponse{
		Message: "Note deleted",
		Deleted: note,
	})
}

// parseOptionalID parses an optional UUID. An empty value means absent.
func parseOptionalID(value, name string) (*uuid.UUID, error) {
	if value == "" {
		return nil, nil
	}

	id, err := uuid.Parse(value)
	if err != nil {
		return nil, domainerrors.ErrInvalidID.WithDetails(name + " must be a UUID")
	}

	return &id, nil
}

func parseOptionalIDPtr(value *string, name string) (*uuid.UUID, error) {
	if value == nil {
		return nil, nil
	}

	return parseOptionalID(*value, name)
}
