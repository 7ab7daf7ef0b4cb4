package usecase

import (
	"context"

	"notes/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateNoteInput defines a new note. Category is a name that is reused or
// created for the owner; CategoryID must reference one of the owner's categories.
type CreateNoteInput struct {
	Title      string
	Content    string
	Category   *string
	CategoryID *uuid.UUID
}

// UpdateNoteInput is a partial update. Nil fields keep their current value.
// A provided blank Category detaches the note from its category.
type UpdateNoteInput struct {
	Title      *string
	Content    *string
	Category   *string
	CategoryID *uuid.UUID
}

// NoteUsecase defines note CRUD for the authenticated owner.
type NoteUsecase interface {
	ListNotes(ctx context.Context, userID uuid.UUID, filter entity.NoteFilter) ([]*entity.Note, error)
	CreateNote(ctx context.Context, userID uuid.UUID, input CreateNoteInput) (*entity.Note, error)
	UpdateNote(ctx context.Context, userID, noteID uuid.UUID, input UpdateNoteInput) (*entity.Note, error)

	// DeleteNote removes the note and its attachment and returns what was deleted.
	DeleteNote(ctx context.Context, userID, noteID uuid.UUID) (*entity.Note, error)
}
