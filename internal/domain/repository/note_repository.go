package repository

import (
	"context"

	"notes/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrNoteNotFound is returned when a note does not exist.
var ErrNoteNotFound = errors.New("note not found")

// NoteRepository defines persistence operations for notes.
type NoteRepository interface {
	// Create persists a new note.
	Create(ctx context.Context, note *entity.Note) error

	// FindByID retrieves a note with its category preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Note, error)

	// ListByUser returns the user's notes, newest first, with categories preloaded.
	ListByUser(ctx context.Context, userID uuid.UUID, filter entity.NoteFilter) ([]*entity.Note, error)

	// Update writes the mutable fields of the note.
	Update(ctx context.Context, note *entity.Note) error

	// Delete removes a note by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
