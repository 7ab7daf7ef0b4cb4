package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "notes/internal/delivery/context"
	"notes/internal/domain/entity"
	"notes/internal/domain/repository"
	"notes/internal/domain/service"
	"notes/internal/domain/validation"
	"notes/internal/errors"
	"notes/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// noteService implements the NoteUsecase interface.
type noteService struct {
	txManager repository.TransactionManager
	noteRepo  repository.NoteRepository
	storage   service.FileStorage
	logger    *slog.Logger
}

// NoteServiceParams holds dependencies for NoteService, injected by Fx.
type NoteServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	NoteRepo  repository.NoteRepository
	Storage   service.FileStorage
	Logger    *slog.Logger
}

// NewNoteService is the constructor for noteService.
func NewNoteService(params NoteServiceParams) usecase.NoteUsecase {
	return &noteService{
		txManager: params.TxManager,
		noteRepo:  params.NoteRepo,
		storage:   params.Storage,
		logger:    params.Logger,
	}
}

func (srv *noteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListNotes returns the caller's notes, newest first.
func (srv *noteService) ListNotes(ctx context.Context, userID uuid.UUID, filter entity.NoteFilter) ([]*entity.Note, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	filter.CategoryName = strings.TrimSpace(filter.CategoryName)

	notes, err := srv.noteRepo.ListByUser(ctx, userID, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notes")
	}

	return notes, nil
}

// CreateNote creates a note for the caller, upserting its category by name.
func (srv *noteService) CreateNote(ctx context.Context, userID uuid.UUID, input usecase.CreateNoteInput) (*entity.Note, error) {
	if err := validation.NoteContent(input.Title, input.Content); err != nil {
		return nil, err
	}

	var created *entity.Note
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		categoryID, _, err := resolveCategory(ctx, factory.NewCategoryRepository(), userID, input.Category, input.CategoryID)
		if err != nil {
			return err
		}

		note := &entity.Note{
			ID:         uuid.New(),
			UserID:     userID,
			Title:      input.Title,
			Content:    input.Content,
			CategoryID: categoryID,
		}

		noteRepo := factory.NewNoteRepository()
		if err := noteRepo.Create(ctx, note); err != nil {
			return errors.Wrap(err, "failed to create note")
		}

		created, err = noteRepo.FindByID(ctx, note.ID)
		if err != nil {
			return errors.Wrap(err, "failed to reload note")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Note created", slog.String("noteID", created.ID.String()))

	return created, nil
}

// UpdateNote applies a partial update to one of the caller's notes.
func (srv *noteService) UpdateNote(ctx context.Context, userID, noteID uuid.UUID, input usecase.UpdateNoteInput) (*entity.Note, error) {
	if err := validation.NoteUpdate(input.Title, input.Content); err != nil {
		return nil, err
	}

	var updated *entity.Note
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		noteRepo := factory.NewNoteRepository()

		note, err := loadOwnedNote(ctx, noteRepo, userID, noteID)
		if err != nil {
			return err
		}

		if input.Title != nil {
			note.Title = *input.Title
		}
		if input.Content != nil {
			note.Content = *input.Content
		}

		categoryID, changed, err := resolveCategory(ctx, factory.NewCategoryRepository(), userID, input.Category, input.CategoryID)
		if err != nil {
			return err
		}
		if changed {
			note.CategoryID = categoryID
			note.Category = nil
		}

		if err := noteRepo.Update(ctx, note); err != nil {
			return errors.Wrap(err, "failed to update note")
		}

		updated, err = noteRepo.FindByID(ctx, note.ID)
		if err != nil {
			return errors.Wrap(err, "failed to reload note")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteNote removes one of the caller's notes and then its attachment.
func (srv *noteService) DeleteNote(ctx context.Context, userID, noteID uuid.UUID) (*entity.Note, error) {
	note, err := loadOwnedNote(ctx, srv.noteRepo, userID, noteID)
	if err != nil {
		return nil, err
	}

	if err := srv.noteRepo.Delete(ctx, note.ID); err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			// Deleted concurrently by the same owner.
			return note, nil
		}

		return nil, errors.Wrap(err, "failed to delete note")
	}

	if note.HasAttachment() {
		if err := srv.storage.Delete(ctx, note.FileKey); err != nil {
			srv.log(ctx).Warn("Failed to delete attachment of deleted note",
				slog.String("noteID", note.ID.String()),
				slog.String("key", note.FileKey),
				slog.Any("error", err))
		}
	}

	return note, nil
}
