package impl

import (
	"context"
	"strings"

	"notes/internal/domain/entity"
	domainerrors "notes/internal/domain/errors"
	"notes/internal/domain/repository"
	"notes/internal/domain/validation"
	"notes/internal/errors"

	"github.com/google/uuid"
)

// authorizeOwner grants access only to an existing resource owned by the
// subject. Missing and foreign resources fail with the same error.
func authorizeOwner(found bool, ownerID, subjectID uuid.UUID) error {
	if !found || ownerID != subjectID {
		return domainerrors.ErrForbidden
	}

	return nil
}

// loadOwnedNote fetches a note and applies the owner guard.
func loadOwnedNote(ctx context.Context, repo repository.NoteRepository, userID, noteID uuid.UUID) (*entity.Note, error) {
	note, err := repo.FindByID(ctx, noteID)
	if err != nil && !errors.Is(err, repository.ErrNoteNotFound) {
		return nil, errors.Wrap(err, "failed to find note")
	}

	var ownerID uuid.UUID
	if err == nil {
		ownerID = note.UserID
	}
	if err := authorizeOwner(err == nil, ownerID, userID); err != nil {
		return nil, err
	}

	return note, nil
}

// loadOwnedCategory fetches a category and applies the owner guard.
func loadOwnedCategory(ctx context.Context, repo repository.CategoryRepository, userID, categoryID uuid.UUID) (*entity.Category, error) {
	category, err := repo.FindByID(ctx, categoryID)
	if err != nil && !errors.Is(err, repository.ErrCategoryNotFound) {
		return nil, errors.Wrap(err, "failed to find category")
	}

	var ownerID uuid.UUID
	if err == nil {
		ownerID = category.UserID
	}
	if err := authorizeOwner(err == nil, ownerID, userID); err != nil {
		return nil, err
	}

	return category, nil
}

// resolveCategory turns the category reference of a note payload into a
// category ID. An explicit ID wins over a name and must belong to the user.
// A name is upserted. The boolean is false when the payload names no category.
func resolveCategory(
	ctx context.Context,
	repo repository.CategoryRepository,
	userID uuid.UUID,
	name *string,
	categoryID *uuid.UUID,
) (*uuid.UUID, bool, error) {
	if categoryID != nil {
		category, err := loadOwnedCategory(ctx, repo, userID, *categoryID)
		if err != nil {
			return nil, false, err
		}

		return &category.ID, true, nil
	}

	if name == nil {
		return nil, false, nil
	}

	trimmed := strings.TrimSpace(*name)
	if trimmed == "" {
		return nil, true, nil
	}
	if err := validation.CategoryName(trimmed); err != nil {
		return nil, false, err
	}

	category, err := repo.FindOrCreate(ctx, userID, trimmed)
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to resolve category")
	}

	return &category.ID, true, nil
}
