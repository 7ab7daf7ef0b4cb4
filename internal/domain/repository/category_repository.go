package repository

import (
	"context"

	"notes/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrCategoryNotFound is returned when a category does not exist.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	// Create persists a new category. A duplicate (user, name) pair is reported
	// as domainerrors.ErrCategoryAlreadyExists.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByName retrieves the user's category with the given name.
	FindByName(ctx context.Context, userID uuid.UUID, name string) (*entity.Category, error)

	// FindOrCreate returns the user's category with the given name, creating
	// it when missing. It never reports a conflict.
	FindOrCreate(ctx context.Context, userID uuid.UUID, name string) (*entity.Category, error)

	// ListByUser returns the user's categories ordered by name, with note counts.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error)
}
