package usecase

import (
	"context"

	"notes/internal/domain/entity"

	"github.com/google/uuid"
)

// CategoryUsecase defines category operations for the authenticated owner.
type CategoryUsecase interface {
	// ListCategories returns the owner's categories by name with note counts.
	ListCategories(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error)

	// CreateCategory creates a category and rejects duplicate names.
	CreateCategory(ctx context.Context, userID uuid.UUID, name string) (*entity.Category, error)
}
