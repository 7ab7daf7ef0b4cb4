package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "notes/internal/delivery/context"
	"notes/internal/domain/entity"
	domainerrors "notes/internal/domain/errors"
	"notes/internal/domain/repository"
	"notes/internal/domain/validation"
	"notes/internal/errors"
	"notes/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for CategoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCategories returns the caller's categories with note counts.
func (srv *categoryService) ListCategories(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// CreateCategory creates a category. Unlike the upsert done for notes, an
// existing name is a conflict here.
func (srv *categoryService) CreateCategory(ctx context.Context, userID uuid.UUID, name string) (*entity.Category, error) {
	if err := validation.CategoryName(name); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)

	_, err := srv.categoryRepo.FindByName(ctx, userID, name)
	switch {
	case err == nil:
		return nil, domainerrors.ErrCategoryAlreadyExists
	case !errors.Is(err, repository.ErrCategoryNotFound):
		return nil, errors.Wrap(err, "failed to check existing category")
	}

	category := &entity.Category{
		ID:     uuid.New(),
		UserID: userID,
		Name:   name,
	}
	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, domainerrors.ErrCategoryAlreadyExists) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to create category")
	}

	srv.log(ctx).Debug("Category created", slog.String("categoryID", category.ID.String()))

	return category, nil
}
