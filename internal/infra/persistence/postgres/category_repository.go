package postgres

import (
	"context"

	"notes/internal/domain/entity"
	domainerrors "notes/internal/domain/errors"
	"notes/internal/domain/repository"
	"notes/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// categoryRepository implements the repository.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// categoryRow is a category joined with the number of notes tagged with it.
type categoryRow struct {
	model.CategoryModel
	NoteCount int64
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

// Create persists a new category.
func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryM := fromCategoryDomain(category)
	if categoryM.ID == uuid.Nil {
		categoryM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Omit("User").Create(categoryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrCategoryAlreadyExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrForbidden.WrapMessage("category owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	category.ID = categoryM.ID
	category.CreatedAt = categoryM.CreatedAt
	category.UpdatedAt = categoryM.UpdatedAt

	return nil
}

// FindByID retrieves a category by its ID.
func (repo *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryM model.CategoryModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by id")
	}

	return toCategoryDomain(&categoryM), nil
}

// FindByName retrieves the user's category with exactly this name.
func (repo *categoryRepository) FindByName(ctx context.Context, userID uuid.UUID, name string) (*entity.Category, error) {
	var categoryM model.CategoryModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND name = ?", userID, name).
		First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by name")
	}

	return toCategoryDomain(&categoryM), nil
}

// FindOrCreate returns the user's category with this name, creating it when
// missing. Concurrent callers converge on the same row.
func (repo *categoryRepository) FindOrCreate(ctx context.Context, userID uuid.UUID, name string) (*entity.Category, error) {
	categoryM := &model.CategoryModel{
		ID:     uuid.New(),
		UserID: userID,
		Name:   name,
	}

	if err := categoryUpsertQuery(repo.db.WithContext(ctx)).Create(categoryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, domainerrors.ErrForbidden.WrapMessage("category owner does not exist")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert category")
	}

	return repo.FindByName(ctx, userID, name)
}

// categoryUpsertQuery inserts without failing on an existing (user_id, name)
// pair, which keeps an enclosing transaction usable.
func categoryUpsertQuery(db *gorm.DB) *gorm.DB {
	return db.Omit("User").Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "name"}},
		DoNothing: true,
	})
}

// ListByUser returns the user's categories ordered by name with note counts.
func (repo *categoryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	var rows []categoryRow
	if err := categoryListQuery(repo.db.WithContext(ctx), userID).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(rows))
	for i := range rows {
		category := toCategoryDomain(&rows[i].CategoryModel)
		category.NoteCount = rows[i].NoteCount
		categories = append(categories, category)
	}

	return categories, nil
}

func categoryListQuery(db *gorm.DB, userID uuid.UUID) *gorm.DB {
	return db.Table("categories").
		Select("categories.*, COUNT(notes.id) AS note_count").
		Joins("LEFT JOIN notes ON notes.category_id = categories.id").
		Where("categories.user_id = ?", userID).
		Group("categories.id").
		Order("categories.name ASC")
}

// --- Mapper Functions ---

// toCategoryDomain converts a GORM CategoryModel to a domain Category entity.
func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromCategoryDomain converts a domain Category entity to a GORM CategoryModel.
func fromCategoryDomain(data *entity.Category) *model.CategoryModel {
	if data == nil {
		return nil
	}

	return &model.CategoryModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
