package postgres

import (
	"context"
	"strings"
	"time"

	"notes/internal/domain/entity"
	domainerrors "notes/internal/domain/errors"
	"notes/internal/domain/repository"
	"notes/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// noteUpdateColumns are the columns Update writes. Owner and creation time never change.
var noteUpdateColumns = []string{"title", "content", "category_id", "file_url", "file_name", "file_key", "updated_at"}

// noteRepository implements the repository.NoteRepository interface.
type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository is the constructor for noteRepository.
func NewNoteRepository(db *gorm.DB) repository.NoteRepository {
	return &noteRepository{db: db}
}

// Create persists a new note. Associations are not written.
func (repo *noteRepository) Create(ctx context.Context, note *entity.Note) error {
	noteM := fromNoteDomain(note)
	if noteM.ID == uuid.Nil {
		noteM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Omit("User", "Category").Create(noteM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrForbidden.WrapMessage("note references a missing user or category")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create note")
	}

	note.ID = noteM.ID
	note.CreatedAt = noteM.CreatedAt
	note.UpdatedAt = noteM.UpdatedAt

	return nil
}

// FindByID retrieves a note with its category.
func (repo *noteRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Note, error) {
	var noteM model.NoteModel
	if err := repo.db.WithContext(ctx).
		Preload("Category").
		Where("notes.id = ?", id).
		First(&noteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNoteNotFound
		}

		return nil, errors.Wrap(err, "failed to find note by id")
	}

	return toNoteDomain(&noteM), nil
}

// ListByUser returns the user's notes matching filter, newest first.
func (repo *noteRepository) ListByUser(ctx context.Context, userID uuid.UUID, filter entity.NoteFilter) ([]*entity.Note, error) {
	var noteModels []*model.NoteModel
	if err := noteListQuery(repo.db.WithContext(ctx), userID, filter).Find(&noteModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list notes")
	}

	notes := make([]*entity.Note, 0, len(noteModels))
	for _, noteM := range noteModels {
		notes = append(notes, toNoteDomain(noteM))
	}

	return notes, nil
}

func noteListQuery(db *gorm.DB, userID uuid.UUID, filter entity.NoteFilter) *gorm.DB {
	query := db.Model(&model.NoteModel{}).
		Preload("Category").
		Where("notes.user_id = ?", userID)

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := likePattern(search)
		query = query.Where("(notes.title ILIKE ? OR notes.content ILIKE ?)", pattern, pattern)
	}

	if filter.CategoryID != nil {
		query = query.Where("notes.category_id = ?", *filter.CategoryID)
	}

	if name := strings.TrimSpace(filter.CategoryName); name != "" {
		query = query.
			Joins("JOIN categories ON categories.id = notes.category_id").
			Where("categories.name = ?", name)
	}

	return query.Order("notes.created_at DESC")
}

// Update writes the mutable columns of the note.
func (repo *noteRepository) Update(ctx context.Context, note *entity.Note) error {
	noteM := fromNoteDomain(note)
	noteM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.NoteModel{ID: note.ID}).
		Select(noteUpdateColumns).
		Updates(noteM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrForbidden.WrapMessage("note references a missing category")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update note")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNoteNotFound
	}

	note.UpdatedAt = noteM.UpdatedAt

	return nil
}

// Delete removes a note by ID.
func (repo *noteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.NoteModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete note")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNoteNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toNoteDomain converts a GORM NoteModel to a domain Note entity.
func toNoteDomain(data *model.NoteModel) *entity.Note {
	if data == nil {
		return nil
	}

	return &entity.Note{
		ID:         data.ID,
		UserID:     data.UserID,
		Title:      data.Title,
		Content:    data.Content,
		CategoryID: data.CategoryID,
		Category:   toCategoryDomain(data.Category),
		FileURL:    data.FileURL,
		FileName:   data.FileName,
		FileKey:    data.FileKey,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromNoteDomain converts a domain Note entity to a GORM NoteModel.
// The category association is left nil so GORM never upserts it.
func fromNoteDomain(data *entity.Note) *model.NoteModel {
	if data == nil {
		return nil
	}

	return &model.NoteModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Title:      data.Title,
		Content:    data.Content,
		CategoryID: data.CategoryID,
		FileURL:    data.FileURL,
		FileName:   data.FileName,
		FileKey:    data.FileKey,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
