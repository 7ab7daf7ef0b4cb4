package impl

import (
	"context"
	"strings"
	"testing"

	"notes/internal/domain/entity"
	domainerrors "notes/internal/domain/errors"
	"notes/internal/domain/repository"
	"notes/internal/errors"
	mockRepo "notes/internal/mocks/repository"
	mockSvc "notes/internal/mocks/service"
	"notes/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// noteServiceFixtures holds all test dependencies for note service tests.
type noteServiceFixtures struct {
	service      usecase.NoteUsecase
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	noteRepo     *mockRepo.MockNoteRepository
	categoryRepo *mockRepo.MockCategoryRepository
	storage      *mockSvc.MockFileStorage
}

func createTestNoteService(t *testing.T) noteServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	noteRepo := mockRepo.NewMockNoteRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	storage := mockSvc.NewMockFileStorage(t)

	service := NewNoteService(NoteServiceParams{
		TxManager: txManager,
		NoteRepo:  noteRepo,
		Storage:   storage,
		Logger:    newDiscardLogger(),
	})

	return noteServiceFixtures{
		service:      service,
		txManager:    txManager,
		factory:      factory,
		noteRepo:     noteRepo,
		categoryRepo: categoryRepo,
		storage:      storage,
	}
}

// inTransaction wires the factory so that transactional code reaches the shared repository mocks.
func (fx noteServiceFixtures) inTransaction(t *testing.T, withCategories bool) {
	expectTransaction(t, fx.txManager, fx.factory)
	fx.factory.EXPECT().NewNoteRepository().Return(fx.noteRepo).Maybe()
	if withCategories {
		fx.factory.EXPECT().NewCategoryRepository().Return(fx.categoryRepo)
	}
}

func TestNoteService_ListNotes(t *testing.T) {
	fx := createTestNoteService(t)
	ctx := context.Background()
	userID := uuid.New()
	notes := []*entity.Note{{ID: uuid.New(), UserID: userID, Title: "a"}}

	fx.noteRepo.EXPECT().
		ListByUser(ctx, userID, entity.NoteFilter{Search: "milk", CategoryName: "Groceries"}).
		Return(notes, nil)

	got, err := fx.service.ListNotes(ctx, userID, entity.NoteFilter{Search: "  milk ", CategoryName: " Groceries"})
	require.NoError(t, err)
	assert.Equal(t, notes, got)
}

func TestNoteService_CreateNote_Validation(t *testing.T) {
	fx := createTestNoteService(t)

	_, err := fx.service.CreateNote(context.Background(), uuid.New(), usecase.CreateNoteInput{Title: " ", Content: "body"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestNoteService_CreateNote_WithoutCategory(t *testing.T) {
	fx := createTestNoteService(t)
	fx.inTransaction(t, true)
	ctx := context.Background()
	userID := uuid.New()

	var createdID uuid.UUID
	fx.noteRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Note")).
		Run(func(_ context.Context, note *entity.Note) {
			createdID = note.ID
			assert.Equal(t, userID, note.UserID)
			assert.Nil(t, note.CategoryID)
		}).
		Return(nil)
	fx.noteRepo.EXPECT().
		FindByID(ctx, mock.AnythingOfType("uuid.UUID")).
		RunAndReturn(func(_ context.Context, id uuid.UUID) (*entity.Note, error) {
			return &entity.Note{ID: id, UserID: userID, Title: "t", Content: "c"}, nil
		})

	note, err := fx.service.CreateNote(ctx, userID, usecase.CreateNoteInput{Title: "t", Content: "c"})
	require.NoError(t, err)
	assert.Equal(t, createdID, note.ID)
}

// Creating two notes with the same unused category name yields one category
// shared by both notes.
func TestNoteService_CreateNote_CategoryNameUpsert(t *testing.T) {
	fx := createTestNoteService(t)
	ctx := context.Background()
	userID := uuid.New()

	expectTransaction(t, fx.txManager, fx.factory)
	fx.factory.EXPECT().NewNoteRepository().Return(fx.noteRepo)
	fx.factory.EXPECT().NewCategoryRepository().Return(fx.categoryRepo)

	categories := map[string]*entity.Category{}
	fx.categoryRepo.EXPECT().
		FindOrCreate(ctx, userID, "Work").
		RunAndReturn(func(_ context.Context, owner uuid.UUID, name string) (*entity.Category, error) {
			if c, ok := categories[name]; ok {
				return c, nil
			}
			c := &entity.Category{ID: uuid.New(), UserID: owner, Name: name}
			categories[name] = c

			return c, nil
		}).
		Twice()

	stored := map[uuid.UUID]*entity.Note{}
	fx.noteRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Note")).
		RunAndReturn(func(_ context.Context, note *entity.Note) error {
			stored[note.ID] = note

			return nil
		})
	fx.noteRepo.EXPECT().
		FindByID(ctx, mock.AnythingOfType("uuid.UUID")).
		RunAndReturn(func(_ context.Context, id uuid.UUID) (*entity.Note, error) {
			note := *stored[id]
			note.Category = categories["Work"]

			return &note, nil
		})

	first, err := fx.service.CreateNote(ctx, userID, usecase.CreateNoteInput{Title: "a", Content: "x", Category: strPtr(" Work ")})
	require.NoError(t, err)
	second, err := fx.service.CreateNote(ctx, userID, usecase.CreateNoteInput{Title: "b", Content: "y", Category: strPtr("Work")})
	require.NoError(t, err)

	assert.Len(t, categories, 1)
	require.NotNil(t, first.CategoryID)
	require.NotNil(t, second.CategoryID)
	assert.Equal(t, *first.CategoryID, *second.CategoryID)
	assert.Equal(t, "Work", second.Category.Name)
}

func TestNoteService_CreateNote_TitleTooLong(t *testing.T) {
	fx := createTestNoteService(t)

	_, err := fx.service.CreateNote(context.Background(), uuid.New(), usecase.CreateNoteInput{
		Title:   strings.Repeat("t", 256),
		Content: "c",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestNoteService_CreateNote_CategoryNameTooLong(t *testing.T) {
	fx := createTestNoteService(t)
	ctx := context.Background()

	expectTransaction(t, fx.txManager, fx.factory)
	fx.factory.EXPECT().NewCategoryRepository().Return(fx.categoryRepo)

	_, err := fx.service.CreateNote(ctx, uuid.New(), usecase.CreateNoteInput{
		Title:    "t",
		Content:  "c",
		Category: strPtr(strings.Repeat("c", 101)),
	})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	fx.categoryRepo.AssertNotCalled(t, "FindOrCreate", mock.Anything, mock.Anything, mock.Anything)
}

func TestNoteService_CreateNote_ForeignCategoryID(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name     string
		category *entity.Category
		err      error
	}{
		{name: "owned by another user", category: &entity.Category{ID: uuid.New(), UserID: uuid.New()}},
		{name: "missing", err: repository.ErrCategoryNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestNoteService(t)
			expectTransaction(t, fx.txManager, fx.factory)
			fx.factory.EXPECT().NewCategoryRepository().Return(fx.categoryRepo)

			categoryID := uuid.New()
			fx.categoryRepo.EXPECT().FindByID(ctx, categoryID).Return(tt.category, tt.err)

			_, err := fx.service.CreateNote(ctx, userID, usecase.CreateNoteInput{
				Title:      "t",
				Content:    "c",
				CategoryID: &categoryID,
			})
			assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
		})
	}
}

func TestNoteService_UpdateNote_Partial(t *testing.T) {
	fx := createTestNoteService(t)
	fx.inTransaction(t, true)
	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.Note{ID: uuid.New(), UserID: userID, Title: "old", Content: "keep"}

	fx.noteRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil).Once()
	fx.noteRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Note")).
		Run(func(_ context.Context, note *entity.Note) {
			assert.Equal(t, "new", note.Title)
			assert.Equal(t, "keep", note.Content)
		}).
		Return(nil)
	fx.noteRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil).Once()

	note, err := fx.service.UpdateNote(ctx, userID, existing.ID, usecase.UpdateNoteInput{Title: strPtr("new")})
	require.NoError(t, err)
	assert.Equal(t, "new", note.Title)
}

func TestNoteService_UpdateNote_ClearCategory(t *testing.T) {
	fx := createTestNoteService(t)
	fx.inTransaction(t, true)
	ctx := context.Background()
	userID := uuid.New()
	categoryID := uuid.New()
	existing := &entity.Note{
		ID:         uuid.New(),
		UserID:     userID,
		Title:      "t",
		Content:    "c",
		CategoryID: &categoryID,
		Category:   &entity.Category{ID: categoryID, UserID: userID, Name: "Work"},
	}

	fx.noteRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	fx.noteRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Note")).
		Run(func(_ context.Context, note *entity.Note) {
			assert.Nil(t, note.CategoryID)
			assert.Nil(t, note.Category)
		}).
		Return(nil)

	_, err := fx.service.UpdateNote(ctx, userID, existing.ID, usecase.UpdateNoteInput{Category: strPtr("")})
	require.NoError(t, err)
}

func TestNoteService_UpdateNote_BlankTitle(t *testing.T) {
	fx := createTestNoteService(t)

	_, err := fx.service.UpdateNote(context.Background(), uuid.New(), uuid.New(), usecase.UpdateNoteInput{Title: strPtr("  ")})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

// A user can neither update nor delete another user's note, and a missing
// note is indistinguishable from a foreign one.
func TestNoteService_OwnerGuard(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	intruder := uuid.New()
	foreign := &entity.Note{ID: uuid.New(), UserID: owner, Title: "t", Content: "c", FileKey: "notes/x/y.png"}
	missingID := uuid.New()

	t.Run("update", func(t *testing.T) {
		fx := createTestNoteService(t)
		expectTransaction(t, fx.txManager, fx.factory)
		fx.factory.EXPECT().NewNoteRepository().Return(fx.noteRepo)
		fx.noteRepo.EXPECT().FindByID(ctx, foreign.ID).Return(foreign, nil)
		fx.noteRepo.EXPECT().FindByID(ctx, missingID).Return(nil, repository.ErrNoteNotFound)

		_, foreignErr := fx.service.UpdateNote(ctx, intruder, foreign.ID, usecase.UpdateNoteInput{Title: strPtr("pwned")})
		_, missingErr := fx.service.UpdateNote(ctx, intruder, missingID, usecase.UpdateNoteInput{Title: strPtr("pwned")})

		assert.Equal(t, domainerrors.ErrForbidden, foreignErr)
		assert.Equal(t, foreignErr, missingErr)
	})

	t.Run("delete", func(t *testing.T) {
		fx := createTestNoteService(t)
		fx.noteRepo.EXPECT().FindByID(ctx, foreign.ID).Return(foreign, nil)
		fx.noteRepo.EXPECT().FindByID(ctx, missingID).Return(nil, repository.ErrNoteNotFound)

		_, foreignErr := fx.service.DeleteNote(ctx, intruder, foreign.ID)
		_, missingErr := fx.service.DeleteNote(ctx, intruder, missingID)

		assert.Equal(t, domainerrors.ErrForbidden, foreignErr)
		assert.Equal(t, foreignErr, missingErr)
	})
}

func TestNoteService_DeleteNote_RemovesAttachment(t *testing.T) {
	fx := createTestNoteService(t)
	ctx := context.Background()
	userID := uuid.New()
	note := &entity.Note{ID: uuid.New(), UserID: userID, FileKey: "notes/n/f.pdf", FileName: "f.pdf"}

	fx.noteRepo.EXPECT().FindByID(ctx, note.ID).Return(note, nil)
	fx.noteRepo.EXPECT().Delete(ctx, note.ID).Return(nil)
	fx.storage.EXPECT().Delete(ctx, "notes/n/f.pdf").Return(errors.New("bucket offline"))

	deleted, err := fx.service.DeleteNote(ctx, userID, note.ID)
	require.NoError(t, err)
	assert.Equal(t, note.ID, deleted.ID)
}

func TestNoteService_DeleteNote_WithoutAttachment(t *testing.T) {
	fx := createTestNoteService(t)
	ctx := context.Background()
	userID := uuid.New()
	note := &entity.Note{ID: uuid.New(), UserID: userID}

	fx.noteRepo.EXPECT().FindByID(ctx, note.ID).Return(note, nil)
	fx.noteRepo.EXPECT().Delete(ctx, note.ID).Return(nil)

	_, err := fx.service.DeleteNote(ctx, userID, note.ID)
	require.NoError(t, err)
}
