package api

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"notes/internal/domain/entity"
	domainerrors "notes/internal/domain/errors"
	"notes/internal/domain/repository"

	"github.com/google/uuid"
)

// memStore is an in-memory stand-in for the relational store that enforces
// the same uniqueness rules as the database indexes.
type memStore struct {
	mu         sync.Mutex
	calls      int
	clock      time.Time
	users      map[uuid.UUID]*entity.User
	notes      map[uuid.UUID]*entity.Note
	categories map[uuid.UUID]*entity.Category
}

func newMemStore() *memStore {
	return &memStore{
		clock:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		users:      map[uuid.UUID]*entity.User{},
		notes:      map[uuid.UUID]*entity.Note{},
		categories: map[uuid.UUID]*entity.Category{},
	}
}

// Calls reports how many repository methods have been invoked.
func (s *memStore) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.calls
}

func (s *memStore) enter() func() {
	s.mu.Lock()
	s.calls++

	return s.mu.Unlock
}

func (s *memStore) tick() time.Time {
	s.clock = s.clock.Add(time.Second)

	return s.clock
}

func (s *memStore) Users() repository.UserRepository         { return memUserRepo{s} }
func (s *memStore) Notes() repository.NoteRepository         { return memNoteRepo{s} }
func (s *memStore) Categories() repository.CategoryRepository { return memCategoryRepo{s} }

// Execute runs fn without isolation; tests never need a rollback.
func (s *memStore) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(memFactory{s})
}

type memFactory struct{ s *memStore }

func (f memFactory) NewUserRepository() repository.UserRepository         { return f.s.Users() }
func (f memFactory) NewNoteRepository() repository.NoteRepository         { return f.s.Notes() }
func (f memFactory) NewCategoryRepository() repository.CategoryRepository { return f.s.Categories() }

type memUserRepo struct{ s *memStore }

func (r memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	defer r.s.enter()()
	if u, ok := r.s.users[id]; ok {
		c := *u

		return &c, nil
	}

	return nil, repository.ErrUserNotFound
}

func (r memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	defer r.s.enter()()
	for _, u := range r.s.users {
		if u.Email == email {
			c := *u

			return &c, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r memUserRepo) Create(_ context.Context, user *entity.User) error {
	defer r.s.enter()()
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return domainerrors.ErrUserAlreadyExists
		}
	}
	user.CreatedAt = r.s.tick()
	user.UpdatedAt = user.CreatedAt
	c := *user
	r.s.users[user.ID] = &c

	return nil
}

type memNoteRepo struct{ s *memStore }

func (r memNoteRepo) load(n *entity.Note) *entity.Note {
	c := *n
	if c.CategoryID != nil {
		if cat, ok := r.s.categories[*c.CategoryID]; ok {
			cc := *cat
			c.Category = &cc
		}
	}

	return &c
}

func (r memNoteRepo) Create(_ context.Context, note *entity.Note) error {
	defer r.s.enter()()
	note.CreatedAt = r.s.tick()
	note.UpdatedAt = note.CreatedAt
	c := *note
	c.Category = nil
	r.s.notes[note.ID] = &c

	return nil
}

func (r memNoteRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Note, error) {
	defer r.s.enter()()
	if n, ok := r.s.notes[id]; ok {
		return r.load(n), nil
	}

	return nil, repository.ErrNoteNotFound
}

func (r memNoteRepo) ListByUser(_ context.Context, userID uuid.UUID, filter entity.NoteFilter) ([]*entity.Note, error) {
	defer r.s.enter()()
	notes := []*entity.Note{}
	search := strings.ToLower(filter.Search)
	for _, n := range r.s.notes {
		if n.UserID != userID {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(n.Title), search) && !strings.Contains(strings.ToLower(n.Content), search) {
			continue
		}
		if filter.CategoryID != nil && (n.CategoryID == nil || *n.CategoryID != *filter.CategoryID) {
			continue
		}
		loaded := r.load(n)
		if filter.CategoryName != "" && (loaded.Category == nil || loaded.Category.Name != filter.CategoryName) {
			continue
		}
		notes = append(notes, loaded)
	}
	slices.SortFunc(notes, func(a, b *entity.Note) int { return b.CreatedAt.Compare(a.CreatedAt) })

	return notes, nil
}

func (r memNoteRepo) Update(_ context.Context, note *entity.Note) error {
	defer r.s.enter()()
	if _, ok := r.s.notes[note.ID]; !ok {
		return repository.ErrNoteNotFound
	}
	note.UpdatedAt = r.s.tick()
	c := *note
	c.Category = nil
	r.s.notes[note.ID] = &c

	return nil
}

func (r memNoteRepo) Delete(_ context.Context, id uuid.UUID) error {
	defer r.s.enter()()
	if _, ok := r.s.notes[id]; !ok {
		return repository.ErrNoteNotFound
	}
	delete(r.s.notes, id)

	return nil
}

type memCategoryRepo struct{ s *memStore }

func (r memCategoryRepo) findByName(userID uuid.UUID, name string) *entity.Category {
	for _, c := range r.s.categories {
		if c.UserID == userID && c.Name == name {
			return c
		}
	}

	return nil
}

func (r memCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	defer r.s.enter()()
	if r.findByName(category.UserID, category.Name) != nil {
		return domainerrors.ErrCategoryAlreadyExists
	}
	category.CreatedAt = r.s.tick()
	category.UpdatedAt = category.CreatedAt
	c := *category
	r.s.categories[category.ID] = &c

	return nil
}

func (r memCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	defer r.s.enter()()
	if c, ok := r.s.categories[id]; ok {
		cc := *c

		return &cc, nil
	}

	return nil, repository.ErrCategoryNotFound
}

func (r memCategoryRepo) FindByName(_ context.Context, userID uuid.UUID, name string) (*entity.Category, error) {
	defer r.s.enter()()
	if c := r.findByName(userID, name); c != nil {
		cc := *c

		return &cc, nil
	}

	return nil, repository.ErrCategoryNotFound
}

func (r memCategoryRepo) FindOrCreate(_ context.Context, userID uuid.UUID, name string) (*entity.Category, error) {
	defer r.s.enter()()
	c := r.findByName(userID, name)
	if c == nil {
		now := r.s.tick()
		c = &entity.Category{ID: uuid.New(), UserID: userID, Name: name, CreatedAt: now, UpdatedAt: now}
		r.s.categories[c.ID] = c
	}
	cc := *c

	return &cc, nil
}

func (r memCategoryRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	defer r.s.enter()()
	categories := []*entity.Category{}
	for _, c := range r.s.categories {
		if c.UserID != userID {
			continue
		}
		cc := *c
		for _, n := range r.s.notes {
			if n.CategoryID != nil && *n.CategoryID == c.ID {
				cc.NoteCount++
			}
		}
		categories = append(categories, &cc)
	}
	slices.SortFunc(categories, func(a, b *entity.Category) int { return strings.Compare(a.Name, b.Name) })

	return categories, nil
}
