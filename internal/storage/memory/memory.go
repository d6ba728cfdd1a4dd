// Package memory provides an in-memory implementation of the storage.Store
// interface. State lives for the life of the process and resets on restart.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/brewnote/cafe-menu/internal/models"
	"github.com/brewnote/cafe-menu/internal/storage"
)

// Ensure MemoryStore implements storage.Store
var _ storage.Store = (*MemoryStore)(nil)

// MemoryStore implements storage.Store with plain slices.
//
// Go handlers run on separate goroutines, so unlike the single-threaded
// server this replaces, every read-modify-write here must hold the mutex for
// its full duration: CreateItem's length-based id assignment and
// UpdateItem's locate-then-merge are both two-step sequences that must not
// interleave.
type MemoryStore struct {
	mu         sync.Mutex
	items      []models.MenuItem
	categories []string
}

// New creates a MemoryStore seeded with the default café menu.
func New() *MemoryStore {
	return &MemoryStore{
		items:      storage.SeedItems(),
		categories: storage.SeedCategories(),
	}
}

// NewEmpty creates a MemoryStore with no items or categories.
func NewEmpty() *MemoryStore {
	return &MemoryStore{}
}

// ListItems returns a copy of all items in insertion order.
func (s *MemoryStore) ListItems(ctx context.Context) ([]models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.items), nil
}

// ListCategories returns a copy of the category labels.
func (s *MemoryStore) ListCategories(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.categories), nil
}

// CreateItem appends a new item. The id is the live item count plus one,
// applied before the patch so a caller-supplied id wins.
func (s *MemoryStore) CreateItem(ctx context.Context, patch *models.ItemPatch) (*models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := models.MenuItem{ID: len(s.items) + 1}
	patch.Apply(&item)
	s.items = append(s.items, item)
	return &item, nil
}

// UpdateItem merges the patch into the first item with a matching id.
func (s *MemoryStore) UpdateItem(ctx context.Context, id int, patch *models.ItemPatch) (*models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			patch.Apply(&s.items[i])
			item := s.items[i]
			return &item, nil
		}
	}
	return nil, storage.ErrItemNotFound
}

// DeleteItem removes every item with the given id. Absent ids are a no-op.
func (s *MemoryStore) DeleteItem(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = slices.DeleteFunc(s.items, func(item models.MenuItem) bool {
		return item.ID == id
	})
	return nil
}

// AddCategory appends a label unless it is already present.
func (s *MemoryStore) AddCategory(ctx context.Context, name string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !slices.Contains(s.categories, name) {
		s.categories = append(s.categories, name)
	}
	return slices.Clone(s.categories), nil
}

// DeleteCategory removes a label if present.
func (s *MemoryStore) DeleteCategory(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.categories = slices.DeleteFunc(s.categories, func(c string) bool {
		return c == name
	})
	return nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}
