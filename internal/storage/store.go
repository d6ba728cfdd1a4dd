// Package storage provides abstractions for menu data storage.
package storage

import (
	"context"
	"errors"

	"github.com/brewnote/cafe-menu/internal/models"
)

// ErrItemNotFound is returned when an update targets an id no live item has.
var ErrItemNotFound = errors.New("item not found")

// Store defines the interface for menu storage operations.
// This abstraction allows swapping backends (in-memory, SQLite) without
// changing the handlers.
//
// Semantics every implementation must preserve:
//   - Items keep stable insertion order.
//   - CreateItem assigns id = live item count + 1, then applies the patch,
//     so a caller-supplied id wins. The id sequence is NOT monotonic across
//     deletes; duplicate live ids are possible and must be storable.
//   - UpdateItem merges into the first item whose id matches exactly and
//     returns ErrItemNotFound on a miss.
//   - DeleteItem removes every item matching the id and succeeds whether or
//     not anything was removed.
//   - AddCategory is idempotent on duplicates; DeleteCategory is a silent
//     no-op on absence.
type Store interface {
	// ListItems returns all menu items in insertion order.
	ListItems(ctx context.Context) ([]models.MenuItem, error)

	// ListCategories returns the category labels in insertion order.
	ListCategories(ctx context.Context) ([]string, error)

	// CreateItem appends a new item built from the patch and returns the
	// stored record.
	CreateItem(ctx context.Context, patch *models.ItemPatch) (*models.MenuItem, error)

	// UpdateItem merges the patch into the item with the given id and
	// returns the merged record, or ErrItemNotFound.
	UpdateItem(ctx context.Context, id int, patch *models.ItemPatch) (*models.MenuItem, error)

	// DeleteItem removes all items with the given id. Deleting an absent id
	// is not an error.
	DeleteItem(ctx context.Context, id int) error

	// AddCategory appends a category label if not already present and
	// returns the resulting list.
	AddCategory(ctx context.Context, name string) ([]string, error)

	// DeleteCategory removes a category label if present.
	DeleteCategory(ctx context.Context, name string) error

	// Close releases any resources held by the store.
	Close() error
}

// SeedItems returns the menu the café ships with on a fresh store.
func SeedItems() []models.MenuItem {
	return []models.MenuItem{
		{
			ID:          1,
			Category:    "Beverages",
			Name:        "Espresso",
			Price:       3.50,
			Description: "Rich and bold single shot espresso",
		},
		{
			ID:          2,
			Category:    "Pastries",
			Name:        "Croissant",
			Price:       3.00,
			Description: "Buttery, flaky French-style croissant",
		},
	}
}

// SeedCategories returns the initial category labels.
func SeedCategories() []string {
	return []string{"Beverages", "Pastries", "Sandwiches", "Desserts"}
}
