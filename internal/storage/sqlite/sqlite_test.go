package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/brewnote/cafe-menu/internal/models"
	"github.com/brewnote/cafe-menu/internal/storage"
)

func newTestStore(t *testing.T) (*SQLiteStore, string) {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "cafemenu-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	dbPath := filepath.Join(tempDir, "menu.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	return store, dbPath
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func TestSQLiteStore(t *testing.T) {
	store, _ := newTestStore(t)
	defer store.Close()
	ctx := context.Background()

	t.Run("fresh database is seeded", func(t *testing.T) {
		items, err := store.ListItems(ctx)
		if err != nil {
			t.Fatalf("ListItems failed: %v", err)
		}
		if len(items) != 2 {
			t.Fatalf("expected 2 seeded items, got %d", len(items))
		}
		if items[0].Name != "Espresso" || items[1].Name != "Croissant" {
			t.Errorf("unexpected seed order: %q, %q", items[0].Name, items[1].Name)
		}

		categories, err := store.ListCategories(ctx)
		if err != nil {
			t.Fatalf("ListCategories failed: %v", err)
		}
		if len(categories) != 4 || categories[0] != "Beverages" {
			t.Errorf("unexpected seeded categories: %v", categories)
		}
	})

	t.Run("create assigns length-based id", func(t *testing.T) {
		item, err := store.CreateItem(ctx, &models.ItemPatch{
			Category: strPtr("Desserts"),
			Name:     strPtr("Tiramisu"),
			Price:    floatPtr(5.0),
		})
		if err != nil {
			t.Fatalf("CreateItem failed: %v", err)
		}
		if item.ID != 3 {
			t.Errorf("expected id 3 after two seeded items, got %d", item.ID)
		}
	})

	t.Run("update merges and preserves absent fields", func(t *testing.T) {
		item, err := store.UpdateItem(ctx, 3, &models.ItemPatch{Price: floatPtr(5.5)})
		if err != nil {
			t.Fatalf("UpdateItem failed: %v", err)
		}
		if item.Price != 5.5 || item.Name != "Tiramisu" || item.Category != "Desserts" {
			t.Errorf("merge wrong: %+v", item)
		}
	})

	t.Run("update miss returns ErrItemNotFound", func(t *testing.T) {
		_, err := store.UpdateItem(ctx, 42, &models.ItemPatch{Name: strPtr("x")})
		if !errors.Is(err, storage.ErrItemNotFound) {
			t.Errorf("expected ErrItemNotFound, got %v", err)
		}
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		if err := store.DeleteItem(ctx, 3); err != nil {
			t.Fatalf("first delete failed: %v", err)
		}
		if err := store.DeleteItem(ctx, 3); err != nil {
			t.Fatalf("second delete failed: %v", err)
		}
		items, _ := store.ListItems(ctx)
		for _, item := range items {
			if item.ID == 3 {
				t.Errorf("deleted id still present: %+v", item)
			}
		}
	})

	t.Run("duplicate live ids are storable", func(t *testing.T) {
		// Drop to one item, then create: the new item gets id 2 while the
		// surviving seeded item already has id 2.
		if err := store.DeleteItem(ctx, 1); err != nil {
			t.Fatalf("DeleteItem failed: %v", err)
		}
		item, err := store.CreateItem(ctx, &models.ItemPatch{Name: strPtr("Scone")})
		if err != nil {
			t.Fatalf("CreateItem failed: %v", err)
		}
		if item.ID != 2 {
			t.Fatalf("expected reused id 2, got %d", item.ID)
		}

		items, _ := store.ListItems(ctx)
		if len(items) != 2 || items[0].ID != 2 || items[1].ID != 2 {
			t.Errorf("expected two live items with id 2, got %+v", items)
		}

		// Update touches only the oldest match.
		updated, err := store.UpdateItem(ctx, 2, &models.ItemPatch{Price: floatPtr(9.0)})
		if err != nil {
			t.Fatalf("UpdateItem failed: %v", err)
		}
		if updated.Name != "Croissant" {
			t.Errorf("expected oldest match (Croissant) updated, got %q", updated.Name)
		}
	})

	t.Run("categories", func(t *testing.T) {
		categories, err := store.AddCategory(ctx, "Salads")
		if err != nil {
			t.Fatalf("AddCategory failed: %v", err)
		}
		if categories[len(categories)-1] != "Salads" {
			t.Errorf("expected Salads appended, got %v", categories)
		}

		again, err := store.AddCategory(ctx, "Salads")
		if err != nil {
			t.Fatalf("duplicate AddCategory failed: %v", err)
		}
		if len(again) != len(categories) {
			t.Errorf("duplicate add changed list: %v", again)
		}

		if err := store.DeleteCategory(ctx, "Salads"); err != nil {
			t.Fatalf("DeleteCategory failed: %v", err)
		}
		if err := store.DeleteCategory(ctx, "Salads"); err != nil {
			t.Fatalf("repeat DeleteCategory failed: %v", err)
		}
	})
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	store, dbPath := newTestStore(t)
	ctx := context.Background()

	item, err := store.CreateItem(ctx, &models.ItemPatch{Name: strPtr("Flat White"), Price: floatPtr(4.2)})
	if err != nil {
		t.Fatalf("CreateItem failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := New(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	items, err := reopened.ListItems(ctx)
	if err != nil {
		t.Fatalf("ListItems failed: %v", err)
	}
	// Seed must not run again on reopen.
	if len(items) != 3 {
		t.Fatalf("expected 3 items after reopen, got %d", len(items))
	}
	if items[2].ID != item.ID || items[2].Name != "Flat White" {
		t.Errorf("created item not persisted: %+v", items[2])
	}
}
