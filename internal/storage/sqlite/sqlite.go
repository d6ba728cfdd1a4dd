// Package sqlite provides a SQLite-backed implementation of the
// storage.Store interface, for deployments that want the menu to survive
// restarts.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/brewnote/cafe-menu/internal/models"
	"github.com/brewnote/cafe-menu/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a SQLiteStore at the given database path. It creates parent
// directories, runs migrations, and seeds the default menu on first use.
func New(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.seed(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to seed menu: %w", err)
	}
	return s, nil
}

// seed inserts the default menu exactly once per database file.
func (s *SQLiteStore) seed() error {
	var v string
	err := s.db.QueryRow("SELECT value FROM meta WHERE key = 'seeded'").Scan(&v)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, item := range storage.SeedItems() {
		_, err = tx.Exec(
			"INSERT INTO menu_items (id, category, name, price, description, image_url) VALUES (?, ?, ?, ?, ?, ?)",
			item.ID, item.Category, item.Name, item.Price, item.Description, item.ImageURL,
		)
		if err != nil {
			return err
		}
	}
	for _, name := range storage.SeedCategories() {
		if _, err = tx.Exec("INSERT INTO categories (name) VALUES (?)", name); err != nil {
			return err
		}
	}
	if _, err = tx.Exec("INSERT INTO meta (key, value) VALUES ('seeded', '1')"); err != nil {
		return err
	}
	return tx.Commit()
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ListItems returns all menu items in insertion order.
func (s *SQLiteStore) ListItems(ctx context.Context) ([]models.MenuItem, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, category, name, price, description, image_url FROM menu_items ORDER BY seq",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	var items []models.MenuItem
	for rows.Next() {
		var item models.MenuItem
		if err := rows.Scan(&item.ID, &item.Category, &item.Name, &item.Price, &item.Description, &item.ImageURL); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}
	return items, nil
}

// ListCategories returns the category labels in insertion order.
func (s *SQLiteStore) ListCategories(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT name FROM categories ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}
	return categories, nil
}

// CreateItem appends a new item. The count read and the insert share a
// transaction so concurrent creates cannot observe the same length.
func (s *SQLiteStore) CreateItem(ctx context.Context, patch *models.ItemPatch) (*models.MenuItem, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM menu_items").Scan(&count); err != nil {
		return nil, fmt.Errorf("failed to count items: %w", err)
	}

	item := models.MenuItem{ID: count + 1}
	patch.Apply(&item)

	_, err = tx.ExecContext(ctx,
		"INSERT INTO menu_items (id, category, name, price, description, image_url) VALUES (?, ?, ?, ?, ?, ?)",
		item.ID, item.Category, item.Name, item.Price, item.Description, item.ImageURL,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert item: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &item, nil
}

// UpdateItem merges the patch into the first (oldest) item with a matching
// id and returns the merged record.
func (s *SQLiteStore) UpdateItem(ctx context.Context, id int, patch *models.ItemPatch) (*models.MenuItem, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var seq int
	var item models.MenuItem
	err = tx.QueryRowContext(ctx,
		"SELECT seq, id, category, name, price, description, image_url FROM menu_items WHERE id = ? ORDER BY seq LIMIT 1",
		id,
	).Scan(&seq, &item.ID, &item.Category, &item.Name, &item.Price, &item.Description, &item.ImageURL)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	patch.Apply(&item)

	_, err = tx.ExecContext(ctx,
		"UPDATE menu_items SET id = ?, category = ?, name = ?, price = ?, description = ?, image_url = ? WHERE seq = ?",
		item.ID, item.Category, item.Name, item.Price, item.Description, item.ImageURL, seq,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &item, nil
}

// DeleteItem removes every item with the given id. Absent ids are a no-op.
func (s *SQLiteStore) DeleteItem(ctx context.Context, id int) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM menu_items WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}

// AddCategory appends a label unless it is already present.
func (s *SQLiteStore) AddCategory(ctx context.Context, name string) ([]string, error) {
	_, err := s.db.ExecContext(ctx, "INSERT OR IGNORE INTO categories (name) VALUES (?)", name)
	if err != nil {
		return nil, fmt.Errorf("failed to insert category: %w", err)
	}
	return s.ListCategories(ctx)
}

// DeleteCategory removes a label if present.
func (s *SQLiteStore) DeleteCategory(ctx context.Context, name string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM categories WHERE name = ?", name); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}
