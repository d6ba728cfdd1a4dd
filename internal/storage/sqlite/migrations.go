package sqlite

import "database/sql"

// schema sets up the menu tables. Statements run on startup and are safe to
// re-run.
//
// Items are keyed by seq (insertion order), not by their public id: the id
// sequence the admin API exposes is length-based and can repeat after
// deletions, so id cannot be a primary key.
const schema = `
CREATE TABLE IF NOT EXISTS menu_items (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    id INTEGER NOT NULL,
    category TEXT NOT NULL DEFAULT '',
    name TEXT NOT NULL DEFAULT '',
    price REAL NOT NULL DEFAULT 0,
    description TEXT NOT NULL DEFAULT '',
    image_url TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_menu_items_id ON menu_items(id);

CREATE TABLE IF NOT EXISTS categories (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS meta (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
