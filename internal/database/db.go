// Package database persists the catalog layers, export snapshots and
// browser sessions in SQLite.
package database

import (
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Kreemchek/unitka20/internal/catalog"
)

//go:embed schema.sql
var schemaSQL string

// Layer names for the two independently stored catalog slices.
const (
	LayerExternal = "external"
	LayerUser     = "user"
)

// DB wraps the SQLite database
type DB struct {
	*sql.DB
}

// Open opens or creates the database
func Open(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Initialize schema
	if _, err := db.Exec(schemaSQL); err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &DB{db}, nil
}

// GetLayer returns the products persisted under a layer, in insertion order.
func (db *DB) GetLayer(layer string) ([]catalog.Product, error) {
	rows, err := db.Query(`
		SELECT name, commission, warehouse, category
		FROM products
		WHERE layer = ?
		ORDER BY position, id
	`, layer)
	if err != nil {
		return nil, fmt.Errorf("failed to read layer %s: %w", layer, err)
	}
	defer rows.Close()

	var products []catalog.Product
	for rows.Next() {
		var p catalog.Product
		if err := rows.Scan(&p.Name, &p.Commission, &p.Warehouse, &p.Category); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// ReplaceLayer atomically swaps the full contents of a layer.
func (db *DB) ReplaceLayer(layer string, products []catalog.Product) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM products WHERE layer = ?`, layer); err != nil {
		return fmt.Errorf("failed to clear layer %s: %w", layer, err)
	}

	stmt, err := tx.Prepare(`
		INSERT OR IGNORE INTO products (layer, position, name, commission, warehouse, category)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, p := range products {
		if _, err := stmt.Exec(layer, i, p.Name, p.Commission, p.Warehouse, p.Category); err != nil {
			return fmt.Errorf("failed to insert %q: %w", p.Name, err)
		}
	}

	return tx.Commit()
}

// AppendToLayer adds one product at the end of a layer. The layer's
// case-insensitive unique index rejects duplicates; the caller is expected
// to have checked the merged catalog first.
func (db *DB) AppendToLayer(layer string, p catalog.Product) error {
	var next int
	err := db.QueryRow(`
		SELECT COALESCE(MAX(position), -1) + 1 FROM products WHERE layer = ?
	`, layer).Scan(&next)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		INSERT INTO products (layer, position, name, commission, warehouse, category)
		VALUES (?, ?, ?, ?, ?, ?)
	`, layer, next, p.Name, p.Commission, p.Warehouse, p.Category)
	if err != nil {
		return fmt.Errorf("failed to append %q to layer %s: %w", p.Name, layer, err)
	}
	return nil
}

// Snapshot is one exported calculation, stored verbatim.
type Snapshot struct {
	ID        string    `json:"id"`
	Payload   string    `json:"payload"`
	CreatedAt time.Time `json:"createdAt"`
}

// SaveSnapshot stores an exported calculation payload.
func (db *DB) SaveSnapshot(id string, payload []byte) error {
	_, err := db.Exec(`
		INSERT INTO snapshots (id, payload) VALUES (?, ?)
	`, id, string(payload))
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// GetSnapshots returns the most recent snapshots, newest first.
func (db *DB) GetSnapshots(limit int) ([]Snapshot, error) {
	rows, err := db.Query(`
		SELECT id, payload, created_at
		FROM snapshots
		ORDER BY created_at DESC, id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []Snapshot
	for rows.Next() {
		var s Snapshot
		if err := rows.Scan(&s.ID, &s.Payload, &s.CreatedAt); err != nil {
			return nil, err
		}
		snapshots = append(snapshots, s)
	}
	return snapshots, rows.Err()
}
