package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"

	_ "github.com/mattn/go-sqlite3"

	"github.com/roach88/bookvault/internal/book"
)

//go:embed schema.sql
var schemaSQL string

// Store provides durable storage for the book catalog.
type Store struct {
	db      *sql.DB
	created bool
}

// Open creates or opens a SQLite database at the given path.
// Applies required pragmas and bootstraps the catalog automatically.
//
// The database is configured with:
//   - WAL mode
//   - NORMAL synchronous mode (balance durability/performance)
//   - 5-second busy timeout for lock contention
//
// This function is idempotent - safe to call multiple times.
func Open(ctx context.Context, path string) (*Store, error) {
	// Open database (creates file if doesn't exist)
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Verify connection works
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// One process, one operator, one connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	created, err := bootstrap(ctx, db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to bootstrap catalog: %w", err)
	}

	slog.Debug("store opened", "path", path, "created", created)
	return &Store{db: db, created: created}, nil
}

// Created reports whether Open had to create and seed the book table.
func (s *Store) Created() bool {
	return s.created
}

// Close closes the database connection.
// Should be called when the store is no longer needed.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(ctx context.Context, db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}

// bootstrap creates the book table and writes the seed catalog if the table
// does not exist yet. Returns true when it created the table.
func bootstrap(ctx context.Context, db *sql.DB) (bool, error) {
	exists, err := tableExists(ctx, db, "book")
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return false, fmt.Errorf("create table: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO book (id, title, author, qty) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return false, fmt.Errorf("prepare seed: %w", err)
	}
	defer stmt.Close()

	for _, b := range book.SeedBooks() {
		if _, err := stmt.ExecContext(ctx, b.ID, b.Title, b.Author, b.Qty); err != nil {
			return false, fmt.Errorf("seed book %d: %w", b.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit seed: %w", err)
	}

	return true, nil
}

func tableExists(ctx context.Context, db *sql.DB, name string) (bool, error) {
	var count int
	err := db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", name,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("check table %q: %w", name, err)
	}
	return count > 0, nil
}

// verifyPragma checks that a pragma is set to the expected value.
// Used for testing.
func (s *Store) verifyPragma(name, expected string) error {
	var value string
	query := fmt.Sprintf("PRAGMA %s", name)
	if err := s.db.QueryRow(query).Scan(&value); err != nil {
		return fmt.Errorf("failed to query %s: %w", name, err)
	}
	if value != expected {
		return fmt.Errorf("%s = %q, expected %q", name, value, expected)
	}
	return nil
}
