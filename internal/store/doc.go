// Package store provides SQLite-backed durable storage for the book catalog.
//
// The catalog is a single flat table:
//
//	book(id INTEGER PRIMARY KEY, title TEXT NOT NULL, author TEXT NOT NULL, qty INTEGER NOT NULL)
//
// # Bootstrap
//
// Open creates the table on first use and seeds it with the starter catalog
// (ids 3001-3011) in the same transaction. An existing table is left alone;
// Created reports which path was taken.
//
// # Writes
//
//   - Every mutation is a single auto-committed statement.
//   - Insert never overwrites: an id collision returns ErrDuplicateID.
//   - Update and Delete match on id and return ErrNotFound when no row matched.
//   - The id column is never written by Update.
//
// # Reads
//
// All multi-row reads are ordered by id ascending. Search SQL comes from
// internal/querysql and is always parameterized.
//
// # Database Configuration
//
//   - WAL mode
//   - synchronous=NORMAL
//   - busy_timeout=5000
//   - one open connection for the lifetime of the process
package store
