// Package sqlite implements the repository interfaces using SQLite as the storage backend.
//
// WHY SQLITE?
// SQLite is an embedded database: it lives inside your Go binary as a single file.
// No separate database server to install, configure, or manage. The only thing
// the portfolio writes is the visit log, so a single file next to the binary is
// all the storage it needs. Tests use ":memory:".
//
// WHY modernc.org/sqlite INSTEAD OF github.com/mattn/go-sqlite3?
// mattn/go-sqlite3 uses CGo (calls C code from Go), which means you need a C compiler
// installed and cross-compilation becomes painful. modernc.org/sqlite is a pure Go
// translation of the SQLite C code: no C compiler needed, works everywhere Go works.
//
// DATABASE/SQL OVERVIEW:
// Go's standard library provides "database/sql": a generic interface for SQL databases.
// It works with any database through "drivers" (SQLite, Postgres, MySQL, etc.).
// Key types:
//   - sql.DB     : a connection pool (NOT a single connection!)
//   - sql.Tx     : a transaction
//   - sql.Row    : a single result row
//   - sql.Rows   : multiple result rows (must be closed!)
//
// The pattern is always:
//  1. sql.Open(driverName, dataSourceName) → creates a pool
//  2. db.QueryContext / db.ExecContext     → runs queries
//  3. rows.Scan(&field1, &field2)          → reads results into Go variables
package sqlite

import (
	"database/sql"
	"fmt"

	// BLANK IMPORT:
	// The underscore import `_ "modernc.org/sqlite"` is a "side-effect only" import.
	// It doesn't give us any symbols to use directly. Instead, the sqlite package's
	// init() function registers itself with database/sql as a driver named "sqlite".
	// After this import, sql.Open("sqlite", ...) knows how to talk to SQLite.
	//
	// This is Go's plugin pattern: database drivers register themselves at init time.
	_ "modernc.org/sqlite"
)

// DB wraps a sql.DB connection pool and provides repository methods.
//
// WHY WRAP sql.DB IN A STRUCT?
// 1. We can attach methods to it (CreateVisit, VisitStats, etc.)
// 2. It implements the VisitRepository interface from repository.go
// 3. We control the lifecycle (New creates it, Close destroys it)
type DB struct {
	conn *sql.DB
}

// New creates a new SQLite database connection and runs migrations.
//
// dbPath examples:
//   - "data/portfolio.db"  → file-based database (persistent)
//   - ":memory:"           → in-memory database (great for tests, lost on close)
//
// CONNECTION POOL:
// sql.Open() does NOT actually open a connection: it just creates a pool manager.
// The first real connection happens when you run your first query.
// We call db.Ping() to force an immediate connection and verify it works.
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}

	// Every new connection to ":memory:" is a brand new, empty database.
	// Pinning the pool to one connection keeps the migrated schema visible
	// to every query.
	if dbPath == ":memory:" {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}

	// WAL (Write-Ahead Logging) mode:
	// Default SQLite locks the entire database during writes.
	// WAL mode allows concurrent reads WHILE a write is happening, so the
	// admin dashboard never blocks visit recording.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: setting WAL mode: %w", err)
	}

	// Writers wait up to 5s for the lock instead of failing with SQLITE_BUSY.
	if _, err := conn.Exec("PRAGMA busy_timeout=5000"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: setting busy timeout: %w", err)
	}

	db := &DB{conn: conn}

	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: running migrations: %w", err)
	}

	return db, nil
}

// Close closes the database connection pool.
func (db *DB) Close() error {
	return db.conn.Close()
}

// migrate runs all database migrations.
//
// CREATE TABLE IF NOT EXISTS is safe to run on every start: it won't error
// if the table exists.
//
// TIMESTAMPS AS INTEGERS:
// created_at is stored as Unix milliseconds (UTC). Comparing integers in
// WHERE clauses is exact, while comparing DATETIME text depends on every
// writer using the same format.
func (db *DB) migrate() error {
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS visits (
			id           TEXT PRIMARY KEY,
			visitor_hash TEXT NOT NULL,
			path         TEXT NOT NULL,
			user_agent   TEXT NOT NULL DEFAULT '',
			created_at   INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_visits_created_at ON visits(created_at);
		CREATE INDEX IF NOT EXISTS idx_visits_visitor_hash ON visits(visitor_hash);
	`)
	if err != nil {
		return fmt.Errorf("creating visits table: %w", err)
	}

	// user_agent was added after the first release; keep old files working.
	if err := db.addColumnIfNotExists("visits", "user_agent", "TEXT NOT NULL DEFAULT ''"); err != nil {
		return fmt.Errorf("adding user_agent to visits: %w", err)
	}

	return nil
}

// addColumnIfNotExists adds a column to a table only if it doesn't already exist.
// Makes ALTER TABLE migrations idempotent: safe to run multiple times.
func (db *DB) addColumnIfNotExists(table, column, definition string) error {
	var count int
	err := db.conn.QueryRow(
		`SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?`,
		table, column,
	).Scan(&count)
	if err != nil {
		return fmt.Errorf("checking column %s.%s: %w", table, column, err)
	}
	if count > 0 {
		return nil // column already exists
	}
	_, err = db.conn.Exec(fmt.Sprintf(
		`ALTER TABLE %s ADD COLUMN %s %s`, table, column, definition,
	))
	return err
}
