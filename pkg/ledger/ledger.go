// Package ledger is the bot's append-only memory: every reply it has
// ever posted, keyed by post id, plus per-run bookkeeping. SQLite,
// one file, schema created on first open.
package ledger

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const DefaultDBName = "wortbot.db"

type Ledger struct {
	*sql.DB
	path string
}

// openDB opens a SQLite database at the given path
func openDB(dbPath string) (*sql.DB, error) {
	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = sqlDB.Close() // Close error less important than PRAGMA error
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return sqlDB, nil
}

// Open opens or creates the ledger database. An empty path places the
// file next to the binary.
func Open(dbPath string) (*Ledger, error) {
	if dbPath == "" {
		execPath, err := os.Executable()
		if err != nil {
			return nil, fmt.Errorf("failed to get executable path: %w", err)
		}
		dbPath = filepath.Join(filepath.Dir(execPath), DefaultDBName)
	}

	sqlDB, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	l := &Ledger{
		DB:   sqlDB,
		path: dbPath,
	}

	// Auto-initialize schema if it doesn't exist
	if err := l.ensureSchemaExists(); err != nil {
		_ = l.Close() // Close error less important than schema error
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return l, nil
}

// ensureSchemaExists checks if the schema exists and initializes it if not
func (l *Ledger) ensureSchemaExists() error {
	// Check if the posts table exists (simple schema check)
	var tableName string
	err := l.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='posts'").Scan(&tableName)

	if err == sql.ErrNoRows {
		// Schema doesn't exist, initialize it
		return l.InitSchema()
	}

	if err != nil {
		return fmt.Errorf("failed to check schema: %w", err)
	}

	// Schema exists, all good
	return nil
}

// Path returns the database file path
func (l *Ledger) Path() string {
	return l.path
}

// InitSchema initializes the database schema
func (l *Ledger) InitSchema() error {
	_, err := l.Exec(schema)
	return err
}
