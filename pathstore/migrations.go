package pathstore

import (
	"database/sql"
	"errors"
	"fmt"
)

// currentSchemaVersion is the latest schema version.
const currentSchemaVersion = 1

// Migrate runs forward migrations to bring the database schema up to date.
func (db *DB) Migrate() error {
	if _, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	version := 0
	row := db.conn.QueryRow("SELECT version FROM schema_version LIMIT 1")
	if err := row.Scan(&version); err != nil {
		// No rows means version 0 (fresh database).
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("reading schema version: %w", err)
		}
		version = 0
	}

	if version < 1 {
		if err := db.migrateV1(); err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}

	return nil
}

// SchemaVersion returns the version recorded in the database.
func (db *DB) SchemaVersion() (int, error) {
	var version int
	if err := db.conn.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version); err != nil {
		return 0, err
	}
	return version, nil
}

// migrateV1 creates the bindings table.
func (db *DB) migrateV1() error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	statements := []string{
		`CREATE TABLE IF NOT EXISTS bindings (
			name       TEXT PRIMARY KEY,
			kind       TEXT NOT NULL CHECK (kind IN ('path', 'directory')),
			path       TEXT NOT NULL,
			checksum   TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_bindings_checksum ON bindings(checksum)`,
		`DELETE FROM schema_version`,
	}
	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}

	if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", currentSchemaVersion); err != nil {
		return err
	}

	return tx.Commit()
}
