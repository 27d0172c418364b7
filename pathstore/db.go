package pathstore

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/gobeaver/pathkit"
)

// DB wraps a sql.DB connection to the pathkit SQLite database.
type DB struct {
	conn      *sql.DB
	algorithm pathkit.ChecksumAlgorithm
}

// Config holds configuration for the store
type Config struct {
	// ChecksumAlgorithm fingerprints stored paths (default xxhash)
	ChecksumAlgorithm pathkit.ChecksumAlgorithm
}

// Open opens or creates the SQLite database at the given path.
// It creates the parent directory if it does not exist.
func Open(dbPath string, cfg ...Config) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return newDB(conn, cfg...)
}

// OpenInMemory opens an in-memory SQLite database, useful for testing.
func OpenInMemory(cfg ...Config) (*DB, error) {
	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}

	// Every pooled connection would get its own empty database.
	conn.SetMaxOpenConns(1)

	return newDB(conn, cfg...)
}

func newDB(conn *sql.DB, cfg ...Config) (*DB, error) {
	db := &DB{conn: conn, algorithm: pathkit.ChecksumXXHash}
	if len(cfg) > 0 && cfg[0].ChecksumAlgorithm != "" {
		db.algorithm = cfg[0].ChecksumAlgorithm
	}

	if _, err := pathkit.NewHasher(db.algorithm); err != nil {
		_ = conn.Close()
		return nil, err
	}

	// Run migrations on open.
	if err := db.Migrate(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Conn returns the underlying sql.DB for advanced queries.
func (db *DB) Conn() *sql.DB {
	return db.conn
}
