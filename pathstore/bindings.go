package pathstore

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gobeaver/pathkit"
)

// PutPath stores p under name, replacing any existing binding.
func (db *DB) PutPath(ctx context.Context, name string, p pathkit.AbsolutePath) error {
	return db.put(ctx, name, KindPath, p)
}

// PutDirectory stores d under name, replacing any existing binding.
func (db *DB) PutDirectory(ctx context.Context, name string, d pathkit.Directory) error {
	return db.put(ctx, name, KindDirectory, d)
}

// storedValue is implemented by pathkit.AbsolutePath and pathkit.Directory.
type storedValue interface {
	driver.Valuer
	fmt.Stringer
}

func (db *DB) put(ctx context.Context, name string, kind Kind, v storedValue) error {
	if name == "" {
		return ErrEmptyName
	}

	sum, err := checksum(db.algorithm, v.String())
	if err != nil {
		return err
	}

	_, err = db.conn.ExecContext(ctx,
		`INSERT INTO bindings (name, kind, path, checksum, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			kind = excluded.kind,
			path = excluded.path,
			checksum = excluded.checksum,
			updated_at = excluded.updated_at`,
		name, string(kind), v, sum, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("storing %s: %w", name, err)
	}
	return nil
}

// Get returns the binding stored under name.
func (db *DB) Get(ctx context.Context, name string) (*Binding, error) {
	row := db.conn.QueryRowContext(ctx,
		"SELECT name, kind, path, checksum, updated_at FROM bindings WHERE name = ?", name)
	b, err := scanBinding(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, err
	}
	if err := verify(b); err != nil {
		return nil, err
	}
	return b, nil
}

// GetPath returns the path stored under name. Directory bindings are
// rejected with ErrKindMismatch.
func (db *DB) GetPath(ctx context.Context, name string) (pathkit.AbsolutePath, error) {
	b, err := db.Get(ctx, name)
	if err != nil {
		return pathkit.AbsolutePath{}, err
	}
	if b.Kind != KindPath {
		return pathkit.AbsolutePath{}, fmt.Errorf("%w: %s is a %s", ErrKindMismatch, name, b.Kind)
	}
	return b.Path, nil
}

// GetDirectory returns the directory stored under name. Path bindings are
// rejected with ErrKindMismatch.
func (db *DB) GetDirectory(ctx context.Context, name string) (pathkit.Directory, error) {
	b, err := db.Get(ctx, name)
	if err != nil {
		return pathkit.Directory{}, err
	}
	if b.Kind != KindDirectory {
		return pathkit.Directory{}, fmt.Errorf("%w: %s is a %s", ErrKindMismatch, name, b.Kind)
	}
	return b.Directory(), nil
}

// Delete removes the binding stored under name.
func (db *DB) Delete(ctx context.Context, name string) error {
	result, err := db.conn.ExecContext(ctx, "DELETE FROM bindings WHERE name = ?", name)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return nil
}

// List returns every binding ordered by name. Each row is verified as in
// Get; the first tampered row fails the whole listing.
func (db *DB) List(ctx context.Context) ([]Binding, error) {
	rows, err := db.conn.QueryContext(ctx,
		"SELECT name, kind, path, checksum, updated_at FROM bindings ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bindings []Binding
	for rows.Next() {
		b, err := scanBinding(rows)
		if err != nil {
			return nil, err
		}
		if err := verify(b); err != nil {
			return nil, err
		}
		bindings = append(bindings, *b)
	}
	return bindings, rows.Err()
}

// Find returns the bindings whose stored text matches a glob pattern,
// ordered by name.
func (db *DB) Find(ctx context.Context, pattern string) ([]Binding, error) {
	sel, err := pathkit.Glob(pattern)
	if err != nil {
		return nil, err
	}
	return db.Select(ctx, sel)
}

// Select returns the bindings whose stored path is matched by sel, ordered
// by name. A nil selector matches every binding.
func (db *DB) Select(ctx context.Context, sel pathkit.Selector) ([]Binding, error) {
	if sel == nil {
		sel = pathkit.All()
	}
	all, err := db.List(ctx)
	if err != nil {
		return nil, err
	}

	var matched []Binding
	for _, b := range all {
		if sel.Match(b.Path) {
			matched = append(matched, b)
		}
	}
	return matched, nil
}

func checksum(algorithm pathkit.ChecksumAlgorithm, text string) (string, error) {
	sum, err := pathkit.NewAbsolutePath(text, pathkit.WithoutValidation()).Checksum(algorithm)
	if err != nil {
		return "", err
	}
	return string(algorithm) + ":" + sum, nil
}

// verify recomputes the checksum with the algorithm recorded in the row,
// so rows written under another configuration still verify.
func verify(b *Binding) error {
	algorithm, _, ok := strings.Cut(b.Checksum, ":")
	if !ok {
		return fmt.Errorf("%w: %s", ErrChecksumMismatch, b.Name)
	}
	want, err := checksum(pathkit.ChecksumAlgorithm(algorithm), b.Path.String())
	if err != nil {
		return err
	}
	if b.Checksum != want {
		return fmt.Errorf("%w: %s", ErrChecksumMismatch, b.Name)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBinding(row rowScanner) (*Binding, error) {
	var b Binding
	var kind, updatedAt string
	if err := row.Scan(&b.Name, &kind, &b.Path, &b.Checksum, &updatedAt); err != nil {
		return nil, err
	}
	b.Kind = Kind(kind)
	t, err := time.Parse(time.RFC3339Nano, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("binding %s: parsing updated_at: %w", b.Name, err)
	}
	b.UpdatedAt = t
	return &b, nil
}
