// Package pathstore persists named path bindings in SQLite.
//
// Values are stored as text exactly as held by pathkit.AbsolutePath and
// pathkit.Directory; loading them back never re-validates.
package pathstore

import (
	"errors"
	"time"

	"github.com/gobeaver/pathkit"
)

var (
	ErrNotFound         = errors.New("binding not found")
	ErrKindMismatch     = errors.New("binding has a different kind")
	ErrChecksumMismatch = errors.New("stored checksum does not match path")
	ErrEmptyName        = errors.New("binding name is empty")
)

// Kind tells whether a binding holds a file path or a directory
type Kind string

const (
	KindPath      Kind = "path"
	KindDirectory Kind = "directory"
)

// Binding is a named path stored in the database
type Binding struct {
	Name      string               `json:"name"`
	Kind      Kind                 `json:"kind"`
	Path      pathkit.AbsolutePath `json:"path"`
	Checksum  string               `json:"checksum"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// Directory returns the binding as a directory. For KindDirectory bindings
// this is the stored value unchanged.
func (b Binding) Directory() pathkit.Directory {
	return pathkit.NewDirectory(b.Path)
}
