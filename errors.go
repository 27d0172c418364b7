package pathkit

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Common path errors
var (
	ErrNotAbsolute        = errors.New("path is not absolute")
	ErrNotString          = errors.New("token is not a string")
	ErrInvalidLength      = errors.New("invalid string length")
	ErrCodecNotRegistered = errors.New("codec not registered")
	ErrNotSupported       = errors.New("operation not supported")
)

// PathError records an error and the operation and path text that caused it
type PathError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface
func (e *PathError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *PathError) Unwrap() error {
	return e.Err
}

// IsNotAbsolute reports whether an error indicates that a path failed the
// absoluteness check
func IsNotAbsolute(err error) bool {
	return errors.Is(err, ErrNotAbsolute)
}

// ValidateAll re-checks every path and returns all failures combined, or nil
// when each path is absolute. Nothing is reported to any Reporter.
func ValidateAll(paths ...AbsolutePath) error {
	var result *multierror.Error
	for _, p := range paths {
		if err := p.Validate(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}
