package pathkit

import (
	"errors"
	"fmt"
	"io"
)

// Reader pulls string tokens from a serialized stream.
// ReadString returns io.EOF once the stream is exhausted and an error
// wrapping ErrNotString when the next token is of another kind.
type Reader interface {
	ReadString() (string, error)
}

// Writer pushes string tokens to a serialized stream. WriteString emits
// text[:length]; a length outside [0, len(text)] is ErrInvalidLength.
type Writer interface {
	WriteString(text string, length int) error
}

// WriteFlusher is a Writer that buffers and must be flushed
type WriteFlusher interface {
	Writer
	Flush() error
}

// CheckLength validates the length argument of Writer.WriteString.
func CheckLength(text string, length int) error {
	if length < 0 || length > len(text) {
		return fmt.Errorf("%w: %d for string of %d bytes", ErrInvalidLength, length, len(text))
	}
	return nil
}

// WritePaths writes each path in order
func WritePaths(w Writer, paths ...AbsolutePath) error {
	for _, p := range paths {
		if err := p.Write(w); err != nil {
			return err
		}
	}
	return nil
}

// ReadPaths reads paths until the reader reports io.EOF
func ReadPaths(r Reader) ([]AbsolutePath, error) {
	var paths []AbsolutePath
	for {
		var p AbsolutePath
		if err := p.Read(r); err != nil {
			if errors.Is(err, io.EOF) {
				return paths, nil
			}
			return paths, err
		}
		paths = append(paths, p)
	}
}

// WriteDirectories writes each directory in order
func WriteDirectories(w Writer, dirs ...Directory) error {
	for _, d := range dirs {
		if err := d.Write(w); err != nil {
			return err
		}
	}
	return nil
}

// ReadDirectories reads directories until the reader reports io.EOF
func ReadDirectories(r Reader) ([]Directory, error) {
	var dirs []Directory
	for {
		var d Directory
		if err := d.Read(r); err != nil {
			if errors.Is(err, io.EOF) {
				return dirs, nil
			}
			return dirs, err
		}
		dirs = append(dirs, d)
	}
}
