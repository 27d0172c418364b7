package pathkit

import (
	"database/sql/driver"
	"fmt"
	"log/slog"
)

// AbsolutePath is a path string expected to denote an absolute filesystem
// location.
//
// The check is advisory: NewAbsolutePath reports a path that fails it and
// still returns a value holding the text unchanged. A value therefore does
// not prove its own validity; call Validate when a hard guarantee is
// needed. The zero value holds the empty string.
//
// AbsolutePath is comparable; == and Equal compare the stored text.
type AbsolutePath struct {
	text string
}

// NewAbsolutePath wraps text verbatim. Unless WithoutValidation is given,
// text is checked for absoluteness and a failure is sent to the reporter
// at error level together with the caller's stack. Construction never
// fails.
func NewAbsolutePath(text string, opts ...Option) AbsolutePath {
	o := processOptions(opts...)
	if o.Validate && !o.Checker(text) {
		o.Reporter.Report(slog.LevelError, fmt.Sprintf("expected %s to be absolute", text), captureStack(1))
	}
	return AbsolutePath{text: text}
}

// String returns the stored text
func (p AbsolutePath) String() string {
	return p.text
}

// Equal reports whether both paths hold the same text
func (p AbsolutePath) Equal(other AbsolutePath) bool {
	return p.text == other.text
}

// IsZero reports whether p holds the empty string
func (p AbsolutePath) IsZero() bool {
	return p.text == ""
}

// Validate checks p against the platform absoluteness rule. Unlike
// NewAbsolutePath it reports nothing and returns the failure instead.
func (p AbsolutePath) Validate() error {
	if !IsAbsolute(p.text) {
		return &PathError{Op: "validate", Path: p.text, Err: ErrNotAbsolute}
	}
	return nil
}

// Read replaces the text with the next string token. The token is not
// validated.
func (p *AbsolutePath) Read(r Reader) error {
	text, err := r.ReadString()
	if err != nil {
		return err
	}
	p.text = text
	return nil
}

// Write emits the text as a single string token
func (p AbsolutePath) Write(w Writer) error {
	return w.WriteString(p.text, len(p.text))
}

// MarshalText implements encoding.TextMarshaler
func (p AbsolutePath) MarshalText() ([]byte, error) {
	return []byte(p.text), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. No validation is done.
func (p *AbsolutePath) UnmarshalText(text []byte) error {
	p.text = string(text)
	return nil
}

// Value implements driver.Valuer
func (p AbsolutePath) Value() (driver.Value, error) {
	return p.text, nil
}

// Scan implements sql.Scanner. No validation is done.
func (p *AbsolutePath) Scan(src any) error {
	text, err := scanText("scan", src)
	if err != nil {
		return err
	}
	p.text = text
	return nil
}

// Checksum returns the hex digest of the path text
func (p AbsolutePath) Checksum(algorithm ChecksumAlgorithm) (string, error) {
	return checksumText(p.text, algorithm)
}

// Match reports whether the path text matches a glob pattern. "*" does not
// cross Separator, "**" does.
func (p AbsolutePath) Match(pattern string) (bool, error) {
	return matchText(p.text, pattern)
}

func scanText(op string, src any) (string, error) {
	switch v := src.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", &PathError{Op: op, Path: fmt.Sprintf("%v", src), Err: fmt.Errorf("%w: got %T", ErrNotString, src)}
	}
}
