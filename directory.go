package pathkit

import "database/sql/driver"

// Directory is a path known to denote a directory. Its text always ends in
// a path separator.
//
// A Directory trusts the AbsolutePath it was built from: the source has
// already gone through (or deliberately skipped) validation, so building a
// Directory never checks or reports again. The zero value behaves as the
// bare separator, the same Directory NewDirectory builds from empty text.
type Directory struct {
	text string
}

// NewDirectory copies the text of src and appends Separator unless it
// already ends in one.
func NewDirectory(src AbsolutePath) Directory {
	return Directory{text: EnsureTrailingSeparator(src.text)}
}

// String returns the directory text, trailing separator included
func (d Directory) String() string {
	if d.text == "" {
		return string(Separator)
	}
	return d.text
}

// Equal reports whether both directories hold the same text
func (d Directory) Equal(other Directory) bool {
	return d.String() == other.String()
}

// Path returns the directory text as an AbsolutePath, without validation
func (d Directory) Path() AbsolutePath {
	return AbsolutePath{text: d.String()}
}

// Read replaces the text with the next string token, normalized with
// EnsureTrailingSeparator.
func (d *Directory) Read(r Reader) error {
	text, err := r.ReadString()
	if err != nil {
		return err
	}
	d.text = EnsureTrailingSeparator(text)
	return nil
}

// Write emits the text as a single string token
func (d Directory) Write(w Writer) error {
	text := d.String()
	return w.WriteString(text, len(text))
}

// MarshalText implements encoding.TextMarshaler
func (d Directory) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Directory) UnmarshalText(text []byte) error {
	d.text = EnsureTrailingSeparator(string(text))
	return nil
}

// Value implements driver.Valuer
func (d Directory) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan implements sql.Scanner
func (d *Directory) Scan(src any) error {
	text, err := scanText("scan", src)
	if err != nil {
		return err
	}
	d.text = EnsureTrailingSeparator(text)
	return nil
}

// Checksum returns the hex digest of the directory text
func (d Directory) Checksum(algorithm ChecksumAlgorithm) (string, error) {
	return checksumText(d.String(), algorithm)
}

// Match reports whether the directory text matches a glob pattern
func (d Directory) Match(pattern string) (bool, error) {
	return matchText(d.String(), pattern)
}
