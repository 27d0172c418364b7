// Package jsoncodec encodes path streams as JSON strings.
//
// The writer emits one JSON string per line. The reader accepts any
// sequence of JSON strings and arrays of strings, so both
//
//	"/a"
//	"/b"
//
// and ["/a", "/b"] decode to the same two paths.
package jsoncodec

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/gobeaver/pathkit"
)

// Name is the registry key of this codec
const Name = pathkit.CodecJSON

// Codec implements pathkit.Codec
type Codec struct{}

// Name returns "json"
func (Codec) Name() string { return Name }

// NewReader implements pathkit.Codec
func (Codec) NewReader(r io.Reader) (pathkit.Reader, error) {
	return NewReader(r), nil
}

// NewWriter implements pathkit.Codec
func (Codec) NewWriter(w io.Writer) pathkit.WriteFlusher {
	return NewWriter(w)
}

// Reader pulls strings from a JSON token stream
type Reader struct {
	dec *json.Decoder
}

// NewReader creates a Reader over r
func NewReader(r io.Reader) *Reader {
	return &Reader{dec: json.NewDecoder(r)}
}

// ReadString implements pathkit.Reader. Array delimiters are skipped.
func (r *Reader) ReadString() (string, error) {
	for {
		tok, err := r.dec.Token()
		if err != nil {
			return "", err
		}
		switch v := tok.(type) {
		case string:
			return v, nil
		case json.Delim:
			if v == '[' || v == ']' {
				continue
			}
			return "", fmt.Errorf("%w: unexpected %s", pathkit.ErrNotString, v)
		default:
			return "", fmt.Errorf("%w: got %T", pathkit.ErrNotString, tok)
		}
	}
}

// Writer emits one JSON string per line
type Writer struct {
	bw  *bufio.Writer
	enc *json.Encoder
}

// NewWriter creates a Writer over w. Call Flush when done.
func NewWriter(w io.Writer) *Writer {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	return &Writer{bw: bw, enc: enc}
}

// WriteString implements pathkit.Writer. JSON strings cannot carry invalid
// UTF-8, so such text is rejected with ErrNotSupported.
func (w *Writer) WriteString(text string, length int) error {
	if err := pathkit.CheckLength(text, length); err != nil {
		return err
	}
	text = text[:length]
	if !utf8.ValidString(text) {
		return fmt.Errorf("%w: invalid UTF-8 in %q", pathkit.ErrNotSupported, text)
	}
	return w.enc.Encode(text)
}

// Flush writes any buffered output
func (w *Writer) Flush() error {
	return w.bw.Flush()
}
