// Package ctycodec encodes path streams as a cty list(string) value in
// cty's JSON serialization, for exchange with HCL-based tooling.
//
// cty normalizes strings to Unicode NFC. The writer rejects text that is
// not valid UTF-8 in NFC rather than change it.
package ctycodec

import (
	"encoding/json"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
	"golang.org/x/text/unicode/norm"

	"github.com/gobeaver/pathkit"
)

// Name is the registry key of this codec
const Name = pathkit.CodecCty

// ListType is the cty type of an encoded stream
var ListType = cty.List(cty.String)

// Codec implements pathkit.Codec
type Codec struct{}

// Name returns "cty"
func (Codec) Name() string { return Name }

// NewReader implements pathkit.Codec
func (Codec) NewReader(r io.Reader) (pathkit.Reader, error) {
	return NewReader(r), nil
}

// NewWriter implements pathkit.Codec
func (Codec) NewWriter(w io.Writer) pathkit.WriteFlusher {
	return NewWriter(w)
}

// Reader decodes one list per JSON document and yields its elements
type Reader struct {
	dec    *json.Decoder
	values []cty.Value
}

// NewReader creates a Reader over r
func NewReader(r io.Reader) *Reader {
	return &Reader{dec: json.NewDecoder(r)}
}

// ReadString implements pathkit.Reader
func (r *Reader) ReadString() (string, error) {
	for len(r.values) == 0 {
		if err := r.next(); err != nil {
			return "", err
		}
	}
	v := r.values[0]
	r.values = r.values[1:]
	if v.IsNull() || !v.IsKnown() {
		return "", fmt.Errorf("%w: null or unknown list element", pathkit.ErrNotString)
	}
	return v.AsString(), nil
}

func (r *Reader) next() error {
	var raw json.RawMessage
	if err := r.dec.Decode(&raw); err != nil {
		return err
	}
	list, err := ctyjson.Unmarshal(raw, ListType)
	if err != nil {
		return fmt.Errorf("%w: %w", pathkit.ErrNotString, err)
	}
	if list.IsNull() {
		return nil
	}
	for it := list.ElementIterator(); it.Next(); {
		_, v := it.Element()
		r.values = append(r.values, v)
	}
	return nil
}

// Writer buffers strings and writes them as one list on Flush
type Writer struct {
	w      io.Writer
	values []cty.Value
}

// NewWriter creates a Writer over w
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteString implements pathkit.Writer
func (w *Writer) WriteString(text string, length int) error {
	if err := pathkit.CheckLength(text, length); err != nil {
		return err
	}
	text = text[:length]
	if !utf8.ValidString(text) {
		return fmt.Errorf("%w: invalid UTF-8 in %q", pathkit.ErrNotSupported, text)
	}
	if !norm.NFC.IsNormalString(text) {
		return fmt.Errorf("%w: %q is not in Unicode NFC", pathkit.ErrNotSupported, text)
	}
	w.values = append(w.values, cty.StringVal(text))
	return nil
}

// Flush marshals the buffered list. Nothing is written when the buffer is
// empty.
func (w *Writer) Flush() error {
	if len(w.values) == 0 {
		return nil
	}
	data, err := ctyjson.Marshal(cty.ListVal(w.values), ListType)
	if err != nil {
		return fmt.Errorf("encoding cty list: %w", err)
	}
	w.values = nil
	data = append(data, '\n')
	_, err = w.w.Write(data)
	return err
}
