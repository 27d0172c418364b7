// Package yamlcodec encodes path streams as YAML sequences of strings.
package yamlcodec

import (
	"fmt"
	"io"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/gobeaver/pathkit"
)

// Name is the registry key of this codec
const Name = pathkit.CodecYAML

const strTag = "!!str"

// Codec implements pathkit.Codec
type Codec struct{}

// Name returns "yaml"
func (Codec) Name() string { return Name }

// NewReader implements pathkit.Codec
func (Codec) NewReader(r io.Reader) (pathkit.Reader, error) {
	return NewReader(r), nil
}

// NewWriter implements pathkit.Codec
func (Codec) NewWriter(w io.Writer) pathkit.WriteFlusher {
	return NewWriter(w)
}

// Reader pulls strings from a stream of YAML documents. Each document must
// be a string scalar or a sequence of string scalars.
type Reader struct {
	dec     *yaml.Decoder
	pending []*yaml.Node
}

// NewReader creates a Reader over r
func NewReader(r io.Reader) *Reader {
	return &Reader{dec: yaml.NewDecoder(r)}
}

// ReadString implements pathkit.Reader
func (r *Reader) ReadString() (string, error) {
	for len(r.pending) == 0 {
		var doc yaml.Node
		if err := r.dec.Decode(&doc); err != nil {
			return "", err
		}
		if len(doc.Content) == 0 {
			continue
		}
		root := doc.Content[0]
		switch root.Kind {
		case yaml.SequenceNode:
			r.pending = append(r.pending, root.Content...)
		case yaml.ScalarNode:
			r.pending = append(r.pending, root)
		default:
			return "", fmt.Errorf("%w: line %d: expected scalar or sequence", pathkit.ErrNotString, root.Line)
		}
	}

	node := r.pending[0]
	r.pending = r.pending[1:]
	if node.Kind != yaml.ScalarNode || node.ShortTag() != strTag {
		return "", fmt.Errorf("%w: line %d: got %s", pathkit.ErrNotString, node.Line, node.ShortTag())
	}
	return node.Value, nil
}

// Writer buffers strings and emits them as one YAML sequence document on
// Flush. Values that would otherwise resolve to another type are quoted.
type Writer struct {
	w     io.Writer
	items []*yaml.Node
}

// NewWriter creates a Writer over w
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteString implements pathkit.Writer. Invalid UTF-8 is rejected with
// ErrNotSupported.
func (w *Writer) WriteString(text string, length int) error {
	if err := pathkit.CheckLength(text, length); err != nil {
		return err
	}
	text = text[:length]
	if !utf8.ValidString(text) {
		return fmt.Errorf("%w: invalid UTF-8 in %q", pathkit.ErrNotSupported, text)
	}
	w.items = append(w.items, &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   strTag,
		Value: text,
	})
	return nil
}

// Flush encodes the buffered strings as a sequence document. Nothing is
// written when the buffer is empty.
func (w *Writer) Flush() error {
	if len(w.items) == 0 {
		return nil
	}
	seq := &yaml.Node{
		Kind:    yaml.SequenceNode,
		Tag:     "!!seq",
		Content: w.items,
	}
	enc := yaml.NewEncoder(w.w)
	enc.SetIndent(2)
	if err := enc.Encode(seq); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	w.items = nil
	return enc.Close()
}
