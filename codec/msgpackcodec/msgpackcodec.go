// Package msgpackcodec encodes path streams as a sequence of MessagePack
// str values. Arbitrary bytes survive the round trip.
package msgpackcodec

import (
	"bufio"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"

	"github.com/gobeaver/pathkit"
)

// Name is the registry key of this codec
const Name = pathkit.CodecMsgpack

// Codec implements pathkit.Codec
type Codec struct{}

// Name returns "msgpack"
func (Codec) Name() string { return Name }

// NewReader implements pathkit.Codec
func (Codec) NewReader(r io.Reader) (pathkit.Reader, error) {
	return NewReader(r), nil
}

// NewWriter implements pathkit.Codec
func (Codec) NewWriter(w io.Writer) pathkit.WriteFlusher {
	return NewWriter(w)
}

// Reader decodes str and bin values
type Reader struct {
	dec *msgpack.Decoder
}

// NewReader creates a Reader over r
func NewReader(r io.Reader) *Reader {
	return &Reader{dec: msgpack.NewDecoder(r)}
}

// ReadString implements pathkit.Reader
func (r *Reader) ReadString() (string, error) {
	c, err := r.dec.PeekCode()
	if err != nil {
		return "", err
	}
	if !msgpcode.IsString(c) && !msgpcode.IsBin(c) {
		return "", fmt.Errorf("%w: msgpack code=%#x", pathkit.ErrNotString, c)
	}
	return r.dec.DecodeString()
}

// Writer encodes each string as a msgpack str value
type Writer struct {
	bw  *bufio.Writer
	enc *msgpack.Encoder
}

// NewWriter creates a Writer over w. Call Flush when done.
func NewWriter(w io.Writer) *Writer {
	bw := bufio.NewWriter(w)
	return &Writer{bw: bw, enc: msgpack.NewEncoder(bw)}
}

// WriteString implements pathkit.Writer
func (w *Writer) WriteString(text string, length int) error {
	if err := pathkit.CheckLength(text, length); err != nil {
		return err
	}
	return w.enc.EncodeString(text[:length])
}

// Flush writes any buffered output
func (w *Writer) Flush() error {
	return w.bw.Flush()
}
