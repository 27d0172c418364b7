package pathkit

import (
	"fmt"
	"io"
	"sort"
	"sync"
)

// Codec creates cursors over a concrete serialization format
type Codec interface {
	// Name is the key the codec is registered under
	Name() string

	// NewReader returns a Reader pulling string tokens from r.
	NewReader(r io.Reader) (Reader, error)

	// NewWriter returns a Writer pushing string tokens to w.
	// Tokens may be buffered until Flush.
	NewWriter(w io.Writer) WriteFlusher
}

var (
	codecs     = make(map[string]Codec)
	codecMutex sync.RWMutex
)

// RegisterCodec registers a codec under its name, replacing any previous one
func RegisterCodec(c Codec) {
	codecMutex.Lock()
	defer codecMutex.Unlock()
	codecs[c.Name()] = c
}

// LookupCodec returns the codec registered under name
func LookupCodec(name string) (Codec, error) {
	codecMutex.RLock()
	c, exists := codecs[name]
	codecMutex.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrCodecNotRegistered, name)
	}

	return c, nil
}

// Codecs returns the registered codec names, sorted
func Codecs() []string {
	codecMutex.RLock()
	defer codecMutex.RUnlock()
	names := make([]string, 0, len(codecs))
	for name := range codecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Encode writes paths to w using the named codec
func Encode(w io.Writer, codec string, paths ...AbsolutePath) error {
	c, err := LookupCodec(codec)
	if err != nil {
		return err
	}
	cw := c.NewWriter(w)
	if err := WritePaths(cw, paths...); err != nil {
		return err
	}
	return cw.Flush()
}

// Decode reads every path from r using the named codec
func Decode(r io.Reader, codec string) ([]AbsolutePath, error) {
	c, err := LookupCodec(codec)
	if err != nil {
		return nil, err
	}
	cr, err := c.NewReader(r)
	if err != nil {
		return nil, err
	}
	return ReadPaths(cr)
}
