// Package memory provides an in-memory token stream implementing the
// pathkit cursor interfaces. Useful for testing and for handing values
// between components without choosing a wire format.
package memory

import (
	"io"
	"sync"

	"github.com/gobeaver/pathkit"
)

// Stream is a FIFO queue of string tokens. Tokens written are read back in
// the same order. It is safe for concurrent use.
type Stream struct {
	mu     sync.Mutex
	tokens []string
	pos    int
}

var (
	_ pathkit.Reader       = (*Stream)(nil)
	_ pathkit.WriteFlusher = (*Stream)(nil)
)

// New creates a stream preloaded with tokens
func New(tokens ...string) *Stream {
	s := &Stream{}
	s.tokens = append(s.tokens, tokens...)
	return s
}

// WriteString implements pathkit.Writer
func (s *Stream) WriteString(text string, length int) error {
	if err := pathkit.CheckLength(text, length); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = append(s.tokens, text[:length])
	return nil
}

// Flush is a no-op; tokens are visible as soon as they are written
func (s *Stream) Flush() error {
	return nil
}

// ReadString implements pathkit.Reader
func (s *Stream) ReadString() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pos >= len(s.tokens) {
		return "", io.EOF
	}
	token := s.tokens[s.pos]
	s.pos++
	return token, nil
}

// Tokens returns a copy of every token written, read or not
func (s *Stream) Tokens() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.tokens))
	copy(out, s.tokens)
	return out
}

// Len returns the number of unread tokens
func (s *Stream) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tokens) - s.pos
}

// Rewind moves the read position back to the first token
func (s *Stream) Rewind() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pos = 0
}
