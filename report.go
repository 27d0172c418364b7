package pathkit

import (
	"context"
	"log/slog"
	"sync"
)

// Reporter receives non-fatal diagnostics. Implementations must not block
// the caller for long and must not panic; the result is never inspected.
type Reporter interface {
	Report(level slog.Level, msg string, stack string)
}

// ReporterFunc adapts an ordinary function to the Reporter interface
type ReporterFunc func(level slog.Level, msg string, stack string)

// Report calls f(level, msg, stack)
func (f ReporterFunc) Report(level slog.Level, msg string, stack string) {
	f(level, msg, stack)
}

// NopReporter discards every diagnostic
type NopReporter struct{}

// Report does nothing
func (NopReporter) Report(slog.Level, string, string) {}

// SlogReporter forwards diagnostics to a slog.Logger. The stack, when
// present, is attached as the "stack" attribute.
type SlogReporter struct {
	logger *slog.Logger
}

// NewSlogReporter creates a reporter writing to logger, or to slog.Default()
// when logger is nil.
func NewSlogReporter(logger *slog.Logger) *SlogReporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogReporter{logger: logger}
}

// Report logs msg at level
func (r *SlogReporter) Report(level slog.Level, msg string, stack string) {
	if stack == "" {
		r.logger.Log(context.Background(), level, msg)
		return
	}
	r.logger.Log(context.Background(), level, msg, slog.String("stack", stack))
}

func defaultReporter() Reporter {
	return NewSlogReporter(slog.Default())
}

// Entry is a diagnostic captured by a Recorder
type Entry struct {
	Level   slog.Level
	Message string
	Stack   string
}

// Recorder keeps diagnostics in memory. It is safe for concurrent use and
// is mostly useful in tests.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// Report appends the diagnostic
func (r *Recorder) Report(level slog.Level, msg string, stack string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Level: level, Message: msg, Stack: stack})
}

// Entries returns a copy of the recorded diagnostics
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of recorded diagnostics
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Reset drops all recorded diagnostics
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
}
