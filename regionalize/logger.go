package regionalize

import (
	"log"
	"os"
)

// Logger receives non-fatal progress and warning reports from Run. The
// only thing Run ever logs is a warning that a surviving region's density
// fell below the configured threshold after merging or pruning — a
// non-fatal condition the caller may want surfaced but that never fails
// the run.
type Logger interface {
	Warnf(format string, args ...any)
}

// StdLogger is a Logger backed by the standard library's *log.Logger.
type StdLogger struct {
	*log.Logger
}

// NewStdLogger returns a StdLogger writing to os.Stderr with a
// "regionalize: " prefix.
func NewStdLogger() *StdLogger {
	return &StdLogger{log.New(os.Stderr, "regionalize: ", log.LstdFlags)}
}

// Warnf logs a formatted warning line.
func (l *StdLogger) Warnf(format string, args ...any) {
	l.Printf("WARN "+format, args...)
}

// noopLogger discards every warning; used when Run is called with a nil
// Logger.
type noopLogger struct{}

func (noopLogger) Warnf(string, ...any) {}
