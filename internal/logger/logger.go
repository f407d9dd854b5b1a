// Package logger is a thin wrapper around zerolog: a single
// package-level logger, a console writer by default, and an escape
// hatch (Disable, SetOutput) for callers embedding this module in a
// larger service.
package logger

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu  sync.RWMutex
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger()
)

// Logger returns the package-level logger. Callers in this module use
// it sparingly: only KeyGen and AggregateProofs emit Debug-level lines.
func Logger() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return &log
}

// SetOutput redirects the logger's writer, e.g. to an in-memory buffer
// in tests or to a structured JSON sink in a host service.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	log = zerolog.New(w).With().Timestamp().Logger()
}

// Disable silences the logger entirely.
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	log = zerolog.Nop()
}
