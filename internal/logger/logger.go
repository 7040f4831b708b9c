// Package logger provides the process-wide structured logger and
// component-scoped sub-loggers.
package logger

import (
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	mu   sync.Mutex
	root = log.NewWithOptions(os.Stderr, log.Options{
		Level:           log.InfoLevel,
		ReportTimestamp: true,
		Prefix:          "tick",
	})
)

// SetDebug switches the root logger between info and debug level.
func SetDebug(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	if enabled {
		root.SetLevel(log.DebugLevel)
	} else {
		root.SetLevel(log.InfoLevel)
	}
}

// WithField returns a logger carrying a single structured field.
func WithField(key string, value interface{}) *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	return root.With(key, value)
}
