// Package-level configuration for structured logging.
//
// Channels log at debug level only, and only when a logger has been
// configured: SetLogger installs one, and every call site
// elsewhere in the package guards against the unconfigured (nil) case so
// that logging has no cost when nobody asked for it.

package channel

import (
	"sync"

	"github.com/joeycumines/logiface"
	islog "github.com/joeycumines/logiface-slog"
)

// builder is a shorthand for the concrete Builder type this package's
// logger is parameterised over.
type builder = logiface.Builder[*islog.Event]

var globalLogger struct {
	sync.RWMutex
	logger *logiface.Logger[*islog.Event]
}

// SetLogger installs the package-wide logger used for debug tracing of a
// Send that finds its channel closed after waiting. The select engine,
// waiter registration and notification are not logged. Passing nil disables
// logging again.
func SetLogger(l *logiface.Logger[*islog.Event]) {
	globalLogger.Lock()
	defer globalLogger.Unlock()
	globalLogger.logger = l
}

func getLogger() *logiface.Logger[*islog.Event] {
	globalLogger.RLock()
	defer globalLogger.RUnlock()
	return globalLogger.logger
}

func logDebug(msg string, fields func(*builder) *builder) {
	l := getLogger()
	if l == nil {
		return
	}
	b := l.Debug()
	if fields != nil {
		b = fields(b)
	}
	b.Log(msg)
}
