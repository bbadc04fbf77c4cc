package polykeymap

import (
	"log/slog"
	"os"

	"github.com/KeXu001/polykey-map/model"
)

// Logger wraps slog.Logger with polykeymap-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// LogInsert logs an insert operation.
func (l *Logger) LogInsert(path int, key model.Key, err error) {
	if err != nil {
		l.Error("insert failed",
			"path", path,
			"key", key.String(),
			"error", err,
		)
	} else {
		l.Debug("insert completed",
			"path", path,
			"key", key.String(),
		)
	}
}

// LogLink logs a link operation.
func (l *Logger) LogLink(path1 int, key1 model.Key, path2 int, key2 model.Key, err error) {
	if err != nil {
		l.Error("link failed",
			"path1", path1,
			"key1", key1.String(),
			"path2", path2,
			"key2", key2.String(),
			"error", err,
		)
	} else {
		l.Debug("link completed",
			"path1", path1,
			"key1", key1.String(),
			"path2", path2,
			"key2", key2.String(),
		)
	}
}

// LogEraseAt logs an erase performed at an iterator position. keys is the
// number of path entries the cascade removed.
func (l *Logger) LogEraseAt(keys int) {
	l.Debug("erase completed",
		"via", "iterator",
		"keys_removed", keys,
	)
}

// LogErase logs an erase operation. keys is the number of path entries the
// cascade removed.
func (l *Logger) LogErase(path int, key model.Key, keys int, err error) {
	if err != nil {
		l.Error("erase failed",
			"path", path,
			"key", key.String(),
			"error", err,
		)
	} else {
		l.Debug("erase completed",
			"path", path,
			"key", key.String(),
			"keys_removed", keys,
		)
	}
}
