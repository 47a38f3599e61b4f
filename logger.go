package emojitext

import (
	"log/slog"

	"github.com/gogpu/emojitext/internal/log"
)

// SetLogger configures the logger for emojitext and all its sub-packages.
// By default, emojitext produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by emojitext:
//   - [slog.LevelDebug]: scan and decode diagnostics (matches, frame counts)
//   - [slog.LevelInfo]: configuration changes
//   - [slog.LevelWarn]: non-fatal degradations (decode failure, malformed configuration)
//
// Example:
//
//	emojitext.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	log.Set(l)
}

// Logger returns the current logger used by emojitext.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return log.Get()
}
