// Package logging provides the verbose-mode debug log. Normal command
// output goes to the terminal through the ui package; this log records
// every external tool invocation for postmortems.
package logging

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// Discard returns a logger that drops everything, for when --verbose is off.
func Discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// Setup opens (or creates) the debug log at path and returns a JSON debug
// logger plus a cleanup func that flushes and closes the file.
func Setup(path string) (*slog.Logger, func() error, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return Discard(), func() error { return nil }, err
	}

	h := slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	})

	l := slog.New(h)
	l.Debug("logger.initialized", "path", path)
	return l, f.Close, nil
}
