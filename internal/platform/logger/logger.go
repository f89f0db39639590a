package logger

import (
	"log/slog"
	"os"
)

// New returns the process logger: slog text output on stdout. Level defaults
// to info; KINSHIP_LOG_LEVEL=debug surfaces the silent no-op paths.
func New() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("KINSHIP_LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
