package logger

import (
	"log/slog"
	"os"
)

func Load() *slog.Logger {
	opts := &slog.HandlerOptions{}
	if os.Getenv("LOG_DEBUG") != "" {
		opts.Level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
