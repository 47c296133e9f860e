package logger

import (
	"log/slog"
	"os"
)

// Init configures the application logger based on environment and returns it.
// Development gets a verbose text handler with source locations; production
// gets JSON for structured log shipping.
func Init(environment string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	var handler slog.Handler
	if environment == "development" {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)

	// Set as default so components can log without carrying a logger around
	slog.SetDefault(logger)

	return logger
}
