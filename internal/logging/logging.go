// Package logging configures the process-wide slog logger on a rotating file.
package logging

import (
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/hookline/hookline/internal/config"
)

const (
	// maxLogSizeMB is the size at which the log file rotates.
	maxLogSizeMB = 42
	// maxArchives is the number of rotated generations kept.
	maxArchives = 5
)

// Setup installs a text slog handler writing to a rotating file at cfg.Path
// and makes it the default logger. Verbose lowers the level to debug.
func Setup(cfg config.LogConfig, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	writer := &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    maxLogSizeMB,
		MaxBackups: maxArchives,
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
