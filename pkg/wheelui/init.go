// Package wheelui is a runtime for menu-driven user interfaces on small
// displays driven by rotary encoders and a few buttons.
//
// A UI owns one event queue, one navigation stack and one display. The
// host polls input sources and calls Tick at a fixed cadence; each tick
// dispatches at most one event to the active screen and redraws it.
package wheelui

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/wheelui/pkg/wheelui/constants"
	"github.com/BrandonKowalski/wheelui/pkg/wheelui/internal"
)

// Options configures a UI. Zero values take the defaults from the
// constants package.
type Options struct {
	QueueCapacity int    // Events buffered between ticks
	StackDepth    int    // Screens that can be pushed above home
	LogPath       string // Full path for log file including filename (creates parent directories)
	LogLevel      string // Application log level; falls back to WHEELUI_LOG_LEVEL
	Debug         bool   // Log navigation diagnostics at debug level
}

func (o Options) withDefaults() Options {
	if o.QueueCapacity <= 0 {
		o.QueueCapacity = constants.QueueCapacity
	}
	if o.StackDepth <= 0 {
		o.StackDepth = constants.StackDepth
	}
	if o.LogLevel == "" {
		o.LogLevel = os.Getenv(constants.LogLevelEnvVar)
	}
	return o
}

// configureLogging applies the logging part of opts. Only the first
// LogPath takes effect for the life of the process.
func configureLogging(opts Options) {
	if opts.LogPath != "" {
		internal.SetLogPath(opts.LogPath)
	}
	internal.SetRawLogLevel(opts.LogLevel)

	if opts.Debug || constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelWarn)
	}
}

// SetLogPath sets the full path for the log file, including filename.
// Call before New to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// Close flushes and closes the log file, if any.
func Close() {
	internal.CloseLogger()
}
