// Package constants defines shared defaults, reserved ids and environment
// variable names used throughout the wheelui runtime.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// LogLevelEnvVar selects the application log level ("debug", "info", ...).
const LogLevelEnvVar = "WHEELUI_LOG_LEVEL"

// ProfileEnvVar points the simulator at a device profile when no flag is given.
const ProfileEnvVar = "WHEELUI_PROFILE"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Default capacities. Both are fixed once a UI is constructed.
const (
	QueueCapacity = 8 // Events buffered between ticks
	StackDepth    = 4 // Screens that can be pushed above home
)

// Default input timing.
const (
	DebounceWindow = 100 * time.Millisecond  // Raw transitions ignored after an edge
	ClickThreshold = 1000 * time.Millisecond // Longer presses are holds
	TickPeriod     = 16 * time.Millisecond   // ~60 ticks per second
)

// Default menu and monitor metrics, in pixels.
const (
	DefaultRowHeight int16 = 10
	DefaultPadding   int16 = 2
)
