package wheelui

import (
	"errors"
	"fmt"
)

// Sentinel errors for platform setup. The dispatch core itself never
// returns errors; it drops what it cannot handle.
var (
	// ErrUnknownDevice indicates a profile referenced an input device or
	// key that the platform could not resolve.
	ErrUnknownDevice = errors.New("unknown input device")

	// ErrNoHome indicates a UI was constructed without a home screen.
	ErrNoHome = errors.New("home screen is required")
)

// InfrastructureError represents a platform-level failure: the window
// could not be created, an input device could not be opened, a font is
// missing. These are typically fatal at startup.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "open_device", "load_font")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("wheelui: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("wheelui: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}
