package tty

import (
	"errors"
	"fmt"
)

// Sentinel errors for terminal operations. Errors returned by this package
// wrap one of these together with the underlying OS error, so both can be
// matched with errors.Is.
var (
	// ErrNotATerminal is returned when no controlling terminal is available.
	ErrNotATerminal = errors.New("not a terminal")
	// ErrQueryFailed is returned when the OS rejects a mode or size query.
	ErrQueryFailed = errors.New("terminal query failed")
	// ErrApplyFailed is returned when the OS rejects a mode change.
	ErrApplyFailed = errors.New("terminal apply failed")
	// ErrHandleInvalid is returned for a zero, closed or otherwise unusable handle.
	ErrHandleInvalid = errors.New("invalid terminal handle")
)

func wrapErr(sentinel error, op string, h Handle, err error) error {
	if err == nil {
		return fmt.Errorf("%w: %s (handle %d)", sentinel, op, h)
	}
	return fmt.Errorf("%w: %s (handle %d): %w", sentinel, op, h, err)
}

var errInactiveGuard = errors.New("guard is degraded or released")
