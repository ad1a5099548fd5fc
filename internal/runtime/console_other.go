//go:build !windows

package runtime

import "github.com/jmagar/ttyctl/internal/tty"

// HasConsole reports whether either standard stream is a terminal.
func HasConsole() bool {
	return tty.IsTTY(tty.Input) || tty.IsTTY(tty.Output)
}

// AllocConsole is a no-op outside windows: a process without a terminal
// cannot create one for itself.
func AllocConsole() (bool, error) {
	return false, nil
}
