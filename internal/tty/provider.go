package tty

import (
	"fmt"
	"os"
)

// OpenMode selects how the controlling terminal device is opened.
type OpenMode int

const (
	OpenReadWrite OpenMode = iota
	OpenRead
	OpenWrite
)

func (m OpenMode) String() string {
	switch m {
	case OpenReadWrite:
		return "read-write"
	case OpenRead:
		return "read-only"
	case OpenWrite:
		return "write-only"
	default:
		return fmt.Sprintf("openmode(%d)", int(m))
	}
}

func (m OpenMode) flag() int {
	switch m {
	case OpenRead:
		return os.O_RDONLY
	case OpenWrite:
		return os.O_WRONLY
	default:
		return os.O_RDWR
	}
}

// Provider is the per-platform capability set behind Terminal. Each
// supported OS has one implementation selected at build time; tests inject
// fakes through New.
type Provider interface {
	// IsTerminal reports whether h refers to an interactive terminal. Any
	// failure is reported as false.
	IsTerminal(h Handle) bool

	// Attr captures the current mode of h.
	Attr(h Handle) (Snapshot, error)

	// SetAttr applies s to h. Bits outside the snapshot's flag words and
	// control characters are left untouched.
	SetAttr(h Handle, s Snapshot) error

	// Size returns the visible window extent of h in columns and rows.
	Size(h Handle) (cols, rows int, err error)

	// Open opens the controlling terminal device directly, bypassing any
	// redirection of the standard streams. The caller owns the file.
	Open(mode OpenMode) (*os.File, error)

	// Defaults returns the adjusted input and output snapshots a new session
	// should run with. Implementations without adjustments return in, out.
	Defaults(in, out Snapshot) (Snapshot, Snapshot)
}

// ttyEnv names the environment variable holding the controlling device path
// on targets without a conventional one.
const ttyEnv = "TTY"

// envDevicePath returns the device path named by $TTY.
func envDevicePath(lookup func(string) (string, bool)) (string, error) {
	path, ok := lookup(ttyEnv)
	if !ok || path == "" {
		return "", fmt.Errorf("%w: %s is not set", ErrNotATerminal, ttyEnv)
	}
	return path, nil
}

// openDevice opens path with mode, mapping the error through notTTY.
func openDevice(path string, mode OpenMode, notTTY func(error) bool) (*os.File, error) {
	f, err := os.OpenFile(path, mode.flag(), 0)
	if err != nil {
		if notTTY(err) {
			return nil, fmt.Errorf("%w: open %s %s: %w", ErrNotATerminal, path, mode, err)
		}
		return nil, fmt.Errorf("%w: open %s %s: %w", ErrHandleInvalid, path, mode, err)
	}
	return f, nil
}
