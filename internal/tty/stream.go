package tty

import "fmt"

// Handle is a raw OS handle: a file descriptor on unix, a HANDLE on windows.
type Handle uintptr

// Stream identifies one of the standard streams managed by a Guard.
// It carries no state; the live handle is resolved on every call because
// the process may reassign its standard handles (for example after a
// console has been allocated).
type Stream int

const (
	Input Stream = iota
	Output
)

func (s Stream) String() string {
	switch s {
	case Input:
		return "input"
	case Output:
		return "output"
	default:
		return fmt.Sprintf("stream(%d)", int(s))
	}
}

// Handle resolves s to the handle currently bound to it.
func (s Stream) Handle() Handle {
	return stdHandle(s)
}

// ParseStream maps "input"/"stdin" and "output"/"stdout" to a Stream.
func ParseStream(name string) (Stream, error) {
	switch name {
	case "input", "in", "stdin":
		return Input, nil
	case "output", "out", "stdout":
		return Output, nil
	default:
		return 0, fmt.Errorf("unknown stream %q", name)
	}
}
