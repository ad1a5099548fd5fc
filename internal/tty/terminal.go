package tty

import (
	"os"

	"github.com/jmagar/ttyctl/internal/eventlog"
)

// Terminal is the uniform entry point over a Provider. The zero value is
// not usable; build one with New or use the package-level functions, which
// run against the provider selected for the current platform.
//
// Terminal mode is process-wide state owned by the OS. Callers must
// serialize mode-changing calls; while a Guard is active, mode changes
// should go through it rather than through Apply.
type Terminal struct {
	p Provider
}

// New returns a Terminal backed by p.
func New(p Provider) *Terminal {
	return &Terminal{p: p}
}

var std = New(newProvider())

// Default returns the Terminal for the current platform.
func Default() *Terminal { return std }

func (t *Terminal) Provider() Provider { return t.p }

// IsTerminal reports whether h is an interactive terminal. It never fails.
func (t *Terminal) IsTerminal(h Handle) bool {
	return t.p.IsTerminal(h)
}

// IsTerminalFile is IsTerminal for an open file; nil is not a terminal.
func (t *Terminal) IsTerminalFile(f *os.File) bool {
	if f == nil {
		return false
	}
	return t.p.IsTerminal(Handle(f.Fd()))
}

// IsTTY reports whether the standard stream s is an interactive terminal.
func (t *Terminal) IsTTY(s Stream) bool {
	return t.p.IsTerminal(s.Handle())
}

// Capture snapshots the current mode of s.
func (t *Terminal) Capture(s Stream) (Snapshot, error) {
	snap, err := t.p.Attr(s.Handle())
	if err != nil {
		return Snapshot{}, err
	}
	eventlog.Record(eventlog.Entry{Event: eventlog.EventCapture, Stream: s.String(), Flags: flagWords(snap)})
	return snap, nil
}

// Apply sets the mode of s to snap.
func (t *Terminal) Apply(s Stream, snap Snapshot) error {
	err := t.p.SetAttr(s.Handle(), snap)
	entry := eventlog.Entry{Event: eventlog.EventApply, Stream: s.String(), Flags: flagWords(snap)}
	if err != nil {
		entry.Error = err.Error()
	}
	eventlog.Record(entry)
	return err
}

// Size returns the visible window extent of s as (columns, rows).
func (t *Terminal) Size(s Stream) (cols, rows int, err error) {
	return t.p.Size(s.Handle())
}

// GetTTY opens the controlling terminal for reading and writing. On
// windows the handle is CONIN$ and only reads succeed; use GetWriteTTY for
// output there.
func (t *Terminal) GetTTY() (*os.File, error) { return t.p.Open(OpenReadWrite) }

// GetReadTTY opens the controlling terminal read-only. It works even when
// stdin is redirected.
func (t *Terminal) GetReadTTY() (*os.File, error) { return t.p.Open(OpenRead) }

// GetWriteTTY opens the controlling terminal write-only. It works even when
// stdout is redirected.
func (t *Terminal) GetWriteTTY() (*os.File, error) { return t.p.Open(OpenWrite) }

func IsTerminal(h Handle) bool                  { return std.IsTerminal(h) }
func IsTerminalFile(f *os.File) bool            { return std.IsTerminalFile(f) }
func IsTTY(s Stream) bool                       { return std.IsTTY(s) }
func Capture(s Stream) (Snapshot, error)        { return std.Capture(s) }
func Apply(s Stream, snap Snapshot) error       { return std.Apply(s, snap) }
func Size(s Stream) (cols, rows int, err error) { return std.Size(s) }
func GetTTY() (*os.File, error)                 { return std.GetTTY() }
func GetReadTTY() (*os.File, error)             { return std.GetReadTTY() }
func GetWriteTTY() (*os.File, error)            { return std.GetWriteTTY() }

// Init starts a session on the platform terminal. See Terminal.Init.
func Init(opts ...Option) *Guard { return std.Init(opts...) }

func flagWords(s Snapshot) []uint64 {
	f := s.Flags()
	return []uint64{f.Input, f.Output, f.Control, f.Local}
}
