//go:build windows

package tty

import (
	"errors"
	"io/fs"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/sys/windows"
)

// Console device names; there is no /dev/tty equivalent path.
const (
	conIn  = "CONIN$"
	conOut = "CONOUT$"
)

// Console modes of input handles live in Flags.Input.
var consoleInputProfile = Profile{
	Clear:  Flags{Input: windows.ENABLE_LINE_INPUT | windows.ENABLE_ECHO_INPUT | windows.ENABLE_PROCESSED_INPUT},
	Set:    Flags{Input: windows.ENABLE_VIRTUAL_TERMINAL_INPUT},
	Line:   Flags{Input: windows.ENABLE_LINE_INPUT | windows.ENABLE_ECHO_INPUT},
	Signal: Flags{Input: windows.ENABLE_PROCESSED_INPUT},
	VMin:   -1,
	VTime:  -1,
}

// Console modes of output handles live in Flags.Output. Raw mode is an
// input concept on the console, so output modes are left alone.
var consoleOutputProfile = Profile{
	VMin:  -1,
	VTime: -1,
}

type windowsProvider struct{}

func newProvider() Provider { return windowsProvider{} }

func validHandle(h Handle) bool {
	return h != 0 && windows.Handle(h) != windows.InvalidHandle
}

func (windowsProvider) IsTerminal(h Handle) bool {
	if !validHandle(h) {
		return false
	}
	var mode uint32
	if windows.GetConsoleMode(windows.Handle(h), &mode) == nil {
		return true
	}
	return isatty.IsCygwinTerminal(uintptr(h))
}

// isOutputConsole reports whether h is a console screen buffer. Only output
// handles answer a screen buffer query.
func isOutputConsole(h Handle) bool {
	var info windows.ConsoleScreenBufferInfo
	return windows.GetConsoleScreenBufferInfo(windows.Handle(h), &info) == nil
}

func (windowsProvider) Attr(h Handle) (Snapshot, error) {
	if !validHandle(h) {
		return Snapshot{}, wrapErr(ErrHandleInvalid, "get console mode", h, nil)
	}
	var mode uint32
	if err := windows.GetConsoleMode(windows.Handle(h), &mode); err != nil {
		return Snapshot{}, wrapErr(ErrQueryFailed, "get console mode", h, err)
	}
	if isOutputConsole(h) {
		return NewSnapshot(Flags{Output: uint64(mode)}, nil, consoleOutputProfile), nil
	}
	return NewSnapshot(Flags{Input: uint64(mode)}, nil, consoleInputProfile), nil
}

func (windowsProvider) SetAttr(h Handle, s Snapshot) error {
	if !validHandle(h) {
		return wrapErr(ErrHandleInvalid, "set console mode", h, nil)
	}
	f := s.Flags()
	mode := uint32(f.Input)
	if s.Profile() == consoleOutputProfile {
		mode = uint32(f.Output)
	}
	if err := windows.SetConsoleMode(windows.Handle(h), mode); err != nil {
		return wrapErr(ErrApplyFailed, "set console mode", h, err)
	}
	return nil
}

func (windowsProvider) Size(h Handle) (int, int, error) {
	if !validHandle(h) {
		return 0, 0, wrapErr(ErrHandleInvalid, "get size", h, nil)
	}
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(windows.Handle(h), &info); err != nil {
		return 0, 0, wrapErr(ErrQueryFailed, "get size", h, err)
	}
	// Window is the visible region, not the scroll-back buffer.
	cols := int(info.Window.Right-info.Window.Left) + 1
	rows := int(info.Window.Bottom-info.Window.Top) + 1
	if cols < 1 || rows < 1 {
		return 0, 0, wrapErr(ErrQueryFailed, "get size", h, errors.New("console reports empty window"))
	}
	return cols, rows, nil
}

// Open opens CONIN$ for OpenRead and OpenReadWrite, and CONOUT$ for
// OpenWrite. The console has no single device that is both, so writes to
// an OpenReadWrite handle fail; callers that need to write open a second
// handle with OpenWrite.
func (windowsProvider) Open(mode OpenMode) (*os.File, error) {
	name := conIn
	if mode == OpenWrite {
		name = conOut
	}
	return openDevice(name, mode, isNoConsole)
}

func (windowsProvider) Defaults(in, out Snapshot) (Snapshot, Snapshot) {
	if in.Profile() == consoleInputProfile {
		f := in.Flags()
		// Clearing quick-edit only takes effect with ENABLE_EXTENDED_FLAGS.
		f.Input &^= windows.ENABLE_QUICK_EDIT_MODE
		f.Input |= windows.ENABLE_EXTENDED_FLAGS | windows.ENABLE_VIRTUAL_TERMINAL_INPUT | windows.ENABLE_PROCESSED_INPUT
		in = NewSnapshot(f, nil, consoleInputProfile)
	}
	if out.Profile() == consoleOutputProfile {
		f := out.Flags()
		f.Output |= windows.ENABLE_PROCESSED_OUTPUT | windows.ENABLE_WRAP_AT_EOL_OUTPUT | windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING
		out = NewSnapshot(f, nil, consoleOutputProfile)
	}
	return in, out
}

func isNoConsole(err error) bool {
	return errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, windows.ERROR_INVALID_HANDLE) ||
		errors.Is(err, windows.ERROR_ACCESS_DENIED)
}
