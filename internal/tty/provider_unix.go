//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || zos

package tty

import (
	"errors"
	"io/fs"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// devTTY is the controlling terminal of the calling process.
const devTTY = "/dev/tty"

var unixProfile = Profile{
	Clear: Flags{
		Input:   unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP | unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON,
		Output:  unix.OPOST,
		Control: unix.CSIZE | unix.PARENB,
		Local:   unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN,
	},
	Set:    Flags{Control: unix.CS8},
	Line:   Flags{Local: unix.ICANON | unix.ECHO},
	Signal: Flags{Local: unix.ISIG},
	VMin:   unix.VMIN,
	VTime:  unix.VTIME,
}

type unixProvider struct{}

func newProvider() Provider { return unixProvider{} }

func (unixProvider) IsTerminal(h Handle) bool {
	if h == invalidHandle {
		return false
	}
	return term.IsTerminal(int(h))
}

func (unixProvider) Attr(h Handle) (Snapshot, error) {
	if h == invalidHandle {
		return Snapshot{}, wrapErr(ErrHandleInvalid, "get attributes", h, nil)
	}
	t, err := unix.IoctlGetTermios(int(h), ioctlReadTermios)
	if err != nil {
		return Snapshot{}, wrapErr(ErrQueryFailed, "get attributes", h, err)
	}
	return snapshotFromTermios(t), nil
}

func (unixProvider) SetAttr(h Handle, s Snapshot) error {
	if h == invalidHandle {
		return wrapErr(ErrHandleInvalid, "set attributes", h, nil)
	}
	// Start from the live termios so line discipline and speeds survive.
	t, err := unix.IoctlGetTermios(int(h), ioctlReadTermios)
	if err != nil {
		return wrapErr(ErrApplyFailed, "set attributes", h, err)
	}
	applyToTermios(t, s)
	if err := unix.IoctlSetTermios(int(h), ioctlWriteTermios, t); err != nil {
		return wrapErr(ErrApplyFailed, "set attributes", h, err)
	}
	return nil
}

func (unixProvider) Size(h Handle) (int, int, error) {
	if h == invalidHandle {
		return 0, 0, wrapErr(ErrHandleInvalid, "get size", h, nil)
	}
	ws, err := unix.IoctlGetWinsize(int(h), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, wrapErr(ErrQueryFailed, "get size", h, err)
	}
	if ws.Col == 0 || ws.Row == 0 {
		return 0, 0, wrapErr(ErrQueryFailed, "get size", h, errZeroSize)
	}
	return int(ws.Col), int(ws.Row), nil
}

func (unixProvider) Open(mode OpenMode) (*os.File, error) {
	return openDevice(devTTY, mode, isNoControllingTTY)
}

func (unixProvider) Defaults(in, out Snapshot) (Snapshot, Snapshot) {
	return in, out
}

var errZeroSize = errors.New("terminal reports zero size")

// isNoControllingTTY matches the errors open(2) returns for /dev/tty when
// the process has no controlling terminal.
func isNoControllingTTY(err error) bool {
	return errors.Is(err, unix.ENXIO) || errors.Is(err, unix.ENODEV) || errors.Is(err, fs.ErrNotExist)
}

func snapshotFromTermios(t *unix.Termios) Snapshot {
	f := Flags{
		Input:   uint64(t.Iflag),
		Output:  uint64(t.Oflag),
		Control: uint64(t.Cflag),
		Local:   uint64(t.Lflag),
	}
	return NewSnapshot(f, t.Cc[:], unixProfile)
}

func applyToTermios(t *unix.Termios, s Snapshot) {
	f := s.Flags()
	setFlag(&t.Iflag, f.Input)
	setFlag(&t.Oflag, f.Output)
	setFlag(&t.Cflag, f.Control)
	setFlag(&t.Lflag, f.Local)
	cc := s.ControlChars()
	copy(t.Cc[:], cc[:])
}

// setFlag stores v into a termios flag word, whose width varies by OS.
func setFlag[T uint32 | uint64](dst *T, v uint64) {
	*dst = T(v)
}
