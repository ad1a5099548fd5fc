//go:build !aix && !darwin && !dragonfly && !freebsd && !linux && !netbsd && !openbsd && !solaris && !zos && !windows

package tty

import (
	"errors"
	"io/fs"
	"os"

	"golang.org/x/term"
)

// envProvider serves targets without a conventional device path. The
// controlling terminal is whatever $TTY names, and mode control is left to
// golang.org/x/term, which reports it as unsupported where it is.
type envProvider struct {
	lookup func(string) (string, bool)
}

func newProvider() Provider { return envProvider{lookup: os.LookupEnv} }

var errNoModeControl = errors.New("terminal modes are not supported on this platform")

func (envProvider) IsTerminal(h Handle) bool {
	if h == invalidHandle {
		return false
	}
	return term.IsTerminal(int(h))
}

func (envProvider) Attr(h Handle) (Snapshot, error) {
	if h == invalidHandle {
		return Snapshot{}, wrapErr(ErrHandleInvalid, "get attributes", h, nil)
	}
	if _, err := term.GetState(int(h)); err != nil {
		return Snapshot{}, wrapErr(ErrQueryFailed, "get attributes", h, err)
	}
	return Snapshot{}, wrapErr(ErrQueryFailed, "get attributes", h, errNoModeControl)
}

func (envProvider) SetAttr(h Handle, _ Snapshot) error {
	if h == invalidHandle {
		return wrapErr(ErrHandleInvalid, "set attributes", h, nil)
	}
	return wrapErr(ErrApplyFailed, "set attributes", h, errNoModeControl)
}

func (envProvider) Size(h Handle) (int, int, error) {
	if h == invalidHandle {
		return 0, 0, wrapErr(ErrHandleInvalid, "get size", h, nil)
	}
	cols, rows, err := term.GetSize(int(h))
	if err != nil {
		return 0, 0, wrapErr(ErrQueryFailed, "get size", h, err)
	}
	if cols < 1 || rows < 1 {
		return 0, 0, wrapErr(ErrQueryFailed, "get size", h, errors.New("terminal reports zero size"))
	}
	return cols, rows, nil
}

func (p envProvider) Open(mode OpenMode) (*os.File, error) {
	path, err := envDevicePath(p.lookup)
	if err != nil {
		return nil, err
	}
	return openDevice(path, mode, func(err error) bool {
		return errors.Is(err, fs.ErrNotExist)
	})
}

func (envProvider) Defaults(in, out Snapshot) (Snapshot, Snapshot) {
	return in, out
}
