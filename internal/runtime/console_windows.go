//go:build windows

package runtime

import (
	"fmt"
	"os"

	"github.com/jmagar/ttyctl/internal/tty"
	"golang.org/x/sys/windows"
)

var (
	kernel32             = windows.NewLazySystemDLL("kernel32.dll")
	procAllocConsole     = kernel32.NewProc("AllocConsole")
	procGetConsoleWindow = kernel32.NewProc("GetConsoleWindow")
)

// HasConsole reports whether the process is attached to a console window.
func HasConsole() bool {
	if err := procGetConsoleWindow.Find(); err != nil {
		return false
	}
	hwnd, _, _ := procGetConsoleWindow.Call()
	return hwnd != 0
}

// AllocConsole gives a console-less process (a GUI-subsystem binary, or one
// started detached) a fresh console and points os.Stdin, os.Stdout and
// os.Stderr at it. It reports whether a console was allocated; a process
// that already has one is left alone.
func AllocConsole() (bool, error) {
	if HasConsole() {
		return false, nil
	}
	if err := procAllocConsole.Find(); err != nil {
		return false, fmt.Errorf("allocate console: %w", err)
	}
	if r, _, err := procAllocConsole.Call(); r == 0 {
		return false, fmt.Errorf("allocate console: %w", err)
	}
	if err := rebindStdio(); err != nil {
		return true, err
	}
	return true, nil
}

// rebindStdio replaces the standard files with handles on the new console.
// The std handles themselves are updated by AllocConsole; tty.Stream
// resolves them per call, but the os package cached the old ones.
func rebindStdio() error {
	in, err := tty.GetReadTTY()
	if err != nil {
		return fmt.Errorf("open console input: %w", err)
	}
	out, err := tty.GetWriteTTY()
	if err != nil {
		_ = in.Close()
		return fmt.Errorf("open console output: %w", err)
	}
	errOut, err := tty.GetWriteTTY()
	if err != nil {
		_ = in.Close()
		_ = out.Close()
		return fmt.Errorf("open console output: %w", err)
	}
	os.Stdin, os.Stdout, os.Stderr = in, out, errOut
	return nil
}
