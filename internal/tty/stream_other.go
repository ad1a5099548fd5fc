//go:build !windows

package tty

import "os"

// invalidHandle is returned when the standard stream is nil. It matches
// what (*os.File).Fd reports for a closed file.
const invalidHandle = Handle(^uintptr(0))

func stdHandle(s Stream) Handle {
	f := os.Stdin
	if s == Output {
		f = os.Stdout
	}
	if f == nil {
		return invalidHandle
	}
	return Handle(f.Fd())
}
