//go:build windows

package tty

import "golang.org/x/sys/windows"

func stdHandle(s Stream) Handle {
	id := uint32(windows.STD_INPUT_HANDLE)
	if s == Output {
		id = uint32(windows.STD_OUTPUT_HANDLE)
	}
	h, err := windows.GetStdHandle(id)
	if err != nil {
		return Handle(windows.InvalidHandle)
	}
	return Handle(h)
}
