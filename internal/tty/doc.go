// Package tty is a cross-platform terminal control layer.
//
// It answers whether a stream is an interactive terminal, opens the
// controlling terminal device independently of redirected standard
// streams, reports the visible window size, and switches input between
// cooked and raw mode with guaranteed restoration:
//
//	g := tty.Init()
//	defer g.Release()
//	if !g.SetRawInputMode(true) {
//		// carry on in cooked mode
//	}
//
// Each OS provides one Provider implementation: termios ioctls on unix, the
// console API on windows, and a $TTY device with golang.org/x/term elsewhere.
// Mode snapshots are immutable values; raw variants are derived, never
// edited in place.
//
// Nothing here draws to the screen. Escape sequences, cursor movement and
// line editing belong to callers.
package tty
