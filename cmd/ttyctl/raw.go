package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/jmagar/ttyctl/internal/config"
	"github.com/jmagar/ttyctl/internal/runtime"
	"github.com/jmagar/ttyctl/internal/tty"
	"github.com/jmagar/ttyctl/internal/ui"
	"github.com/ross96D/cancelreader"
)

const (
	keyQuit      = 'q'
	keyInterrupt = 0x03
)

func runRaw(c *config.RawCmd, defaults bool) int {
	ctx, stop := runtime.NotifyTermination(context.Background())
	defer stop()

	g := tty.Init(tty.WithDefaults(defaults))
	defer g.Release()
	if g.Degraded() {
		ui.PrintError(degradedReason())
		return 1
	}

	ui.PrintInfo("Type keys to see their codes; q or Ctrl-C quits")
	ui.PrintList(rawChanges(c), ui.ColorYellow)
	if c.LineOnly {
		if !g.SetRawInputMode(true) {
			ui.PrintError("Terminal refused raw input mode")
			return 1
		}
	} else if err := g.MakeRaw(c.KeepSignals); err != nil {
		ui.PrintError(fmt.Sprintf("Failed to enter raw mode: %v", err))
		return 1
	}

	cr, err := cancelreader.NewReader(os.Stdin)
	if err != nil {
		g.Release()
		ui.PrintError(fmt.Sprintf("Failed to read stdin: %v", err))
		return 1
	}
	defer cr.Close()
	go func() {
		<-ctx.Done()
		cr.Cancel()
	}()

	n, err := echoKeys(cr, os.Stdout)
	g.Release()
	if err != nil && ctx.Err() == nil {
		ui.PrintError(fmt.Sprintf("Read failed: %v", err))
		return 1
	}
	ui.PrintSuccess(fmt.Sprintf("Read %s, terminal restored", humanize.Bytes(uint64(n))))
	return 0
}

// degradedReason names the standard stream whose mode could not be read.
func degradedReason() string {
	if _, err := tty.Capture(tty.Input); err != nil {
		return "stdin is not a terminal"
	}
	if _, err := tty.Capture(tty.Output); err != nil {
		return "stdout is not a terminal"
	}
	return "terminal modes could not be read"
}

// rawChanges describes what the chosen mode turns off.
func rawChanges(c *config.RawCmd) []string {
	if c.LineOnly {
		return []string{"line buffering off", "echo off"}
	}
	changes := []string{"line buffering off", "echo off", "output processing off"}
	if c.KeepSignals {
		return append(changes, "signal keys kept")
	}
	return append(changes, "signal keys off")
}

// echoKeys writes one line per byte read from r until it sees q or an
// interrupt byte, or r ends. It returns the number of bytes read. Lines end
// in CRLF since output post-processing is off in raw mode.
func echoKeys(r io.Reader, w io.Writer) (int, error) {
	buf := make([]byte, 64)
	total := 0
	for {
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			total++
			if _, werr := fmt.Fprintf(w, "%3d  0x%02x  %s\r\n", b, b, keyName(b)); werr != nil {
				return total, werr
			}
			if b == keyQuit || b == keyInterrupt {
				return total, nil
			}
		}
		if errors.Is(err, io.EOF) {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// keyName gives a readable name for one input byte.
func keyName(b byte) string {
	switch {
	case b == 0x1b:
		return "ESC"
	case b == 0x7f:
		return "DEL"
	case b == '\r':
		return "^M (enter)"
	case b == '\t':
		return "^I (tab)"
	case b < 0x20:
		return "^" + string(rune(b+'@'))
	case b < 0x7f:
		return fmt.Sprintf("%q", rune(b))
	}
	return "high byte"
}
