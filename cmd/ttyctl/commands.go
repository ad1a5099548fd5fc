package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jmagar/ttyctl/internal/config"
	"github.com/jmagar/ttyctl/internal/runtime"
	"github.com/jmagar/ttyctl/internal/tty"
	"github.com/jmagar/ttyctl/internal/ui"
	"github.com/mattn/go-isatty"
)

func runStatus() int {
	ui.PrintSection("Standard streams")
	for _, f := range []*os.File{os.Stdin, os.Stdout, os.Stderr} {
		value := ui.YesNo(tty.IsTerminalFile(f))
		if f != nil && isatty.IsCygwinTerminal(f.Fd()) {
			value += " (cygwin pty)"
		}
		ui.PrintKeyValue(streamLabel(f), value, "")
	}

	ui.PrintSection("Session")
	ui.PrintKeyValue("console attached", ui.YesNo(runtime.HasConsole()), "")
	ctl, err := tty.GetTTY()
	if err == nil {
		_ = ctl.Close()
		ui.PrintKeyValue("controlling terminal", ui.YesNo(true), "")
	} else {
		ui.PrintKeyValue("controlling terminal", ui.YesNo(false), "")
	}
	if cols, rows, err := tty.Size(tty.Output); err == nil {
		ui.PrintKeyValue("size", fmt.Sprintf("%dx%d", cols, rows), ui.ColorCyan)
	}
	if snap, err := tty.Capture(tty.Input); err == nil {
		ui.PrintKeyValue("line input", ui.YesNo(snap.LineInput()), "")
	}
	return 0
}

func streamLabel(f *os.File) string {
	switch f {
	case os.Stdin:
		return "stdin"
	case os.Stdout:
		return "stdout"
	case os.Stderr:
		return "stderr"
	}
	return "?"
}

func runSize() int {
	cols, rows, err := tty.Size(tty.Output)
	if err != nil {
		// stdout may be redirected while stdin is still the terminal.
		cols, rows, err = tty.Size(tty.Input)
	}
	if err != nil {
		ui.PrintError(fmt.Sprintf("Failed to read terminal size: %v", err))
		return 1
	}
	fmt.Printf("%d %d\n", cols, rows)
	return 0
}

func runAttrs(c *config.AttrsCmd) int {
	s, err := tty.ParseStream(c.Stream)
	if err != nil {
		ui.PrintError(err.Error())
		return 2
	}
	snap, err := tty.Capture(s)
	if err != nil {
		ui.PrintError(fmt.Sprintf("Failed to read %s modes: %v", s, err))
		return 1
	}

	headers := []string{"word", "current"}
	var raw *tty.Snapshot
	if c.Raw {
		r := snap.MakeRaw()
		raw = &r
		headers = append(headers, "raw")
	}
	table := ui.NewTable(headers...).AlignRight(1, 2)
	for _, row := range attrRows(snap, raw) {
		table.AddRow(row...)
	}
	ui.PrintSection(fmt.Sprintf("%s modes", s))
	table.Print()
	return 0
}

// attrRows renders the flag words of cur, and of raw when given, one row
// per word plus a control character row.
func attrRows(cur tty.Snapshot, raw *tty.Snapshot) [][]string {
	words := func(s tty.Snapshot) []uint64 {
		f := s.Flags()
		return []uint64{f.Input, f.Output, f.Control, f.Local}
	}
	names := []string{"input", "output", "control", "local"}

	curWords := words(cur)
	var rawWords []uint64
	if raw != nil {
		rawWords = words(*raw)
	}
	rows := make([][]string, 0, len(names)+1)
	for i, name := range names {
		row := []string{name, fmt.Sprintf("%#x", curWords[i])}
		if raw != nil {
			row = append(row, fmt.Sprintf("%#x", rawWords[i]))
		}
		rows = append(rows, row)
	}
	cc := []string{"cc", controlChars(cur)}
	if raw != nil {
		cc = append(cc, controlChars(*raw))
	}
	return append(rows, cc)
}

// controlChars renders the control characters up to the last non-zero one.
func controlChars(s tty.Snapshot) string {
	cc := s.ControlChars()
	end := len(cc)
	for end > 0 && cc[end-1] == 0 {
		end--
	}
	if end == 0 {
		return "-"
	}
	parts := make([]string, end)
	for i := 0; i < end; i++ {
		parts[i] = fmt.Sprintf("%02x", cc[i])
	}
	return strings.Join(parts, " ")
}

func runExec(c *config.ExecCmd) int {
	allocated, err := runtime.AllocConsole()
	if err != nil {
		ui.PrintWarning(fmt.Sprintf("Could not attach a console: %v", err))
	} else if allocated {
		ui.PrintInfo("Allocated a new console")
	}

	ctx, stop := runtime.NotifyTermination(context.Background())
	defer stop()
	code, err := runtime.RunAttached(ctx, c.Command)
	if err != nil {
		ui.PrintError(err.Error())
		return 1
	}
	return code
}
