// Package config parses ttyctl's command line and environment.
package config

import (
	"fmt"
	"strings"

	"github.com/alexflint/go-arg"
)

// Environment variables read by ttyctl. TTY itself is read by the tty
// package on platforms without a fixed device path.
const (
	EnvLog        = "TTYCTL_LOG"
	EnvNoDefaults = "TTYCTL_NO_DEFAULTS"
	EnvTheme      = "TTYCTL_THEME"
)

// Themes accepted by --theme.
var Themes = []string{"nord", "vivid", "plain"}

// Config holds settings shared by every subcommand.
type Config struct {
	LogPath    string `arg:"--log,env:TTYCTL_LOG" placeholder:"PATH" help:"append mode transitions as JSON lines to PATH"`
	NoDefaults bool   `arg:"--no-defaults,env:TTYCTL_NO_DEFAULTS" help:"do not adjust console modes when a session starts"`
	Theme      string `arg:"--theme,env:TTYCTL_THEME" default:"nord" help:"output colours: nord, vivid or plain"`
}

// StatusCmd reports terminal state for the standard streams.
type StatusCmd struct{}

// SizeCmd prints the visible window size.
type SizeCmd struct{}

// AttrsCmd dumps the mode words of a stream.
type AttrsCmd struct {
	Stream string `arg:"-s,--stream" default:"input" help:"stream to inspect: input or output"`
	Raw    bool   `arg:"--raw" help:"also show the derived raw mode"`
}

// RawCmd echoes key codes from the controlling terminal in raw mode.
type RawCmd struct {
	LineOnly    bool `arg:"--line-only" help:"only turn off line buffering and echo"`
	KeepSignals bool `arg:"--keep-signals" help:"keep Ctrl-C and friends generating signals"`
}

// ExecCmd runs a command attached to a console, allocating one if needed.
type ExecCmd struct {
	Command []string `arg:"positional,required" help:"command and arguments"`
}

// CompletionCmd prints a shell completion script.
type CompletionCmd struct {
	Shell string `arg:"positional,required" help:"bash, zsh, fish or powershell"`
}

// Args is the full ttyctl command line.
type Args struct {
	Config

	Status *StatusCmd `arg:"subcommand:status" help:"show terminal status of the standard streams"`
	Size   *SizeCmd   `arg:"subcommand:size" help:"print columns and rows"`
	Attrs  *AttrsCmd  `arg:"subcommand:attrs" help:"dump terminal mode flags"`
	Raw    *RawCmd    `arg:"subcommand:raw" help:"show key codes typed in raw mode"`
	Exec   *ExecCmd   `arg:"subcommand:exec" help:"run a command attached to a console"`

	Completion *CompletionCmd `arg:"subcommand:completion" help:"print a shell completion script"`
}

// Description provides the help header for go-arg.
func (Args) Description() string {
	return "ttyctl inspects and controls terminal modes.\n"
}

// Validate checks values go-arg cannot check on its own.
func (a *Args) Validate() error {
	theme := strings.ToLower(strings.TrimSpace(a.Theme))
	if theme == "" {
		// An empty TTYCTL_THEME overrides the flag default.
		theme = Themes[0]
	}
	valid := false
	for _, t := range Themes {
		if theme == t {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("unknown theme %q (want one of %s)", a.Theme, strings.Join(Themes, ", "))
	}
	a.Theme = theme
	if a.Attrs != nil {
		switch a.Attrs.Stream {
		case "input", "in", "stdin", "output", "out", "stdout":
		default:
			return fmt.Errorf("unknown stream %q (want input or output)", a.Attrs.Stream)
		}
	}
	return nil
}

// Parse parses args (without the program name) and the environment.
// The returned parser is for printing usage and subcommand help.
func Parse(args []string) (*Args, *arg.Parser, error) {
	var a Args
	p, err := arg.NewParser(arg.Config{Program: "ttyctl"}, &a)
	if err != nil {
		return nil, nil, fmt.Errorf("build parser: %w", err)
	}
	if err := p.Parse(args); err != nil {
		return &a, p, err
	}
	if err := a.Validate(); err != nil {
		return &a, p, err
	}
	return &a, p, nil
}
