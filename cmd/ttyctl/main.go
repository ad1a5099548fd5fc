// Command ttyctl inspects and controls terminal modes.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/jmagar/ttyctl/internal/completion"
	"github.com/jmagar/ttyctl/internal/config"
	"github.com/jmagar/ttyctl/internal/eventlog"
	"github.com/jmagar/ttyctl/internal/ui"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes one ttyctl invocation and returns the process exit code.
func run(args []string) int {
	a, p, err := config.Parse(args)
	if err != nil {
		return handleParseErr(p, err)
	}
	ui.InitColorPalette(a.Theme)

	if a.LogPath != "" {
		if err := eventlog.Init(a.LogPath); err != nil {
			ui.PrintWarning(fmt.Sprintf("Event log disabled: %v", err))
		}
		defer eventlog.Close()
	}

	switch {
	case a.Status != nil:
		return runStatus()
	case a.Size != nil:
		return runSize()
	case a.Attrs != nil:
		return runAttrs(a.Attrs)
	case a.Raw != nil:
		return runRaw(a.Raw, !a.NoDefaults)
	case a.Exec != nil:
		return runExec(a.Exec)
	case a.Completion != nil:
		if err := completion.Write(os.Stdout, a.Completion.Shell); err != nil {
			ui.PrintError(err.Error())
			return 2
		}
		return 0
	default:
		p.WriteHelp(os.Stderr)
		return 2
	}
}

func handleParseErr(p *arg.Parser, err error) int {
	if p == nil {
		ui.PrintError(err.Error())
		return 2
	}
	if errors.Is(err, arg.ErrHelp) {
		_ = p.WriteHelpForSubcommand(os.Stdout, p.SubcommandNames()...)
		return 0
	}
	p.WriteUsage(os.Stderr)
	ui.PrintError(err.Error())
	return 2
}
