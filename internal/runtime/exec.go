// Package runtime holds process-level helpers that sit around the tty
// package: console allocation, running attached child processes, and
// termination handling.
package runtime

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
)

// NotifyTermination returns a context cancelled when the process receives
// a termination signal. Call stop to release the signal handler.
func NotifyTermination(parent context.Context) (ctx context.Context, stop context.CancelFunc) {
	return signal.NotifyContext(parent, terminationSignals...)
}

// RunAttached runs command with the process's standard streams and waits
// for it. It returns the child's exit code; err is non-nil only when the
// child could not be started or waited for.
func RunAttached(ctx context.Context, command []string) (int, error) {
	if len(command) == 0 {
		return -1, errors.New("no command given")
	}
	cmd := exec.CommandContext(ctx, command[0], command[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, fmt.Errorf("run %s: %w", command[0], err)
	}
	return 0, nil
}
