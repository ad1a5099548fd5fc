//go:build !windows

package runtime

import (
	"os"
	"syscall"
)

// terminationSignals end an interactive session. SIGHUP arrives when the
// controlling terminal goes away.
var terminationSignals = []os.Signal{syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP}
