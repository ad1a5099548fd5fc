//go:build windows

package runtime

import "os"

var terminationSignals = []os.Signal{os.Interrupt}
