// Package eventlog records terminal mode transitions as JSON lines.
package eventlog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Event names written to the "event" field.
const (
	EventCapture       = "capture"
	EventApply         = "apply"
	EventDefaults      = "defaults"
	EventDegraded      = "degraded"
	EventRawInput      = "raw_input"
	EventRestore       = "restore"
	EventRestoreFailed = "restore_failed"
)

// Entry is a single mode transition. Field names use snake_case keys for
// easy grep/jq consumption.
type Entry struct {
	Event  string
	Stream string   // "input" / "output"
	Flags  []uint64 // input, output, control, local words
	Raw    bool     // raw_input only
	Error  string
}

type eventLogger struct {
	log *logrus.Logger
	c   io.Closer
}

// Logger is the package-level event logger. It is nil until Init is called,
// and Record is a no-op while it is nil.
var Logger *eventLogger

var loggerOnce sync.Once

// Init opens (or creates) the log file at path and starts recording. Only
// the first call has any effect. On error logging stays disabled; terminal
// control carries on regardless.
func Init(path string) error {
	var initErr error
	loggerOnce.Do(func() {
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			initErr = fmt.Errorf("event log: mkdir %s: %w", filepath.Dir(path), err)
			return
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			initErr = fmt.Errorf("event log: open %s: %w", path, err)
			return
		}
		Logger = newLogger(f)
		Logger.c = f
	})
	return initErr
}

// Close closes the log file and stops recording.
func Close() error {
	if Logger == nil {
		return nil
	}
	c := Logger.c
	Logger = nil
	if c == nil {
		return nil
	}
	return c.Close()
}

func newLogger(w io.Writer) *eventLogger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "ts",
			logrus.FieldKeyMsg:  "event",
		},
	})
	return &eventLogger{log: l}
}

// Record writes e. Write failures are ignored: a logging error must never
// get in the way of restoring a terminal.
func Record(e Entry) {
	if Logger == nil {
		return
	}
	fields := logrus.Fields{}
	if e.Stream != "" {
		fields["stream"] = e.Stream
	}
	if len(e.Flags) > 0 {
		words := make([]string, len(e.Flags))
		for i, w := range e.Flags {
			words[i] = "0x" + strconv.FormatUint(w, 16)
		}
		fields["flags"] = words
	}
	if e.Event == EventRawInput {
		fields["raw"] = e.Raw
	}
	entry := Logger.log.WithFields(fields)
	if e.Error != "" {
		entry = entry.WithField("error", e.Error)
		entry.Warn(e.Event)
		return
	}
	entry.Info(e.Event)
}
