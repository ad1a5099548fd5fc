package tty

import "github.com/jmagar/ttyctl/internal/eventlog"

type inputState int

const (
	inputUnknown inputState = iota
	inputRaw
	inputCooked
)

// Option configures Terminal.Init.
type Option func(*guardOptions)

type guardOptions struct {
	defaults bool
}

// WithoutDefaults skips the provider's default mode adjustments at Init.
func WithoutDefaults() Option {
	return func(o *guardOptions) { o.defaults = false }
}

// WithDefaults controls whether the provider's default adjustments are
// applied at Init. They are applied unless disabled.
func WithDefaults(enable bool) Option {
	return func(o *guardOptions) { o.defaults = enable }
}

// Guard owns the input and output modes observed at the start of a session
// and puts them back on Release. Release must run on every exit path:
//
//	g := tty.Init()
//	defer g.Release()
//
// A Guard whose initial capture failed is degraded: it never changes the
// terminal, so a broken terminal environment does not stop the caller.
// Guards are not safe for concurrent use.
type Guard struct {
	t         *Terminal
	in, out   Snapshot
	doCleanup bool
	released  bool

	// input is the last mode set through SetRawInputMode; savedLine holds
	// the canonical/echo bits present when raw input was enabled.
	input     inputState
	savedLine Flags
}

// Init captures the current input and output modes and returns a Guard
// that restores them on Release. Init never fails: if either capture
// fails the returned Guard is degraded.
func (t *Terminal) Init(opts ...Option) *Guard {
	o := guardOptions{defaults: true}
	for _, opt := range opts {
		opt(&o)
	}

	g := &Guard{t: t}
	in, err := t.Capture(Input)
	if err != nil {
		eventlog.Record(eventlog.Entry{Event: eventlog.EventDegraded, Stream: Input.String(), Error: err.Error()})
		return g
	}
	out, err := t.Capture(Output)
	if err != nil {
		eventlog.Record(eventlog.Entry{Event: eventlog.EventDegraded, Stream: Output.String(), Error: err.Error()})
		return g
	}
	g.in, g.out, g.doCleanup = in, out, true

	if o.defaults {
		newIn, newOut := t.p.Defaults(in, out)
		// Best effort: a console host that rejects these still works with
		// what it already has, and Release puts the originals back.
		if newOut != out {
			_ = t.Apply(Output, newOut)
		}
		if newIn != in {
			_ = t.Apply(Input, newIn)
		}
		eventlog.Record(eventlog.Entry{Event: eventlog.EventDefaults})
	}
	return g
}

// Degraded reports whether the initial capture failed.
func (g *Guard) Degraded() bool { return !g.doCleanup }

// Released reports whether Release has run.
func (g *Guard) Released() bool { return g.released }

// Input returns the input mode captured at Init.
func (g *Guard) Input() Snapshot { return g.in }

// Output returns the output mode captured at Init.
func (g *Guard) Output() Snapshot { return g.out }

// SetRawInputMode switches the input stream between raw (enable) and
// cooked input by changing only the canonical/echo group. It reports
// whether the terminal accepted the change. Repeating the last setting is a
// no-op. Disabling after an enable puts back the group bits that were
// present when raw input was enabled; otherwise the whole group is set.
// Degraded and released guards return false and leave the terminal alone.
func (g *Guard) SetRawInputMode(enable bool) bool {
	if !g.doCleanup || g.released {
		return false
	}
	want := inputCooked
	if enable {
		want = inputRaw
	}
	if g.input == want {
		return true
	}
	cur, err := g.t.Capture(Input)
	if err != nil {
		return false
	}

	var next Snapshot
	switch {
	case enable:
		next = cur.WithLineInput(false)
	case g.input == inputRaw:
		next = cur.withLineBits(g.savedLine)
	default:
		next = cur.WithLineInput(true)
	}
	if next != cur {
		if err := g.t.Apply(Input, next); err != nil {
			return false
		}
	}
	if enable {
		g.savedLine = cur.lineBits()
	}
	g.input = want
	eventlog.Record(eventlog.Entry{Event: eventlog.EventRawInput, Stream: Input.String(), Raw: enable})
	return true
}

// MakeRaw puts the input stream fully into raw mode, derived from the mode
// captured at Init. keepSignals leaves signal generation on.
func (g *Guard) MakeRaw(keepSignals bool) error {
	if !g.doCleanup || g.released {
		return wrapErr(ErrApplyFailed, "make raw", Input.Handle(), errInactiveGuard)
	}
	raw := g.in.MakeRaw()
	if keepSignals {
		raw = raw.WithSignals(true)
	}
	if err := g.t.Apply(Input, raw); err != nil {
		return err
	}
	if g.input != inputRaw {
		g.savedLine = g.in.lineBits()
		g.input = inputRaw
	}
	return nil
}

// Release restores the output and then the input mode captured at Init.
// Restore errors are discarded so that teardown never fails the caller.
// Only the first call has any effect.
func (g *Guard) Release() {
	if g.released {
		return
	}
	g.released = true
	if !g.doCleanup {
		return
	}
	g.restore(Output, g.out)
	g.restore(Input, g.in)
}

func (g *Guard) restore(s Stream, snap Snapshot) {
	entry := eventlog.Entry{Event: eventlog.EventRestore, Stream: s.String(), Flags: flagWords(snap)}
	if err := g.t.p.SetAttr(s.Handle(), snap); err != nil {
		entry.Event = eventlog.EventRestoreFailed
		entry.Error = err.Error()
	}
	eventlog.Record(entry)
}
