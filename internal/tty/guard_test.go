package tty

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCapturesBothStreams(t *testing.T) {
	out := NewSnapshot(Flags{Output: 0b111}, nil, stubProfile)
	p := newFakeProvider(cooked(), out)

	g := New(p).Init()

	require.False(t, g.Degraded())
	assert.Equal(t, cooked(), g.Input())
	assert.Equal(t, out, g.Output())
	assert.Empty(t, p.setCalls, "no defaults means no mutating call")
}

func TestInitAppliesDefaultsAndKeepsPristineSnapshots(t *testing.T) {
	p := newFakeProvider(cooked(), cooked())
	p.defaultOut = func(s Snapshot) Snapshot {
		f := s.Flags()
		f.Output |= 0b100
		return NewSnapshot(f, nil, s.Profile())
	}

	g := New(p).Init()

	require.Len(t, p.setCalls, 1)
	assert.Equal(t, Output.Handle(), p.setCalls[0].h)
	assert.Equal(t, uint64(0b101), p.modes[Output.Handle()].Flags().Output)
	assert.Equal(t, cooked(), g.Output(), "guard keeps the mode from before the defaults")

	g.Release()
	assert.Equal(t, cooked(), p.modes[Output.Handle()])
}

func TestInitWithoutDefaults(t *testing.T) {
	p := newFakeProvider(cooked(), cooked())
	p.defaultIn = func(s Snapshot) Snapshot { return s.MakeRaw() }

	New(p).Init(WithoutDefaults())

	assert.Empty(t, p.setCalls)
}

func TestInitIgnoresDefaultFailures(t *testing.T) {
	p := newFakeProvider(cooked(), cooked())
	p.defaultIn = func(s Snapshot) Snapshot { return s.WithSignals(false) }
	p.setErrOnce = map[Handle]error{Input.Handle(): errBroken}

	g := New(p).Init()

	assert.False(t, g.Degraded())
	assert.Equal(t, cooked(), p.modes[Input.Handle()])
}

func TestDegradedGuardNeverMutates(t *testing.T) {
	p := newFakeProvider(cooked(), cooked())
	p.attrErr = errBroken

	g := New(p).Init()
	require.True(t, g.Degraded())

	assert.False(t, g.SetRawInputMode(true))
	assert.False(t, g.SetRawInputMode(false))
	assert.Error(t, g.MakeRaw(false))
	g.Release()

	assert.Empty(t, p.setCalls)
}

func TestDegradedWhenOutputCaptureFails(t *testing.T) {
	p := newFakeProvider(cooked(), cooked())
	delete(p.modes, Output.Handle())

	g := New(p).Init()

	assert.True(t, g.Degraded())
	g.Release()
	assert.Empty(t, p.setCalls)
}

func TestRawInputToggleIsSymmetric(t *testing.T) {
	p := newFakeProvider(cooked(), cooked())
	g := New(p).Init()
	afterInit := p.modes[Input.Handle()]

	require.True(t, g.SetRawInputMode(true))
	raw := p.modes[Input.Handle()]
	assert.False(t, raw.LineInput())
	assert.Equal(t, afterInit.Flags().Input, raw.Flags().Input, "only the line group changes")
	assert.Equal(t, afterInit.Flags().Local&stubProfile.Signal.Local, raw.Flags().Local&stubProfile.Signal.Local)

	require.True(t, g.SetRawInputMode(false))
	assert.Equal(t, afterInit, p.modes[Input.Handle()])
}

func TestRawInputToggleRestoresPartialLineGroup(t *testing.T) {
	// Canonical on, echo off (password prompt style).
	in := NewSnapshot(Flags{Local: 0b0011}, nil, stubProfile)
	p := newFakeProvider(in, cooked())
	g := New(p).Init()

	require.True(t, g.SetRawInputMode(true))
	require.True(t, g.SetRawInputMode(false))

	assert.Equal(t, in, p.modes[Input.Handle()])
}

func TestRawInputToggleRepeatIsNoop(t *testing.T) {
	p := newFakeProvider(cooked(), cooked())
	g := New(p).Init()

	require.True(t, g.SetRawInputMode(true))
	calls := len(p.setCalls)
	require.True(t, g.SetRawInputMode(true))
	assert.Len(t, p.setCalls, calls)

	require.True(t, g.SetRawInputMode(false))
	calls = len(p.setCalls)
	require.True(t, g.SetRawInputMode(false))
	assert.Len(t, p.setCalls, calls)
}

func TestRawInputToggleReportsApplyFailure(t *testing.T) {
	p := newFakeProvider(cooked(), cooked())
	g := New(p).Init()
	p.setErr = errBroken

	assert.False(t, g.SetRawInputMode(true))
	assert.Equal(t, cooked(), p.modes[Input.Handle()])

	p.setErr = nil
	assert.True(t, g.SetRawInputMode(true), "a failed toggle can be retried")
}

func TestCookedFromUnknownStateSetsFullGroup(t *testing.T) {
	p := newFakeProvider(cooked().WithLineInput(false), cooked())
	g := New(p).Init()

	require.True(t, g.SetRawInputMode(false))

	assert.True(t, p.modes[Input.Handle()].Flags().Local&stubProfile.Line.Local == stubProfile.Line.Local)
}

func TestMakeRawThenRelease(t *testing.T) {
	p := newFakeProvider(cooked(), cooked())
	g := New(p).Init()

	require.NoError(t, g.MakeRaw(false))
	assert.Equal(t, cooked().MakeRaw(), p.modes[Input.Handle()])

	g.Release()
	assert.Equal(t, cooked(), p.modes[Input.Handle()])
}

func TestMakeRawKeepSignals(t *testing.T) {
	p := newFakeProvider(cooked(), cooked())
	g := New(p).Init()

	require.NoError(t, g.MakeRaw(true))
	got := p.modes[Input.Handle()]
	assert.Equal(t, stubProfile.Signal.Local, got.Flags().Local&stubProfile.Signal.Local)
	assert.False(t, got.LineInput())

	require.True(t, g.SetRawInputMode(false))
	assert.True(t, p.modes[Input.Handle()].LineInput())
}

func TestReleaseRestoresOutputThenInput(t *testing.T) {
	p := newFakeProvider(cooked(), cooked())
	g := New(p).Init(WithoutDefaults())
	require.True(t, g.SetRawInputMode(true))
	p.setCalls = nil

	g.Release()

	require.Len(t, p.setCalls, 2)
	assert.Equal(t, Output.Handle(), p.setCalls[0].h)
	assert.Equal(t, Input.Handle(), p.setCalls[1].h)
	assert.Equal(t, cooked(), p.modes[Input.Handle()])
	assert.True(t, g.Released())
}

func TestReleaseRunsOnce(t *testing.T) {
	p := newFakeProvider(cooked(), cooked())
	g := New(p).Init()

	g.Release()
	g.Release()

	assert.Len(t, p.setCalls, 2)
	assert.False(t, g.SetRawInputMode(true))
	assert.Len(t, p.setCalls, 2)
}

func TestReleaseSwallowsErrors(t *testing.T) {
	p := newFakeProvider(cooked(), cooked())
	g := New(p).Init()
	p.setErr = errBroken

	assert.NotPanics(t, g.Release)
	assert.Len(t, p.setCalls, 2, "input is restored even when output fails")
}

func TestReleaseInDefer(t *testing.T) {
	p := newFakeProvider(cooked(), cooked())

	func() {
		g := New(p).Init()
		defer g.Release()
		require.True(t, g.SetRawInputMode(true))
	}()

	assert.Equal(t, cooked(), p.modes[Input.Handle()])
}
