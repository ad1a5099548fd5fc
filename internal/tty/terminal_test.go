package tty

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureApplyRoundTrip(t *testing.T) {
	p := newFakeProvider(cooked(), cooked())
	term := New(p)

	snap, err := term.Capture(Input)
	require.NoError(t, err)
	require.NoError(t, term.Apply(Input, snap))

	got, err := term.Capture(Input)
	require.NoError(t, err)
	assert.Equal(t, snap, got)
}

func TestCaptureWrapsQueryFailure(t *testing.T) {
	p := newFakeProvider(cooked(), cooked())
	p.attrErr = errBroken

	_, err := New(p).Capture(Output)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQueryFailed)
	assert.ErrorIs(t, err, errBroken)
}

func TestApplyWrapsApplyFailure(t *testing.T) {
	p := newFakeProvider(cooked(), cooked())
	p.setErr = errBroken

	err := New(p).Apply(Input, cooked().MakeRaw())

	assert.ErrorIs(t, err, ErrApplyFailed)
}

func TestIsTTYNeverFails(t *testing.T) {
	p := newFakeProvider(cooked(), cooked())
	term := New(p)

	assert.True(t, term.IsTTY(Input))
	p.attrErr = errBroken
	assert.False(t, term.IsTTY(Input))
	assert.False(t, term.IsTerminalFile(nil))
}

func TestSize(t *testing.T) {
	p := newFakeProvider(cooked(), cooked())

	cols, rows, err := New(p).Size(Output)

	require.NoError(t, err)
	assert.Equal(t, 80, cols)
	assert.Equal(t, 24, rows)
}

func TestOpenModes(t *testing.T) {
	p := newFakeProvider(cooked(), cooked())
	term := New(p)

	for _, open := range []func() (*os.File, error){term.GetTTY, term.GetReadTTY, term.GetWriteTTY} {
		f, err := open()
		require.NoError(t, err)
		name := f.Name()
		require.NoError(t, f.Close())
		require.NoError(t, os.Remove(name))
	}

	assert.Equal(t, []OpenMode{OpenReadWrite, OpenRead, OpenWrite}, p.opened)
}

func TestOpenNoControllingTerminal(t *testing.T) {
	p := newFakeProvider(cooked(), cooked())
	p.openErr = ErrNotATerminal

	_, err := New(p).GetTTY()

	assert.ErrorIs(t, err, ErrNotATerminal)
}

func TestEnvDevicePath(t *testing.T) {
	env := map[string]string{}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	_, err := envDevicePath(lookup)
	assert.ErrorIs(t, err, ErrNotATerminal)

	env["TTY"] = ""
	_, err = envDevicePath(lookup)
	assert.ErrorIs(t, err, ErrNotATerminal)

	env["TTY"] = "/scheme/pty/3"
	path, err := envDevicePath(lookup)
	require.NoError(t, err)
	assert.Equal(t, "/scheme/pty/3", path)
}

func TestOpenDeviceMapsErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	_, err := openDevice(missing, OpenRead, func(error) bool { return true })
	assert.ErrorIs(t, err, ErrNotATerminal)

	_, err = openDevice(missing, OpenRead, func(error) bool { return false })
	assert.ErrorIs(t, err, ErrHandleInvalid)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParseStream(t *testing.T) {
	s, err := ParseStream("stdout")
	require.NoError(t, err)
	assert.Equal(t, Output, s)

	s, err = ParseStream("input")
	require.NoError(t, err)
	assert.Equal(t, Input, s)

	_, err = ParseStream("stderr")
	assert.Error(t, err)
	assert.Equal(t, "stream(7)", Stream(7).String())
}
