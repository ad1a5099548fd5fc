package tty

import (
	"errors"
	"os"
)

// stubProfile uses small bit positions so tests can reason in binary:
// raw clears bits 1 and 3 of Input, the line group is bits 1 and 3 of
// Local, and signal generation is bit 0 of Local.
var stubProfile = Profile{
	Clear:  Flags{Input: 0b1010, Local: 0b1011},
	Set:    Flags{Control: 0b1000},
	Line:   Flags{Local: 0b1010},
	Signal: Flags{Local: 0b0001},
	VMin:   6,
	VTime:  5,
}

type setCall struct {
	h    Handle
	snap Snapshot
}

// fakeProvider keeps one snapshot per handle and records every mutating
// call.
type fakeProvider struct {
	modes map[Handle]Snapshot

	attrErr    error
	setErr     error
	setErrOnce map[Handle]error

	defaultIn  func(Snapshot) Snapshot
	defaultOut func(Snapshot) Snapshot

	attrCalls int
	setCalls  []setCall
	opened    []OpenMode
	openErr   error
}

func newFakeProvider(in, out Snapshot) *fakeProvider {
	return &fakeProvider{
		modes: map[Handle]Snapshot{
			Input.Handle():  in,
			Output.Handle(): out,
		},
	}
}

func (f *fakeProvider) IsTerminal(h Handle) bool {
	_, ok := f.modes[h]
	return ok && f.attrErr == nil
}

func (f *fakeProvider) Attr(h Handle) (Snapshot, error) {
	f.attrCalls++
	if f.attrErr != nil {
		return Snapshot{}, wrapErr(ErrQueryFailed, "get attributes", h, f.attrErr)
	}
	s, ok := f.modes[h]
	if !ok {
		return Snapshot{}, wrapErr(ErrHandleInvalid, "get attributes", h, nil)
	}
	return s, nil
}

func (f *fakeProvider) SetAttr(h Handle, s Snapshot) error {
	f.setCalls = append(f.setCalls, setCall{h: h, snap: s})
	if err, ok := f.setErrOnce[h]; ok {
		delete(f.setErrOnce, h)
		return wrapErr(ErrApplyFailed, "set attributes", h, err)
	}
	if f.setErr != nil {
		return wrapErr(ErrApplyFailed, "set attributes", h, f.setErr)
	}
	f.modes[h] = s
	return nil
}

func (f *fakeProvider) Size(h Handle) (int, int, error) {
	if _, ok := f.modes[h]; !ok {
		return 0, 0, wrapErr(ErrQueryFailed, "get size", h, nil)
	}
	return 80, 24, nil
}

func (f *fakeProvider) Open(mode OpenMode) (*os.File, error) {
	f.opened = append(f.opened, mode)
	if f.openErr != nil {
		return nil, f.openErr
	}
	return os.CreateTemp("", "fake-tty")
}

func (f *fakeProvider) Defaults(in, out Snapshot) (Snapshot, Snapshot) {
	if f.defaultIn != nil {
		in = f.defaultIn(in)
	}
	if f.defaultOut != nil {
		out = f.defaultOut(out)
	}
	return in, out
}

var errBroken = errors.New("broken console")

// cooked is a stub snapshot with the full line group and signals on.
func cooked() Snapshot {
	return NewSnapshot(Flags{Input: 0b1011, Output: 0b1, Control: 0b0110, Local: 0b1011}, []byte{3, 28, 127, 21, 4, 0, 1}, stubProfile)
}
