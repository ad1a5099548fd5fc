package tty

// NCC is the capacity of a snapshot's control-character array. It is at
// least as large as NCCS on every supported unix.
const NCC = 32

// Flags holds the four mode words of a terminal stream. On unix these are
// the termios c_iflag, c_oflag, c_cflag and c_lflag words. On windows the
// console mode of an input handle is kept in Input and the mode of an
// output handle in Output.
type Flags struct {
	Input   uint64
	Output  uint64
	Control uint64
	Local   uint64
}

func (f Flags) and(m Flags) Flags {
	return Flags{f.Input & m.Input, f.Output & m.Output, f.Control & m.Control, f.Local & m.Local}
}

func (f Flags) or(m Flags) Flags {
	return Flags{f.Input | m.Input, f.Output | m.Output, f.Control | m.Control, f.Local | m.Local}
}

func (f Flags) clear(m Flags) Flags {
	return Flags{f.Input &^ m.Input, f.Output &^ m.Output, f.Control &^ m.Control, f.Local &^ m.Local}
}

// Profile describes how raw mode is derived on the device a snapshot was
// captured from.
type Profile struct {
	// Clear is cleared by MakeRaw.
	Clear Flags
	// Set is set by MakeRaw after Clear has been applied.
	Set Flags
	// Line is the canonical input and echo group.
	Line Flags
	// Signal is the signal generation group.
	Signal Flags
	// VMin and VTime index the control characters pinned by MakeRaw to 1
	// and 0. A negative index means the device has no such slot.
	VMin  int
	VTime int
}

// Snapshot is an immutable capture of a terminal stream's mode. Derivations
// return new values; the receiver is never modified. Two snapshots compare
// equal with == exactly when their bits are identical.
type Snapshot struct {
	flags   Flags
	cc      [NCC]byte
	profile Profile
}

// NewSnapshot builds a snapshot from raw parts. Providers use it when
// capturing; tests use it to script fake terminals.
func NewSnapshot(flags Flags, cc []byte, profile Profile) Snapshot {
	s := Snapshot{flags: flags, profile: profile}
	copy(s.cc[:], cc)
	return s
}

func (s Snapshot) Flags() Flags { return s.flags }

func (s Snapshot) Profile() Profile { return s.profile }

// ControlChar returns control character i, or 0 when i is out of range.
func (s Snapshot) ControlChar(i int) byte {
	if i < 0 || i >= NCC {
		return 0
	}
	return s.cc[i]
}

// ControlChars returns a copy of the control-character array.
func (s Snapshot) ControlChars() [NCC]byte { return s.cc }

func (s Snapshot) Equal(o Snapshot) bool { return s == o }

// MakeRaw derives the raw variant of s: input delivered byte by byte with no
// line buffering, echo, signal generation or output post-processing.
// MakeRaw only clears and pins fixed values, so it is idempotent.
func (s Snapshot) MakeRaw() Snapshot {
	s.flags = s.flags.clear(s.profile.Clear).or(s.profile.Set)
	if i := s.profile.VMin; i >= 0 && i < NCC {
		s.cc[i] = 1
	}
	if i := s.profile.VTime; i >= 0 && i < NCC {
		s.cc[i] = 0
	}
	return s
}

// WithSignals returns s with the signal generation group set or cleared.
// It is the explicit option for keeping Ctrl-C and friends working in raw
// mode.
func (s Snapshot) WithSignals(enable bool) Snapshot {
	if enable {
		s.flags = s.flags.or(s.profile.Signal)
	} else {
		s.flags = s.flags.clear(s.profile.Signal)
	}
	return s
}

// WithLineInput returns s with the canonical/echo group fully set or
// cleared. No other bit changes.
func (s Snapshot) WithLineInput(enable bool) Snapshot {
	if enable {
		s.flags = s.flags.or(s.profile.Line)
	} else {
		s.flags = s.flags.clear(s.profile.Line)
	}
	return s
}

// lineBits returns the canonical/echo bits currently set in s.
func (s Snapshot) lineBits() Flags {
	return s.flags.and(s.profile.Line)
}

// withLineBits replaces the canonical/echo group of s with bits.
func (s Snapshot) withLineBits(bits Flags) Snapshot {
	s.flags = s.flags.clear(s.profile.Line).or(bits.and(s.profile.Line))
	return s
}

// LineInput reports whether any bit of the canonical/echo group is set.
func (s Snapshot) LineInput() bool {
	return s.lineBits() != Flags{}
}
