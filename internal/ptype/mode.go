package ptype

// Mode is an operating mode: LSB, USB, CW, CW-R, AM or FM.
type Mode int

const (
	ModeLSB Mode = iota
	ModeUSB
	ModeCW
	ModeCWR
	ModeAM
	ModeFM
)

// modeInfo carries the per-mode constants the radio state and receive
// chain both need: default audio bandwidth, BFO offset sign (+1/-1), and
// whether the sideband is inverted with respect to the dial frequency.
type modeInfo struct {
	name           string
	defaultBwHz    int
	bfoSign        int
	invertedSideband bool
}

var modeTable = map[Mode]modeInfo{
	ModeLSB: {"LSB", 2400, -1, true},
	ModeUSB: {"USB", 2400, +1, false},
	ModeCW:  {"CW", 500, +1, false},
	ModeCWR: {"CW-R", 500, -1, true},
	ModeAM:  {"AM", 6000, 0, false},
	ModeFM:  {"FM", 12000, 0, false},
}

// DefaultBandwidthHz returns the mode's default audio bandwidth.
func (m Mode) DefaultBandwidthHz() int { return modeTable[m].defaultBwHz }

// BfoSign returns +1, -1 or 0 for the mode's BFO offset direction.
func (m Mode) BfoSign() int { return modeTable[m].bfoSign }

// InvertedSideband reports whether demodulated audio needs sideband
// inversion relative to the dial frequency.
func (m Mode) InvertedSideband() bool { return modeTable[m].invertedSideband }

func (m Mode) String() string {
	if info, ok := modeTable[m]; ok {
		return info.name
	}
	return "?"
}

// Next cycles LSB -> USB -> CW -> CW-R -> AM -> FM -> LSB.
func (m Mode) Next() Mode {
	switch m {
	case ModeLSB:
		return ModeUSB
	case ModeUSB:
		return ModeCW
	case ModeCW:
		return ModeCWR
	case ModeCWR:
		return ModeAM
	case ModeAM:
		return ModeFM
	default:
		return ModeLSB
	}
}
