package ptype

// Band is one of the closed set of amateur bands this rig tunes.
type Band int

const (
	Band80m Band = iota
	Band40m
	Band30m
	Band20m
	Band17m
	Band15m
	BandUnknown
)

type bandInfo struct {
	name       string
	startHz    int64
	endHz      int64
	lpfIndex   int
	defaultMode Mode
}

var bandTable = []bandInfo{
	{"80m", 3_500_000, 4_000_000, 0, ModeLSB},
	{"40m", 7_000_000, 7_300_000, 1, ModeLSB},
	{"30m", 10_100_000, 10_150_000, 2, ModeCW},
	{"20m", 14_000_000, 14_350_000, 2, ModeUSB},
	{"17m", 18_068_000, 18_168_000, 3, ModeUSB},
	{"15m", 21_000_000, 21_450_000, 4, ModeUSB},
}

// FromFrequency derives the Band containing f, or BandUnknown if f falls
// in a gap between bands (e.g. a guard region this rig still lets you
// tune through between allocations).
func FromFrequency(f Frequency) Band {
	hz := f.Hz()
	for i, b := range bandTable {
		if hz >= b.startHz && hz <= b.endHz {
			return Band(i)
		}
	}
	return BandUnknown
}

// LpfIndex returns the low-pass-filter bank index (0..4) selected after
// the PA for this band. BandUnknown has no valid filter and returns -1.
func (b Band) LpfIndex() int {
	if int(b) < 0 || int(b) >= len(bandTable) {
		return -1
	}
	return bandTable[b].lpfIndex
}

// DefaultMode returns the mode a fresh tune into this band should start in.
func (b Band) DefaultMode() Mode {
	if int(b) < 0 || int(b) >= len(bandTable) {
		return ModeUSB
	}
	return bandTable[b].defaultMode
}

// Range returns the band's [start, end] Hz edges.
func (b Band) Range() (startHz, endHz int64) {
	if int(b) < 0 || int(b) >= len(bandTable) {
		return 0, 0
	}
	return bandTable[b].startHz, bandTable[b].endHz
}

func (b Band) String() string {
	if int(b) < 0 || int(b) >= len(bandTable) {
		return "unknown"
	}
	return bandTable[b].name
}
