// Package ptype holds the small value types shared across the receive
// chain, the radio state machine, and the CAT protocol: Frequency, Band,
// Mode, TuningStep, PowerLevel and SwrReading.
package ptype

import "fmt"

// MinHz and MaxHz bound every Frequency this module will construct. The
// default range covers the 80m through 15m amateur bands used by the
// reference rig; a firmware build targeting other bands widens these.
const (
	MinHz = 3_500_000
	MaxHz = 21_450_000
)

// Frequency is an integer-Hz value known to lie within [MinHz, MaxHz].
// The zero value is not a valid Frequency; always obtain one through
// NewFrequency or a method that is documented to preserve the invariant.
type Frequency int64

// NewFrequency validates hz against the configured band range. It never
// panics; out-of-range input simply yields ok=false.
func NewFrequency(hz int64) (Frequency, bool) {
	if hz < MinHz || hz > MaxHz {
		return 0, false
	}
	return Frequency(hz), true
}

// Hz returns the plain integer Hertz value.
func (f Frequency) Hz() int64 { return int64(f) }

// Add returns f+delta saturated to [MinHz, MaxHz].
func (f Frequency) Add(deltaHz int64) Frequency {
	hz := int64(f) + deltaHz
	if hz < MinHz {
		hz = MinHz
	}
	if hz > MaxHz {
		hz = MaxHz
	}
	return Frequency(hz)
}

func (f Frequency) String() string {
	return fmt.Sprintf("%d Hz", int64(f))
}
