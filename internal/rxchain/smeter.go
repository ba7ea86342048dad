package rxchain

import (
	"fmt"
	"math"
)

// SMeter converts an envelope or AGC-gain-derived level to dB and reports
// it as S-units, with a single-pole smoothed reading for display.
type SMeter struct {
	tauCoeff float64
	smoothed float64
}

// NewSMeter builds an S-meter with a single-pole IIR time constant in ms.
func NewSMeter(fs, timeConstantMs float64) *SMeter {
	return &SMeter{tauCoeff: tauCoeff(timeConstantMs, fs)}
}

// dBFromLevel converts a linear envelope/gain level to dB, floored well
// below the noise floor to avoid -Inf for a silent input.
func dBFromLevel(level float64) float64 {
	if level <= 1e-9 {
		return -180
	}
	return 20 * math.Log10(level)
}

// Update feeds one new level sample (linear) into the smoothing filter and
// returns the raw instantaneous reading in dB.
func (s *SMeter) Update(level float64) float64 {
	db := dBFromLevel(level)
	s.smoothed += s.tauCoeff * (db - s.smoothed)
	return db
}

// Smoothed returns the time-averaged dB reading.
func (s *SMeter) Smoothed() float64 { return s.smoothed }

// SUnits maps a dB level to the documented S-unit scale:
// s_units = (level_dB + 54) / 6.
func SUnits(levelDb float64) float64 {
	return (levelDb + 54) / 6
}

// FormatSUnits renders S-units as "S<n>" for n in 0..9, or "S9+<k>dB" for
// k = 6*(units-9) when units exceed 9.
func FormatSUnits(units float64) string {
	if units <= 9 {
		n := int(math.Round(units))
		if n < 0 {
			n = 0
		}
		return fmt.Sprintf("S%d", n)
	}
	k := 6 * (units - 9)
	return fmt.Sprintf("S9+%ddB", int(math.Round(k)))
}
