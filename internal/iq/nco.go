package iq

import "math"

// NCO is a numerically controlled oscillator: a phase accumulator wrapped
// to [-pi, pi] that advances by a frequency-derived increment each step.
type NCO struct {
	phase float64
	incr  float64
	fs    float64
}

// NewNCO builds an NCO for the given frequency (Hz) and sample rate (Hz).
func NewNCO(freqHz, fs float64) *NCO {
	n := &NCO{fs: fs}
	n.SetFrequency(freqHz)
	return n
}

// SetFrequency retunes the oscillator without resetting its phase.
func (n *NCO) SetFrequency(freqHz float64) {
	n.incr = 2 * math.Pi * freqHz / n.fs
}

// Reset zeros the phase accumulator.
func (n *NCO) Reset() { n.phase = 0 }

// NextIQ returns (cos(phase), sin(phase)) and advances the phase by the
// per-sample increment, wrapping to [-pi, pi].
func (n *NCO) NextIQ() Sample {
	s, c := math.Sincos(n.phase)
	n.phase += n.incr
	if n.phase > math.Pi {
		n.phase -= 2 * math.Pi
	} else if n.phase < -math.Pi {
		n.phase += 2 * math.Pi
	}
	return Sample{I: c, Q: s}
}

// Phase returns the current phase in [-pi, pi].
func (n *NCO) Phase() float64 { return n.phase }

// QuadOsc is the coupled-form quadrature oscillator: it rotates a stored
// (cos, sin) state by a precomputed per-step rotation instead of calling
// trig functions every sample, renormalizing periodically to cancel the
// accumulation of floating-point drift.
type QuadOsc struct {
	cos, sin   float64
	rotCos, rotSin float64
}

// renormEpsilon is how far |state| may drift from 1 before QuadOsc snaps
// it back to the unit circle.
const renormEpsilon = 1e-4

// NewQuadOsc builds a quadrature oscillator for freqHz at sample rate fs.
func NewQuadOsc(freqHz, fs float64) *QuadOsc {
	q := &QuadOsc{cos: 1, sin: 0}
	q.SetFrequency(freqHz, fs)
	return q
}

// SetFrequency recomputes the per-step rotation (cos(delta), sin(delta))
// without touching the current phase state.
func (q *QuadOsc) SetFrequency(freqHz, fs float64) {
	delta := 2 * math.Pi * freqHz / fs
	q.rotSin, q.rotCos = math.Sincos(delta)
}

// Reset returns the oscillator to phase zero.
func (q *QuadOsc) Reset() { q.cos, q.sin = 1, 0 }

// Next rotates the state by the precomputed step and returns it as a
// Sample, renormalizing to unit magnitude when drift exceeds renormEpsilon.
func (q *QuadOsc) Next() Sample {
	newCos := q.cos*q.rotCos - q.sin*q.rotSin
	newSin := q.cos*q.rotSin + q.sin*q.rotCos
	q.cos, q.sin = newCos, newSin

	norm := math.Sqrt(q.cos*q.cos + q.sin*q.sin)
	if d := norm - 1; d > renormEpsilon || d < -renormEpsilon {
		if norm > 0 {
			q.cos /= norm
			q.sin /= norm
		}
	}
	return Sample{I: q.cos, Q: q.sin}
}
