// Package rxchain implements the receive audio pipeline: the mode-specific
// filter stage, AGC, S-meter, and the optional noise-reduction chain
// (impulse blanker, LMS canceller, spectral gate) that sits ahead of it.
package rxchain

import "math"

// AgcPreset names one of the three documented attack/decay/hang presets.
type AgcPreset int

const (
	AgcOff AgcPreset = iota
	AgcFast
	AgcMedium
	AgcSlow
)

type agcTiming struct {
	attackMs, decayMs, hangMs float64
}

var agcPresetTiming = map[AgcPreset]agcTiming{
	AgcFast:   {attackMs: 2, decayMs: 100, hangMs: 50},
	AgcMedium: {attackMs: 5, decayMs: 500, hangMs: 200},
	AgcSlow:   {attackMs: 10, decayMs: 2000, hangMs: 500},
}

// AGC is an envelope-follower automatic gain control stage. Attack/decay
// coefficients are derived from 1 - exp(-1/tau_samples); gain is clamped
// to [minDb, maxDb] and itself smoothed with the attack/decay pair so gain
// changes don't thump.
type AGC struct {
	fs float64

	attackCoeff float64
	decayCoeff  float64
	hangSamples int

	targetLevel float64
	minGain     float64
	maxGain     float64

	envelope    float64
	hangCounter int
	gain        float64
}

// NewAGC builds an AGC at the given sample rate and preset, targeting
// targetLevel (linear, 0..1) with the gain clamped to [minDb, maxDb].
func NewAGC(fs float64, preset AgcPreset, targetLevel, minDb, maxDb float64) *AGC {
	a := &AGC{fs: fs, targetLevel: targetLevel, gain: 1}
	a.minGain = math.Pow(10, minDb/20)
	a.maxGain = math.Pow(10, maxDb/20)
	a.SetPreset(preset)
	return a
}

func tauCoeff(ms, fs float64) float64 {
	if ms <= 0 {
		return 1
	}
	tauSamples := ms / 1000 * fs
	if tauSamples <= 0 {
		return 1
	}
	return 1 - math.Exp(-1/tauSamples)
}

// SetPreset reconfigures the attack/decay/hang timing without resetting
// the current envelope or gain.
func (a *AGC) SetPreset(preset AgcPreset) {
	t, ok := agcPresetTiming[preset]
	if !ok {
		// AgcOff: freeze envelope and gain at their current values (unity
		// for a new or reset AGC) by using an effectively infinite time constant.
		a.attackCoeff = 0
		a.decayCoeff = 0
		a.hangSamples = 0
		return
	}
	a.attackCoeff = tauCoeff(t.attackMs, a.fs)
	a.decayCoeff = tauCoeff(t.decayMs, a.fs)
	a.hangSamples = int(t.hangMs / 1000 * a.fs)
}

// Reset clears envelope, hang counter and gain.
func (a *AGC) Reset() {
	a.envelope = 0
	a.hangCounter = 0
	a.gain = 1
}

// Envelope returns the current envelope estimate (for the S-meter).
func (a *AGC) Envelope() float64 { return a.envelope }

// Gain returns the current smoothed gain.
func (a *AGC) Gain() float64 { return a.gain }

// Process runs one sample through the AGC and returns x*gain.
func (a *AGC) Process(x float64) float64 {
	mag := math.Abs(x)

	switch {
	case mag > a.envelope:
		a.envelope += a.attackCoeff * (mag - a.envelope)
		a.hangCounter = a.hangSamples
	case a.hangCounter > 0:
		a.hangCounter--
	default:
		a.envelope += a.decayCoeff * (mag - a.envelope)
	}

	targetGain := a.maxGain
	if a.envelope > 1e-12 {
		targetGain = a.targetLevel / a.envelope
	}
	if targetGain < a.minGain {
		targetGain = a.minGain
	}
	if targetGain > a.maxGain {
		targetGain = a.maxGain
	}

	if targetGain < a.gain {
		a.gain += a.attackCoeff * (targetGain - a.gain)
	} else {
		a.gain += a.decayCoeff * (targetGain - a.gain)
	}

	return x * a.gain
}
