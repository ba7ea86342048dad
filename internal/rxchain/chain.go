package rxchain

import (
	"math"

	"github.com/kf7sdr/radiocore/internal/iq"
)

// FilterMode tags which mode-specific filter stage the chain currently
// runs. It deliberately collapses ptype.ModeLSB/ModeUSB/ModeCW/ModeCWR
// into the two shapes that actually differ (SSB, CW); the sideband sign
// itself is handled by the demodulator, not this audio-only stage.
type FilterMode int

const (
	FilterBypass FilterMode = iota
	FilterCW
	FilterSSB
	FilterAM
	FilterFM
)

// CwBandwidth is one of the five documented CW filter widths.
type CwBandwidth int

const (
	Cw50Hz CwBandwidth = iota
	Cw100Hz
	Cw200Hz
	Cw400Hz
	Cw800Hz
)

func (b CwBandwidth) Hz() float64 {
	switch b {
	case Cw50Hz:
		return 50
	case Cw100Hz:
		return 100
	case Cw200Hz:
		return 200
	case Cw400Hz:
		return 400
	case Cw800Hz:
		return 800
	default:
		return 200
	}
}

// SsbBandwidth is one of the four documented SSB passband presets.
type SsbBandwidth int

const (
	SsbNarrow SsbBandwidth = iota
	SsbStandard
	SsbWide
	SsbExtraWide
)

func (b SsbBandwidth) HighHz() float64 {
	switch b {
	case SsbNarrow:
		return 1800
	case SsbStandard:
		return 2400
	case SsbWide:
		return 2700
	case SsbExtraWide:
		return 3000
	default:
		return 2400
	}
}

const ssbLowCutoffHz = 300

// AmBandwidth is one of the three documented AM passband presets.
type AmBandwidth int

const (
	AmNarrow AmBandwidth = iota
	AmStandard
	AmWide
)

func (b AmBandwidth) Hz() float64 {
	switch b {
	case AmNarrow:
		return 3000
	case AmStandard:
		return 6000
	case AmWide:
		return 9000
	default:
		return 6000
	}
}

// FmDeemphasis is one of the two documented FM time constants, in seconds.
type FmDeemphasis int

const (
	FmDeemphasis50us FmDeemphasis = iota
	FmDeemphasis75us
)

func (d FmDeemphasis) Tau() float64 {
	if d == FmDeemphasis50us {
		return 50e-6
	}
	return 75e-6
}

// Chain is the mode-polymorphic receive audio pipeline: DC block -> mode
// filter stage -> AGC -> volume. Each mode's biquads are owned exclusively
// by this struct; switching modes doesn't touch another mode's state.
type Chain struct {
	fs float64

	dc  *iq.DCBlocker
	agc *AGC
	sm  *SMeter

	mode FilterMode

	cwFilter  *iq.Biquad
	cwBw      CwBandwidth
	cwCenter  float64

	ssbHpf *iq.Biquad
	ssbLpf *iq.Biquad
	ssbBw  SsbBandwidth

	amLpf *iq.Biquad
	amBw  AmBandwidth

	fmLpf   *iq.Biquad
	fmTau   FmDeemphasis

	volume float64
	muted  bool
}

// NewChain builds a receive audio chain at the given sample rate.
func NewChain(fs float64) *Chain {
	c := &Chain{
		fs:     fs,
		dc:     iq.NewDCBlocker(iq.DefaultDCAlpha),
		agc:    NewAGC(fs, AgcMedium, 0.3, -20, 80),
		sm:     NewSMeter(fs, 100),
		volume: 1.0,
		cwFilter: iq.NewBiquad(iq.UnityCoeffs),
		ssbHpf:   iq.NewBiquad(iq.UnityCoeffs),
		ssbLpf:   iq.NewBiquad(iq.UnityCoeffs),
		amLpf:    iq.NewBiquad(iq.UnityCoeffs),
		fmLpf:    iq.NewBiquad(iq.UnityCoeffs),
		cwCenter: 700,
	}
	c.SetMode(FilterBypass)
	c.SetCwBandwidth(Cw200Hz)
	c.SetSsbBandwidth(SsbStandard)
	c.SetAmBandwidth(AmStandard)
	c.SetFmDeemphasis(FmDeemphasis75us)
	return c
}

// SetMode switches which filter stage is applied; AGC state is untouched.
func (c *Chain) SetMode(m FilterMode) { c.mode = m }

// SetVolume sets the post-AGC linear volume multiplier.
func (c *Chain) SetVolume(v float64) { c.volume = v }

// SetMuted forces output to zero while S-meter updates continue.
func (c *Chain) SetMuted(m bool) { c.muted = m }

// SetCwCenter retunes the CW peaking filter's center frequency (300-1200 Hz)
// without clearing AGC state.
func (c *Chain) SetCwCenter(hz float64) {
	c.cwCenter = hz
	c.rebuildCw()
}

// SetCwBandwidth rebuilds the CW biquad for a new bandwidth preset.
func (c *Chain) SetCwBandwidth(bw CwBandwidth) {
	c.cwBw = bw
	c.rebuildCw()
}

func (c *Chain) rebuildCw() {
	q := c.cwCenter / c.cwBw.Hz()
	c.cwFilter.SetCoeffs(iq.NewCoeffs(iq.BandpassPeak, c.fs, c.cwCenter, q, 0))
}

// SetSsbBandwidth rebuilds the SSB HPF/LPF cascade for a new width preset.
func (c *Chain) SetSsbBandwidth(bw SsbBandwidth) {
	c.ssbBw = bw
	c.ssbHpf.SetCoeffs(iq.NewCoeffs(iq.Highpass, c.fs, ssbLowCutoffHz, 0.707, 0))
	c.ssbLpf.SetCoeffs(iq.NewCoeffs(iq.Lowpass, c.fs, bw.HighHz(), 0.707, 0))
}

// SetAmBandwidth rebuilds the AM lowpass for a new width preset (cutoff is
// bandwidth/2, since AM audio bandwidth is symmetric about the carrier).
func (c *Chain) SetAmBandwidth(bw AmBandwidth) {
	c.amBw = bw
	c.amLpf.SetCoeffs(iq.NewCoeffs(iq.Lowpass, c.fs, bw.Hz()/2, 0.707, 0))
}

// SetFmDeemphasis rebuilds the FM de-emphasis lowpass for a new time constant.
func (c *Chain) SetFmDeemphasis(tau FmDeemphasis) {
	c.fmTau = tau
	corner := 1 / (2 * math.Pi * tau.Tau())
	c.fmLpf.SetCoeffs(iq.NewCoeffs(iq.Lowpass, c.fs, corner, 0.707, 0))
}

// Reset clears all filter z-state and AGC (but not mode/bandwidth settings).
func (c *Chain) Reset() {
	c.dc.Reset()
	c.cwFilter.Reset()
	c.ssbHpf.Reset()
	c.ssbLpf.Reset()
	c.amLpf.Reset()
	c.fmLpf.Reset()
	c.agc.Reset()
}

// SetAgcPreset reconfigures AGC timing.
func (c *Chain) SetAgcPreset(p AgcPreset) { c.agc.SetPreset(p) }

// SMeterDb returns the smoothed S-meter reading in dB.
func (c *Chain) SMeterDb() float64 { return c.sm.Smoothed() }

// Process runs one real-audio sample through the chain and returns the
// (possibly muted) output. S-meter tracks input magnitude even when muted.
func (c *Chain) Process(x float64) float64 {
	blocked := c.dc.Process(x)

	var filtered float64
	switch c.mode {
	case FilterCW:
		filtered = c.cwFilter.Process(blocked)
	case FilterSSB:
		filtered = c.ssbLpf.Process(c.ssbHpf.Process(blocked))
	case FilterAM:
		filtered = c.amLpf.Process(blocked)
	case FilterFM:
		filtered = c.fmLpf.Process(blocked)
	default: // FilterBypass
		filtered = blocked
	}

	out := c.agc.Process(filtered)
	c.sm.Update(c.agc.Envelope())

	if c.muted {
		return 0
	}
	return out * c.volume
}
