// Package demod implements the SSB (phasing), AM (envelope), FM
// (arctan-discriminator) and CW demodulators, and their transmit-side
// modulator counterparts. Each owns its own primitives (biquads, Hilbert,
// DC blocker) per internal/iq's no-aliasing convention.
package demod

import (
	"math"

	"github.com/kf7sdr/radiocore/internal/iq"
)

// Sideband selects which combination the phasing demodulator/modulator uses.
type Sideband int

const (
	Usb Sideband = iota
	Lsb
)

// SsbDemod implements the phasing-method SSB demodulator: I and Q are
// bandpassed independently, I is run through the Hilbert transformer, and
// the sideband-selected sum/difference is DC-blocked.
type SsbDemod struct {
	bpI, bpQ *iq.Biquad
	hilbert  *iq.Hilbert
	dc       *iq.DCBlocker
	sideband Sideband
}

// NewSsbDemod builds a phasing demodulator bandpassing I/Q to
// [lowHz, highHz] at sample rate fs.
func NewSsbDemod(fs, lowHz, highHz float64, sb Sideband) *SsbDemod {
	return &SsbDemod{
		bpI:      iq.NewBiquad(bandpassCascade(fs, lowHz, highHz)),
		bpQ:      iq.NewBiquad(bandpassCascade(fs, lowHz, highHz)),
		hilbert:  iq.NewHilbert(),
		dc:       iq.NewDCBlocker(iq.DefaultDCAlpha),
		sideband: sb,
	}
}

func bandpassCascade(fs, lowHz, highHz float64) iq.Coeffs {
	center := math.Sqrt(lowHz * highHz)
	q := center / (highHz - lowHz)
	return iq.NewCoeffs(iq.BandpassPeak, fs, center, q, 0)
}

// SetSideband switches demodulation sense without touching filter state.
func (d *SsbDemod) SetSideband(sb Sideband) { d.sideband = sb }

// Reset clears all owned filter state.
func (d *SsbDemod) Reset() {
	d.bpI.Reset()
	d.bpQ.Reset()
	d.hilbert.Reset()
	d.dc.Reset()
}

// Process demodulates one IQ sample to a real audio sample.
func (d *SsbDemod) Process(s iq.Sample) float64 {
	i := d.bpI.Process(s.I)
	q := d.bpQ.Process(s.Q)
	iHilbert := d.hilbert.Process(i)

	var audio float64
	if d.sideband == Usb {
		audio = iHilbert + q
	} else {
		audio = iHilbert - q
	}
	return d.dc.Process(audio)
}

// SsbMod is the transmit-side SSB phasing modulator: it builds an analytic
// signal from real audio (I = filtered audio, Q = Hilbert(audio)), negating
// Q for LSB.
type SsbMod struct {
	bp       *iq.Biquad
	hilbert  *iq.Hilbert
	sideband Sideband
}

// NewSsbMod builds a phasing modulator bandpassing audio to
// [lowHz, highHz] before splitting into the analytic pair.
func NewSsbMod(fs, lowHz, highHz float64, sb Sideband) *SsbMod {
	return &SsbMod{
		bp:       iq.NewBiquad(bandpassCascade(fs, lowHz, highHz)),
		hilbert:  iq.NewHilbert(),
		sideband: sb,
	}
}

// SetSideband switches modulation sense.
func (m *SsbMod) SetSideband(sb Sideband) { m.sideband = sb }

// Reset clears filter state.
func (m *SsbMod) Reset() {
	m.bp.Reset()
	m.hilbert.Reset()
}

// Process turns one real audio sample into an analytic IQ sample.
func (m *SsbMod) Process(audio float64) iq.Sample {
	i := m.bp.Process(audio)
	q := m.hilbert.Process(i)
	if m.sideband == Lsb {
		q = -q
	}
	return iq.Sample{I: i, Q: q}
}
