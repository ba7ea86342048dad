package demod

import (
	"math"

	"github.com/kf7sdr/radiocore/internal/iq"
)

const fmDeemphasisTau = 75e-6

// FmDemod is the arctan-differentiator FM demodulator: it multiplies the
// current IQ sample by the conjugate of the previous one and scales the
// resulting phase by fs/(2*pi*deltaF), then applies de-emphasis and a DC
// block.
type FmDemod struct {
	prev    iq.Sample
	hasPrev bool
	scale   float64
	deemph  *iq.Biquad
	dc      *iq.DCBlocker
}

// NewFmDemod builds an FM demodulator at sample rate fs with peak
// deviation deltaFHz used to scale the instantaneous-phase output to a
// normalized audio range.
func NewFmDemod(fs, deltaFHz float64) *FmDemod {
	corner := 1 / (2 * math.Pi * fmDeemphasisTau)
	return &FmDemod{
		scale:  fs / (2 * math.Pi * deltaFHz),
		deemph: iq.NewBiquad(iq.NewCoeffs(iq.Lowpass, fs, corner, 0.707, 0)),
		dc:     iq.NewDCBlocker(iq.DefaultDCAlpha),
	}
}

// Reset clears history and filter state.
func (d *FmDemod) Reset() {
	d.prev = iq.Sample{}
	d.hasPrev = false
	d.deemph.Reset()
	d.dc.Reset()
}

// Process demodulates one IQ sample to real audio.
func (d *FmDemod) Process(s iq.Sample) float64 {
	if !d.hasPrev {
		d.prev = s
		d.hasPrev = true
		return 0
	}
	product := s.Mul(d.prev.Conj())
	d.prev = s

	phase := math.Atan2(product.Q, product.I) * d.scale
	return d.dc.Process(d.deemph.Process(phase))
}

// FmMod is a direct-FM modulator: the carrier NCO's instantaneous
// frequency is offset by audio*deltaFHz each sample.
type FmMod struct {
	fs, deltaFHz, carrierHz float64
	phase                   float64
}

// NewFmMod builds an FM modulator at sample rate fs, carrier offset
// carrierHz, and peak deviation deltaFHz.
func NewFmMod(fs, carrierHz, deltaFHz float64) *FmMod {
	return &FmMod{fs: fs, deltaFHz: deltaFHz, carrierHz: carrierHz}
}

// Reset zeros the phase accumulator.
func (m *FmMod) Reset() { m.phase = 0 }

// Process modulates one real audio sample, returning the resulting IQ sample.
func (m *FmMod) Process(audio float64) iq.Sample {
	freq := m.carrierHz + audio*m.deltaFHz
	m.phase += 2 * math.Pi * freq / m.fs
	if m.phase > math.Pi {
		m.phase -= 2 * math.Pi
	} else if m.phase < -math.Pi {
		m.phase += 2 * math.Pi
	}
	s, c := math.Sincos(m.phase)
	return iq.Sample{I: c, Q: s}
}
