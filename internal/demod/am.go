package demod

import "github.com/kf7sdr/radiocore/internal/iq"

const amLpfHz = 5000

// AmDemod recovers audio as |z|, lowpassed at 5 kHz and DC-blocked.
type AmDemod struct {
	lpf *iq.Biquad
	dc  *iq.DCBlocker
}

// NewAmDemod builds an AM envelope demodulator at sample rate fs.
func NewAmDemod(fs float64) *AmDemod {
	return &AmDemod{
		lpf: iq.NewBiquad(iq.NewCoeffs(iq.Lowpass, fs, amLpfHz, 0.707, 0)),
		dc:  iq.NewDCBlocker(iq.DefaultDCAlpha),
	}
}

// Reset clears filter state.
func (d *AmDemod) Reset() {
	d.lpf.Reset()
	d.dc.Reset()
}

// Process demodulates one IQ sample to real audio.
func (d *AmDemod) Process(s iq.Sample) float64 {
	env := s.Magnitude()
	return d.dc.Process(d.lpf.Process(env))
}

// AmMod implements (1 + m*audio) * cos(wc*t), with the modulation index m
// clamped to [0, 1] to avoid over-modulation.
type AmMod struct {
	carrier *iq.NCO
	index   float64
}

// NewAmMod builds an AM modulator with carrier offset carrierHz and
// modulation index m (clamped to [0,1]).
func NewAmMod(fs, carrierHz, m float64) *AmMod {
	return &AmMod{carrier: iq.NewNCO(carrierHz, fs), index: clampIndex(m)}
}

func clampIndex(m float64) float64 {
	if m < 0 {
		return 0
	}
	if m > 1 {
		return 1
	}
	return m
}

// SetModulationIndex updates m (clamped to [0,1]).
func (m *AmMod) SetModulationIndex(idx float64) { m.index = clampIndex(idx) }

// Process modulates one real audio sample onto the carrier.
func (m *AmMod) Process(audio float64) iq.Sample {
	c := m.carrier.NextIQ()
	env := 1 + m.index*audio
	return c.Scale(env)
}
