package psk31

import "math"

// Modulator implements the §4.8 transmit-side DSP: a 31.25-baud BPSK
// generator whose phase transitions are shaped by a raised-cosine
// interpolator rather than switching instantaneously, to keep the
// transmitted spectrum narrow.
type Modulator struct {
	fs               float64
	carrierHz        float64
	phase            float64
	samplesPerSymbol float64

	encoder *Encoder

	inSymbol      bool
	symbolElapsed float64
	targetFlip    bool // true if this symbol is a '0' (phase-flip) bit
	startPhase    float64
}

// NewModulator builds a modulator at audio sample rate fs generating a
// tone at carrierHz.
func NewModulator(fs, carrierHz float64) *Modulator {
	return &Modulator{
		fs:               fs,
		carrierHz:        carrierHz,
		samplesPerSymbol: fs / baudRate,
		encoder:          NewEncoder(),
	}
}

// Enqueue queues text for transmission.
func (m *Modulator) Enqueue(text string) { m.encoder.Enqueue(text) }

// Idle reports whether the modulator has no more queued text or
// in-flight symbol to generate.
func (m *Modulator) Idle() bool { return m.encoder.Idle() && !m.inSymbol }

// NextSample returns the next audio sample of the modulated carrier. ok
// is false once Idle.
func (m *Modulator) NextSample() (float64, bool) {
	if !m.inSymbol {
		bit, ok := m.encoder.NextBit()
		if !ok {
			return 0, false
		}
		m.inSymbol = true
		m.symbolElapsed = 0
		m.targetFlip = !bit // varicode '0' bit -> phase flip of pi
		m.startPhase = m.phase
	}

	t := m.symbolElapsed / m.samplesPerSymbol
	shaped := 0.0
	if m.targetFlip {
		shaped = 0.5 * (1 - math.Cos(math.Pi*t))
	}
	carrierPhase := m.startPhase + 2*math.Pi*m.carrierHz*m.symbolElapsed/m.fs + math.Pi*shaped
	out := math.Cos(carrierPhase)

	m.symbolElapsed++
	if m.symbolElapsed >= m.samplesPerSymbol {
		m.phase = wrapPhase(m.startPhase + 2*math.Pi*m.carrierHz*m.samplesPerSymbol/m.fs + boolToPi(m.targetFlip))
		m.inSymbol = false
	}

	return out, true
}

func boolToPi(flip bool) float64 {
	if flip {
		return math.Pi
	}
	return 0
}

func wrapPhase(p float64) float64 {
	for p > math.Pi {
		p -= 2 * math.Pi
	}
	for p < -math.Pi {
		p += 2 * math.Pi
	}
	return p
}
