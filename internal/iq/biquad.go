package iq

import "math"

// FilterKind selects which RBJ cookbook formula BiquadCoeffs uses.
type FilterKind int

const (
	Lowpass FilterKind = iota
	Highpass
	Bandpass
	BandpassPeak
	Notch
	PeakingEQ
	LowShelf
	HighShelf
)

// Coeffs holds normalized Direct-Form-II-Transposed coefficients
// (a0 already folded into b0..a2).
type Coeffs struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// UnityCoeffs passes the signal through unchanged.
var UnityCoeffs = Coeffs{B0: 1}

// NewCoeffs computes normalized biquad coefficients from the RBJ
// audio-EQ-cookbook formulas. fs is the sample rate, fc the center/corner
// frequency, q the quality factor, and gainDb only matters for the shelf
// and peaking types.
func NewCoeffs(kind FilterKind, fs, fc, q, gainDb float64) Coeffs {
	if fs <= 0 || fc <= 0 || q <= 0 {
		return UnityCoeffs
	}
	w0 := 2 * math.Pi * fc / fs
	sinW0, cosW0 := math.Sin(w0), math.Cos(w0)
	alpha := sinW0 / (2 * q)
	A := math.Pow(10, gainDb/40)

	var b0, b1, b2, a0, a1, a2 float64

	switch kind {
	case Lowpass:
		b0 = (1 - cosW0) / 2
		b1 = 1 - cosW0
		b2 = (1 - cosW0) / 2
		a0 = 1 + alpha
		a1 = -2 * cosW0
		a2 = 1 - alpha
	case Highpass:
		b0 = (1 + cosW0) / 2
		b1 = -(1 + cosW0)
		b2 = (1 + cosW0) / 2
		a0 = 1 + alpha
		a1 = -2 * cosW0
		a2 = 1 - alpha
	case Bandpass:
		// constant 0 dB peak gain variant
		b0 = alpha
		b1 = 0
		b2 = -alpha
		a0 = 1 + alpha
		a1 = -2 * cosW0
		a2 = 1 - alpha
	case BandpassPeak:
		// constant skirt gain, peak = Q
		b0 = sinW0 / 2
		b1 = 0
		b2 = -sinW0 / 2
		a0 = 1 + alpha
		a1 = -2 * cosW0
		a2 = 1 - alpha
	case Notch:
		b0 = 1
		b1 = -2 * cosW0
		b2 = 1
		a0 = 1 + alpha
		a1 = -2 * cosW0
		a2 = 1 - alpha
	case PeakingEQ:
		b0 = 1 + alpha*A
		b1 = -2 * cosW0
		b2 = 1 - alpha*A
		a0 = 1 + alpha/A
		a1 = -2 * cosW0
		a2 = 1 - alpha/A
	case LowShelf:
		sq := math.Sqrt(A) * alpha * 2
		b0 = A * ((A + 1) - (A-1)*cosW0 + sq)
		b1 = 2 * A * ((A - 1) - (A+1)*cosW0)
		b2 = A * ((A + 1) - (A-1)*cosW0 - sq)
		a0 = (A + 1) + (A-1)*cosW0 + sq
		a1 = -2 * ((A - 1) + (A+1)*cosW0)
		a2 = (A + 1) + (A-1)*cosW0 - sq
	case HighShelf:
		sq := math.Sqrt(A) * alpha * 2
		b0 = A * ((A + 1) + (A-1)*cosW0 + sq)
		b1 = -2 * A * ((A - 1) + (A+1)*cosW0)
		b2 = A * ((A + 1) + (A-1)*cosW0 - sq)
		a0 = (A + 1) - (A-1)*cosW0 + sq
		a1 = 2 * ((A - 1) - (A+1)*cosW0)
		a2 = (A + 1) - (A-1)*cosW0 - sq
	default:
		return UnityCoeffs
	}

	if a0 == 0 {
		return UnityCoeffs
	}
	return Coeffs{B0: b0 / a0, B1: b1 / a0, B2: b2 / a0, A1: a1 / a0, A2: a2 / a0}
}

// MagnitudeAt probes |H(e^jw)| at frequency hz for self-tests. This
// follows the standard transfer-function evaluation; an older in-tree
// probe combined a1*a2 non-standard ways and was intentionally not
// carried forward (see DESIGN.md).
func (c Coeffs) MagnitudeAt(fs, hz float64) float64 {
	w := 2 * math.Pi * hz / fs
	cosW, sinW := math.Cos(w), math.Sin(w)
	cos2W, sin2W := math.Cos(2*w), math.Sin(2*w)

	numRe := c.B0 + c.B1*cosW + c.B2*cos2W
	numIm := -c.B1*sinW - c.B2*sin2W
	denRe := 1 + c.A1*cosW + c.A2*cos2W
	denIm := -c.A1*sinW - c.A2*sin2W

	num := math.Hypot(numRe, numIm)
	den := math.Hypot(denRe, denIm)
	if den == 0 {
		return 0
	}
	return num / den
}

// Biquad is a Direct-Form-II-Transposed biquad filter: owned state (z1,
// z2) mutated only by Process.
type Biquad struct {
	C      Coeffs
	z1, z2 float64
}

// NewBiquad constructs a filter with the given coefficients and zeroed state.
func NewBiquad(c Coeffs) *Biquad { return &Biquad{C: c} }

// SetCoeffs retunes the filter while preserving z-state, so parameter
// changes (e.g. a bandwidth preset switch) don't produce an audible click.
func (b *Biquad) SetCoeffs(c Coeffs) { b.C = c }

// Reset zeros the filter's internal state without touching coefficients.
func (b *Biquad) Reset() { b.z1, b.z2 = 0, 0 }

// Process runs one sample through the DF-II-T structure:
//
//	y  = b0*x + z1
//	z1 = b1*x - a1*y + z2
//	z2 = b2*x - a2*y
func (b *Biquad) Process(x float64) float64 {
	y := b.C.B0*x + b.z1
	b.z1 = b.C.B1*x - b.C.A1*y + b.z2
	b.z2 = b.C.B2*x - b.C.A2*y
	return y
}
