// Package spectrum implements the sliding-window DFT and radix-2 FFT
// used to drive a waterfall display, plus the fixed-capacity ring
// buffer that stores rendered rows.
package spectrum

import "math"

// SlidingDFT maintains a ring buffer of the last N samples and, on
// demand, correlates the Hann-windowed buffer against a fixed bank of
// per-bin complex exponentials (a single-bin Goertzel evaluated at an
// arbitrary, not-necessarily-FFT-aligned frequency).
type SlidingDFT struct {
	n      int
	fs     float64
	window []float64
	ring   []float64
	pos    int
	filled int

	binFreqsHz []float64
}

// NewSlidingDFT builds a sliding DFT of window length n (samples) at
// sample rate fs, tracking the given bin center frequencies.
func NewSlidingDFT(n int, fs float64, binFreqsHz []float64) *SlidingDFT {
	return &SlidingDFT{
		n:          n,
		fs:         fs,
		window:     hannWindow(n),
		ring:       make([]float64, n),
		binFreqsHz: binFreqsHz,
	}
}

func hannWindow(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}
	for i := range w {
		w[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n-1))
	}
	return w
}

// Push feeds one new sample into the ring buffer, evicting the oldest.
func (d *SlidingDFT) Push(x float64) {
	d.ring[d.pos] = x
	d.pos++
	if d.pos >= d.n {
		d.pos = 0
	}
	if d.filled < d.n {
		d.filled++
	}
}

// Filled reports whether the window has accumulated n samples.
func (d *SlidingDFT) Filled() bool { return d.filled >= d.n }

// Magnitudes returns, for each tracked bin, the magnitude of the
// Hann-windowed correlation against that bin's frequency over the
// current buffer contents.
func (d *SlidingDFT) Magnitudes() []float64 {
	out := make([]float64, len(d.binFreqsHz))
	for bi, freq := range d.binFreqsHz {
		var re, im float64
		theta := -2 * math.Pi * freq / d.fs
		idx := d.pos
		for i := 0; i < d.n; i++ {
			sample := d.ring[idx] * d.window[i]
			s, c := math.Sincos(theta * float64(i))
			re += sample * c
			im += sample * s
			idx++
			if idx >= d.n {
				idx = 0
			}
		}
		out[bi] = math.Hypot(re, im)
	}
	return out
}

// PeakBin returns the index of the strongest bin and its magnitude.
func (d *SlidingDFT) PeakBin() (int, float64) {
	mags := d.Magnitudes()
	peak, peakMag := 0, -1.0
	for i, m := range mags {
		if m > peakMag {
			peak, peakMag = i, m
		}
	}
	return peak, peakMag
}
