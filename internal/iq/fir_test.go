package iq

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLowpassFIR_AttenuatesAboveCutoff(t *testing.T) {
	f := NewLowpassFIR(63, testFs, 500)

	// Settle on a low-frequency tone; output amplitude should track input.
	var lowOut, lowIn float64
	for i := 0; i < 4000; i++ {
		x := math.Sin(2 * math.Pi * 100 * float64(i) / testFs)
		y := f.Process(x)
		if i > 3000 {
			lowOut += math.Abs(y)
			lowIn += math.Abs(x)
		}
	}

	f.Reset()
	var highOut, highIn float64
	for i := 0; i < 4000; i++ {
		x := math.Sin(2 * math.Pi * 8000 * float64(i) / testFs)
		y := f.Process(x)
		if i > 3000 {
			highOut += math.Abs(y)
			highIn += math.Abs(x)
		}
	}

	assert.Greater(t, lowOut/lowIn, 0.8)
	assert.Less(t, highOut/highIn, 0.2)
}

func TestFixedFIR_RoundTripsNearFloat(t *testing.T) {
	floatTaps := sincLowpass(15, testFs, 1000)
	ff := NewFixedFIR(floatTaps)
	fFloat := &FIR{taps: floatTaps, delay: make([]float64, len(floatTaps))}

	for i := 0; i < 50; i++ {
		x := math.Sin(2 * math.Pi * 300 * float64(i) / testFs)
		want := fFloat.Process(x)
		got := Q15ToFloat(ff.Process(FloatToQ15(x)))
		assert.InDelta(t, want, got, 0.01)
	}
}

func TestDCBlocker_RemovesBias(t *testing.T) {
	d := NewDCBlocker(DefaultDCAlpha)
	var last float64
	for i := 0; i < 5000; i++ {
		last = d.Process(0.5 + 0.1*math.Sin(2*math.Pi*1000*float64(i)/testFs))
	}
	assert.Less(t, math.Abs(last), 0.2)
}

// TestHilbert_QuadratureShift checks the analytic-signal invariant:
// combining the Hilbert output with the matching plain-delayed input
// should trace a near-unit-magnitude circle, regardless of the kernel's
// sign convention.
func TestHilbert_QuadratureShift(t *testing.T) {
	h := NewHilbert()
	freq := 6000.0 // inside the 31-tap kernel's flat band at testFs (gain ~0.996; ~0.61 at 1 kHz)
	delayLine := make([]float64, GroupDelaySamples+1)
	var dPos int

	var maxErr float64
	for i := 0; i < 2000; i++ {
		x := math.Sin(2 * math.Pi * freq * float64(i) / testFs)
		y := h.Process(x)

		delayLine[dPos] = x
		dPos = (dPos + 1) % len(delayLine)
		delayed := delayLine[dPos]

		if i >= GroupDelaySamples+200 {
			mag := math.Hypot(delayed, y)
			err := math.Abs(mag - 1.0)
			if err > maxErr {
				maxErr = err
			}
		}
	}
	assert.Less(t, maxErr, 0.15)
}
