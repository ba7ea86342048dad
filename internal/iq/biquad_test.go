package iq

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testFs = 48000.0

// Invariant 1: biquad magnitude at cutoff, DC, and well above cutoff.
func TestLowpass_MagnitudeShape(t *testing.T) {
	c := NewCoeffs(Lowpass, testFs, 1000, 0.707, 0)

	cutoffDb := 20 * logMag(c.MagnitudeAt(testFs, 1000))
	assert.InDelta(t, -3.0, cutoffDb, 0.5)

	dc := c.MagnitudeAt(testFs, 0.001)
	assert.InDelta(t, 1.0, dc, 0.01)

	high := c.MagnitudeAt(testFs, 10000)
	assert.Less(t, high, 0.1)
}

func TestHighpass_MagnitudeShape(t *testing.T) {
	c := NewCoeffs(Highpass, testFs, 1000, 0.707, 0)

	cutoffDb := 20 * logMag(c.MagnitudeAt(testFs, 1000))
	assert.InDelta(t, -3.0, cutoffDb, 0.5)

	dc := c.MagnitudeAt(testFs, 0.001)
	assert.Less(t, dc, 0.1)

	high := c.MagnitudeAt(testFs, 20000)
	assert.InDelta(t, 1.0, high, 0.15)
}

func logMag(m float64) float64 {
	if m <= 0 {
		return -300
	}
	return math.Log10(m)
}

func TestBiquad_SetCoeffsPreservesState(t *testing.T) {
	b := NewBiquad(NewCoeffs(Lowpass, testFs, 1000, 0.707, 0))
	b.Process(1.0)
	b.Process(0.5)
	zBefore := b.z1

	b.SetCoeffs(NewCoeffs(Lowpass, testFs, 500, 0.707, 0))
	assert.Equal(t, zBefore, b.z1)
}

func TestBiquad_ResetClearsState(t *testing.T) {
	b := NewBiquad(NewCoeffs(Lowpass, testFs, 1000, 0.707, 0))
	b.Process(1.0)
	b.Reset()
	assert.Equal(t, 0.0, b.z1)
	assert.Equal(t, 0.0, b.z2)
}

func TestUnityCoeffs_PassesThrough(t *testing.T) {
	b := NewBiquad(UnityCoeffs)
	assert.Equal(t, 0.42, b.Process(0.42))
}
