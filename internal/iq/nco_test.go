package iq

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNCO_PhaseWrapped(t *testing.T) {
	n := NewNCO(12000, testFs)
	for i := 0; i < 1000; i++ {
		n.NextIQ()
		assert.LessOrEqual(t, n.Phase(), math.Pi+1e-9)
		assert.GreaterOrEqual(t, n.Phase(), -math.Pi-1e-9)
	}
}

func TestNCO_UnitMagnitudeOutput(t *testing.T) {
	n := NewNCO(1000, testFs)
	for i := 0; i < 10; i++ {
		s := n.NextIQ()
		assert.InDelta(t, 1.0, s.Magnitude(), 1e-9)
	}
}

func TestQuadOsc_TracksUnitCircleOverLongRun(t *testing.T) {
	q := NewQuadOsc(1000, testFs)
	for i := 0; i < 200000; i++ {
		s := q.Next()
		assert.InDelta(t, 1.0, s.Magnitude(), 1e-2)
	}
}

func TestQuadOsc_ResetReturnsToZeroPhase(t *testing.T) {
	q := NewQuadOsc(1000, testFs)
	q.Next()
	q.Next()
	q.Reset()
	s := q.Next()
	// Phase 0 rotated by one step should equal (rotCos, rotSin).
	assert.InDelta(t, q.rotCos, s.I, 1e-9)
	assert.InDelta(t, q.rotSin, s.Q, 1e-9)
}
