package rxchain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImpulseBlanker_SuppressesSpike(t *testing.T) {
	b := NewImpulseBlanker(4.0)
	for i := 0; i < 200; i++ {
		b.Process(0.1 * math.Sin(float64(i)))
	}
	out := b.Process(5.0)
	assert.Less(t, out, 1.0)
}

func TestLMSCanceller_MuClamped(t *testing.T) {
	l := NewLMSCanceller(10)
	assert.LessOrEqual(t, l.mu, 0.5)
	l.SetMu(-1)
	assert.GreaterOrEqual(t, l.mu, 1e-4)
}

func TestSpectralGate_AttenuatesNearFloor(t *testing.T) {
	g := NewSpectralGate(0.8)
	for i := 0; i < 50000; i++ {
		g.Process(0.01)
	}
	quiet := g.Process(0.015)
	loud := g.Process(1.0)
	assert.Less(t, math.Abs(quiet), 0.015)
	assert.InDelta(t, 1.0, loud, 1e-9)
}

func TestNoiseChain_RunsBlankerThenLMSThenGate(t *testing.T) {
	c := NewNoiseChain()
	c.BlankerEnabled = true
	c.LMSEnabled = true
	c.GateEnabled = true
	out := c.Process(0.1)
	assert.False(t, math.IsNaN(out))
}
