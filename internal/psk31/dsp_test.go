package psk31

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModulator_IdleWithEmptyQueue(t *testing.T) {
	m := NewModulator(8000, 1500)
	assert.True(t, m.Idle())
	_, ok := m.NextSample()
	assert.False(t, ok)
}

func TestModulator_ProducesSamplesUntilDrained(t *testing.T) {
	m := NewModulator(8000, 1500)
	m.Enqueue("E")
	assert.False(t, m.Idle())

	count := 0
	for !m.Idle() {
		x, ok := m.NextSample()
		assert.True(t, ok)
		assert.False(t, math.IsNaN(x))
		count++
		if count > 100_000 {
			t.Fatal("modulator never drained")
		}
	}
	assert.Greater(t, count, 0)
}

func TestReceiver_SquelchClosedOnSilence(t *testing.T) {
	r := NewReceiver(8000, 1500, 5)
	r.SetSquelchThreshold(6)
	var last Symbol
	for i := 0; i < 4000; i++ {
		last, _ = r.Process(0)
	}
	assert.False(t, last.SquelchOpen)
}

func TestReceiver_SquelchOpensOnStrongTone(t *testing.T) {
	r := NewReceiver(8000, 1500, 5)
	r.SetSquelchThreshold(0)
	var last Symbol
	for i := 0; i < 4000; i++ {
		x := math.Cos(2 * math.Pi * 1500 * float64(i) / 8000)
		last, _ = r.Process(x)
	}
	assert.True(t, last.SquelchOpen)
}

func TestGardnerError_ZeroWhenSamplesEqual(t *testing.T) {
	assert.InDelta(t, 0.0, gardnerError(1.0, 0.5, 1.0), 1e-9)
}

func TestSetLoopGains_PositiveForPositiveBandwidth(t *testing.T) {
	r := NewReceiver(8000, 1500, 10)
	assert.Greater(t, r.kp, 0.0)
	assert.Greater(t, r.ki, 0.0)
}
