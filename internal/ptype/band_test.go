package ptype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

// Invariant 3: for any band B and any f in [B.start, B.end],
// FromFrequency(NewFrequency(f)) == B.
func TestBandFromFrequency_Roundtrip(t *testing.T) {
	for b := Band80m; b <= Band15m; b++ {
		startHz, endHz := b.Range()
		rapid.Check(t, func(rt *rapid.T) {
			hz := rapid.Int64Range(startHz, endHz).Draw(rt, "hz")
			f, ok := NewFrequency(hz)
			assert.True(rt, ok)
			assert.Equal(rt, b, FromFrequency(f))
		})
	}
}

func TestFrequency_OutOfRange(t *testing.T) {
	_, ok := NewFrequency(MinHz - 1)
	assert.False(t, ok)
	_, ok = NewFrequency(MaxHz + 1)
	assert.False(t, ok)
}

func TestFrequency_AddSaturates(t *testing.T) {
	f, _ := NewFrequency(MinHz)
	assert.Equal(t, Frequency(MinHz), f.Add(-100))
	f, _ = NewFrequency(MaxHz)
	assert.Equal(t, Frequency(MaxHz), f.Add(100))
}

func TestTuningStep_CycleIsClosed(t *testing.T) {
	s := Step1Hz
	for i := 0; i < 7; i++ {
		s = s.Next()
	}
	assert.Equal(t, Step1Hz, s)
}

func TestSwrReading_ZeroForwardSentinel(t *testing.T) {
	r := SwrReading{Forward: 0, Reflected: 5}
	assert.Equal(t, SentinelSwr, r.Ratio())
}

func TestSwrReading_MatchedLoad(t *testing.T) {
	r := SwrReading{Forward: 100, Reflected: 0}
	assert.InDelta(t, 1.0, r.Ratio(), 1e-9)
}
