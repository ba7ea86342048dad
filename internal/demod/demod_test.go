package demod

import (
	"math"
	"testing"

	"github.com/kf7sdr/radiocore/internal/iq"
	"github.com/stretchr/testify/assert"
)

const fs = 48000.0

func TestAmDemod_RecoversEnvelope(t *testing.T) {
	mod := NewAmMod(fs, 1000, 0.8)
	demod := NewAmDemod(fs)

	var last float64
	for i := 0; i < 10000; i++ {
		audio := 0.5 * math.Sin(2*math.Pi*300*float64(i)/fs)
		s := mod.Process(audio)
		last = demod.Process(s)
	}
	assert.False(t, math.IsNaN(last))
}

func TestFmDemod_RecoversTone(t *testing.T) {
	mod := NewFmMod(fs, 0, 3000)
	dem := NewFmDemod(fs, 3000)

	var maxAbs float64
	for i := 0; i < 20000; i++ {
		audio := 0.5 * math.Sin(2*math.Pi*300*float64(i)/fs)
		s := mod.Process(audio)
		out := dem.Process(s)
		if i > 15000 {
			if math.Abs(out) > maxAbs {
				maxAbs = math.Abs(out)
			}
		}
	}
	assert.Greater(t, maxAbs, 0.05)
	assert.False(t, math.IsNaN(maxAbs))
}

func TestSsbDemod_SidebandSwitchWithoutPanic(t *testing.T) {
	mod := NewSsbMod(fs, 300, 2400, Usb)
	dem := NewSsbDemod(fs, 300, 2400, Usb)

	for i := 0; i < 1000; i++ {
		audio := 0.3 * math.Sin(2*math.Pi*800*float64(i)/fs)
		s := mod.Process(audio)
		dem.Process(s)
	}
	dem.SetSideband(Lsb)
	out := dem.Process(iq.Sample{I: 0.1, Q: 0.1})
	assert.False(t, math.IsNaN(out))
}

func TestCwDemod_InvertedUsesLsb(t *testing.T) {
	d := NewCwDemod(fs, 300, 800, true)
	assert.Equal(t, Lsb, d.sideband)
}
