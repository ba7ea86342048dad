package rxchain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAGC_TracksTargetLevel(t *testing.T) {
	a := NewAGC(48000, AgcFast, 0.3, -20, 40)
	var out float64
	for i := 0; i < 20000; i++ {
		out = a.Process(0.8)
	}
	assert.InDelta(t, 0.3, out, 0.05)
	_ = math.Abs(out)
}

func TestAGC_ClampsGainToBounds(t *testing.T) {
	a := NewAGC(48000, AgcFast, 0.3, -20, 40)
	for i := 0; i < 20000; i++ {
		a.Process(1e-6)
	}
	maxGain := math.Pow(10, 40.0/20)
	assert.LessOrEqual(t, a.Gain(), maxGain+1e-9)
}

func TestSMeter_SUnitsMapping(t *testing.T) {
	assert.Equal(t, "S9", FormatSUnits(9))
	assert.Equal(t, "S9+12dB", FormatSUnits(11))
}
