package txctl

import (
	"testing"

	"github.com/kf7sdr/radiocore/internal/ptype"
	"github.com/stretchr/testify/assert"
)

func runToTx(t *testing.T, c *Controller) {
	t.Helper()
	a := c.Tick(0, true, false, nil, 0)
	assert.True(t, a.EnableTrRelay)
	assert.Equal(t, SwitchingToTx, c.State())
	c.Tick(defaultTrDelayUs, true, false, nil, 0)
	assert.Equal(t, Tx, c.State())
}

// Scenario S5 / Invariant 10.
func TestController_SwrTripInhibitsAndClampsPower(t *testing.T) {
	c := NewController()
	c.SetPowerRequested(80)
	runToTx(t, c)
	assert.Equal(t, ptype.PowerLevel(80), c.PowerActual())

	reading := ptype.SwrReading{Forward: 10, Reflected: 9}
	assert.Greater(t, reading.Ratio(), 5.0)

	c.Tick(0, true, false, &reading, 1)
	assert.Equal(t, Inhibited, c.State())
	assert.Equal(t, ptype.MinPowerLevel, c.PowerActual())
	assert.Equal(t, 1, c.TripCount())

	c.ClearSwrTrip()
	assert.Equal(t, Rx, c.State())
}

func TestController_TripCountIsMonotonic(t *testing.T) {
	c := NewController()
	c.SetPowerRequested(80)
	runToTx(t, c)
	reading := ptype.SwrReading{Forward: 10, Reflected: 9}
	c.Tick(0, true, false, &reading, 1)
	first := c.TripCount()
	c.ClearSwrTrip()
	runToTx(t, c)
	c.Tick(0, true, false, &reading, 1)
	assert.GreaterOrEqual(t, c.TripCount(), first)
}

func TestController_WarningSwrReducesPowerWithFloor(t *testing.T) {
	c := NewController()
	c.SetPowerRequested(80)
	runToTx(t, c)

	// rho = sqrt(2/8) = 0.5 -> SWR = (1+0.5)/(1-0.5) = 3.0, at the warn
	// threshold boundary; use a slightly hotter reading to clear it.
	reading := ptype.SwrReading{Forward: 8, Reflected: 3}
	c.Tick(0, true, false, &reading, 0)
	assert.Equal(t, Tx, c.State())
	assert.Less(t, int(c.PowerActual()), 80)
	assert.GreaterOrEqual(t, int(c.PowerActual()), minReducedPowerFloor)
}

func TestController_DemandClearedAbortsSwitchingToTx(t *testing.T) {
	c := NewController()
	c.Tick(0, true, false, nil, 0)
	assert.Equal(t, SwitchingToTx, c.State())
	a := c.Tick(1, false, false, nil, 0)
	assert.True(t, a.DisableTrRelay)
	assert.Equal(t, SwitchingToRx, c.State())
}

func TestController_TimeoutForcesSwitchingToRx(t *testing.T) {
	c := NewController()
	c.SetTimeoutLimit(5)
	c.SetPowerRequested(50)
	runToTx(t, c)
	c.Tick(0, true, false, nil, 5)
	assert.Equal(t, SwitchingToRx, c.State())
}

func TestController_ZeroTimeoutDisablesWatchdog(t *testing.T) {
	c := NewController()
	c.SetTimeoutLimit(0)
	c.SetPowerRequested(50)
	runToTx(t, c)
	c.Tick(0, true, false, nil, 100_000)
	assert.Equal(t, Tx, c.State())
}

func TestController_FullTrCycleReturnsToRx(t *testing.T) {
	c := NewController()
	runToTx(t, c)
	c.Tick(0, false, false, nil, 0)
	assert.Equal(t, SwitchingToRx, c.State())
	a := c.Tick(defaultTrDelayUs, false, false, nil, 0)
	assert.True(t, a.DisableTrRelay)
	assert.Equal(t, Rx, c.State())
}

func TestVoxFollower_AssertsThenHangs(t *testing.T) {
	v := NewVoxFollower(0.1, 3)
	for i := 0; i < 50; i++ {
		v.Process(0.8)
	}
	assert.True(t, v.Active())
	for v.envelope > v.threshold {
		v.Process(0)
	}
	assert.True(t, v.Active(), "still within hang")
}

func TestVoxFollower_ResetClearsState(t *testing.T) {
	v := NewVoxFollower(0.1, 3)
	for i := 0; i < 50; i++ {
		v.Process(0.8)
	}
	v.Reset()
	assert.False(t, v.Active())
}
