// Package txctl implements the transmit controller: the T/R switching
// state machine, SWR-based power protection, the TX duration watchdog,
// and the VOX envelope follower that can assert transmit demand
// alongside PTT.
package txctl

import (
	"math"

	"github.com/kf7sdr/radiocore/internal/ptype"
)

// State is one of the TxController's five states.
type State int

const (
	Rx State = iota
	SwitchingToTx
	Tx
	SwitchingToRx
	Inhibited
)

func (s State) String() string {
	switch s {
	case Rx:
		return "Rx"
	case SwitchingToTx:
		return "SwitchingToTx"
	case Tx:
		return "Tx"
	case SwitchingToRx:
		return "SwitchingToRx"
	case Inhibited:
		return "Inhibited"
	default:
		return "?"
	}
}

// Actions the controller asks its collaborators to perform on a given
// tick. A tick may request more than one.
type Actions struct {
	EnableTrRelay  bool
	DisableTrRelay bool
	EnablePa       bool
	DisablePa      bool
	SetPower       bool
	Power          ptype.PowerLevel
}

const (
	defaultTrDelayUs      = 10_000
	defaultTimeoutLimitS  = 600
	swrCritical           = 5.0
	swrWarn               = 3.0
	minReducedPowerFloor  = 10
)

// Controller is the TX state machine described in §4.6: it is driven by
// one Tick call per control-loop iteration carrying PTT/VOX/inhibit
// input and an optional SWR reading, and it reports power_actual,
// key_down-equivalent tx_active, and a cumulative SWR trip counter.
type Controller struct {
	state State

	trDelayUs     int64
	trCountdownUs int64

	timeoutLimitS int
	timeoutTicksS int

	powerRequested ptype.PowerLevel
	powerActual    ptype.PowerLevel

	tripCount int

	vox *VoxFollower
}

// NewController builds a controller in Rx with the documented default
// T/R delay (10 ms) and TX watchdog (600 s; 0 disables it).
func NewController() *Controller {
	return &Controller{
		state:         Rx,
		trDelayUs:     defaultTrDelayUs,
		timeoutLimitS: defaultTimeoutLimitS,
		vox:           NewVoxFollower(0.05, 300),
	}
}

// SetTrDelay overrides the T/R switching delay in microseconds.
func (c *Controller) SetTrDelay(us int64) { c.trDelayUs = us }

// SetTimeoutLimit overrides the TX watchdog in seconds; 0 disables it.
func (c *Controller) SetTimeoutLimit(s int) { c.timeoutLimitS = s }

// State returns the current controller state.
func (c *Controller) State() State { return c.state }

// PowerActual returns the power level the controller currently commands.
func (c *Controller) PowerActual() ptype.PowerLevel { return c.powerActual }

// TripCount returns the cumulative SWR trip count; it increases on each
// trip and is reset only by ClearSwrTrip.
func (c *Controller) TripCount() int { return c.tripCount }

// SetPowerRequested sets the power level requested for the next TX.
func (c *Controller) SetPowerRequested(p ptype.PowerLevel) { c.powerRequested = p.Clamp() }

// ClearSwrTrip resets the trip counter and exits Inhibited back to Rx.
func (c *Controller) ClearSwrTrip() {
	c.tripCount = 0
	if c.state == Inhibited {
		c.state = Rx
	}
}

// Vox exposes the VOX envelope follower so callers can feed it audio.
func (c *Controller) Vox() *VoxFollower { return c.vox }

// Tick advances the controller by elapsedUs microseconds given the
// current demand inputs and an optional SWR reading (nil if none was
// taken this tick). It returns the actions the caller must perform.
func (c *Controller) Tick(elapsedUs int64, ptt, inhibit bool, swr *ptype.SwrReading, elapsedWholeSeconds int) Actions {
	vox := c.vox.Active()
	demand := (ptt || vox) && !inhibit

	var a Actions

	switch c.state {
	case Rx:
		if demand {
			c.state = SwitchingToTx
			c.trCountdownUs = c.trDelayUs
			a.EnableTrRelay = true
		}

	case SwitchingToTx:
		c.trCountdownUs -= elapsedUs
		if !demand {
			c.state = SwitchingToRx
			c.trCountdownUs = c.trDelayUs
			a.DisableTrRelay = true
			break
		}
		if c.trCountdownUs <= 0 {
			c.state = Tx
			c.timeoutTicksS = 0
			c.powerActual = c.powerRequested
			a.EnablePa = true
		}

	case Tx:
		if swr != nil {
			c.applySwr(*swr)
		}
		if c.state != Inhibited {
			c.timeoutTicksS += elapsedWholeSeconds
			timedOut := c.timeoutLimitS > 0 && c.timeoutTicksS >= c.timeoutLimitS
			if !demand || timedOut {
				c.state = SwitchingToRx
				c.trCountdownUs = c.trDelayUs
				a.DisablePa = true
			} else {
				a.SetPower = true
				a.Power = c.powerActual
			}
		}

	case SwitchingToRx:
		c.trCountdownUs -= elapsedUs
		if c.trCountdownUs <= 0 {
			c.state = Rx
			a.DisableTrRelay = true
		}

	case Inhibited:
		// Latched; only ClearSwrTrip exits this state.
	}

	return a
}

// applySwr implements the §4.6 SWR protection ladder: critical SWR
// (>5) trips immediately to Inhibited at minimum power; warning-range
// SWR (>3) backs power off proportionally, floored at 10%.
func (c *Controller) applySwr(r ptype.SwrReading) {
	swr := r.Ratio()
	switch {
	case swr > swrCritical:
		c.state = Inhibited
		c.powerActual = ptype.MinPowerLevel
		c.tripCount++
	case swr > swrWarn:
		reduction := 10 * (swr - swrWarn)
		reduced := float64(c.powerActual) - reduction
		if reduced < minReducedPowerFloor {
			reduced = minReducedPowerFloor
		}
		c.powerActual = ptype.PowerLevel(math.Round(reduced)).Clamp()
	}
}
