package radio

import "github.com/kf7sdr/radiocore/internal/ptype"

// EventKind tags which variant an Event carries.
type EventKind int

const (
	EvTune EventKind = iota
	EvSetFrequency
	EvSetMode
	EvNextMode
	EvSetStep
	EvNextStep
	EvStartTx
	EvStopTx
	EvSetPower
	EvToggleRit
	EvAdjustRit
	EvClearRit
	EvToggleXit
	EvCycleAgc
	EvToggleNb
	EvTogglePreamp
	EvToggleAtt
	EvSwitchVfo
	EvSwapVfo
	EvCopyAToB
	EvCopyBToA
	EvToggleSplit
)

// Event is a tagged union over every radio-reducer input. Only the field(s)
// relevant to Kind are meaningful.
type Event struct {
	Kind      EventKind
	TuneSteps int              // EvTune: positive = up, negative = down
	Frequency int64            // EvSetFrequency
	Mode      ptype.Mode       // EvSetMode
	Step      ptype.TuningStep // EvSetStep
	Power     ptype.PowerLevel // EvSetPower
	RitDelta  int64            // EvAdjustRit
	VfoTarget VfoID            // EvSwitchVfo
}

// Apply runs the pure reducer: apply_event(state, event) -> state'. The
// input State is never mutated; a new value is always returned.
func Apply(s State, e Event) State {
	switch e.Kind {
	case EvTune:
		return tuneN(s, e.TuneSteps)
	case EvSetFrequency:
		return setFrequency(s, e.Frequency)
	case EvSetMode:
		s.Mode = e.Mode
		return s
	case EvNextMode:
		s.Mode = s.Mode.Next()
		return s
	case EvSetStep:
		s.Step = e.Step
		return s
	case EvNextStep:
		s.Step = s.Step.Next()
		return s
	case EvStartTx, EvStopTx:
		s.TxRx = StateSwitching
		return s
	case EvSetPower:
		s.Power = e.Power.Clamp()
		return s
	case EvToggleRit:
		s.RitOn = !s.RitOn
		return s
	case EvAdjustRit:
		s.RitOffset += e.RitDelta
		return s
	case EvClearRit:
		s.RitOffset = 0
		s.RitOn = false
		return s
	case EvToggleXit:
		s.XitOn = !s.XitOn
		return s
	case EvCycleAgc:
		s.AgcMode = s.AgcMode.Next()
		return s
	case EvToggleNb:
		s.NbOn = !s.NbOn
		return s
	case EvTogglePreamp:
		s.PreampOn = !s.PreampOn
		return s
	case EvToggleAtt:
		s.AttOn = !s.AttOn
		return s
	case EvSwitchVfo:
		return switchVfo(s, e.VfoTarget)
	case EvSwapVfo:
		s.Frequency, s.OtherVfo.Frequency = s.OtherVfo.Frequency, s.Frequency
		s.Mode, s.OtherVfo.Mode = s.OtherVfo.Mode, s.Mode
		s.Band = ptype.FromFrequency(s.Frequency)
		return s
	case EvCopyAToB:
		return copyVfo(s, VfoA, VfoB)
	case EvCopyBToA:
		return copyVfo(s, VfoB, VfoA)
	case EvToggleSplit:
		s.Split = !s.Split
		return s
	default:
		return s
	}
}

// switchVfo makes target the selected (RX) VFO, stashing the currently
// selected VFO's live settings into OtherVfo and restoring target's
// previously-stored settings as the new live settings. A switch to the
// already-selected VFO is a no-op.
func switchVfo(s State, target VfoID) State {
	if target == s.VfoSelect {
		return s
	}
	s.Frequency, s.OtherVfo.Frequency = s.OtherVfo.Frequency, s.Frequency
	s.Mode, s.OtherVfo.Mode = s.OtherVfo.Mode, s.Mode
	s.VfoSelect = target
	s.Band = ptype.FromFrequency(s.Frequency)
	return s
}

// copyVfo overwrites dst's settings with src's, identifying src/dst
// against whichever of {live, OtherVfo} each currently denotes.
func copyVfo(s State, src, dst VfoID) State {
	srcSettings := s.liveOrOther(src)
	if dst == s.VfoSelect {
		s.Frequency = srcSettings.Frequency
		s.Mode = srcSettings.Mode
		s.Band = ptype.FromFrequency(s.Frequency)
	} else {
		s.OtherVfo = srcSettings
	}
	return s
}

func (s State) liveOrOther(id VfoID) VfoSettings {
	if id == s.VfoSelect {
		return VfoSettings{Frequency: s.Frequency, Mode: s.Mode}
	}
	return s.OtherVfo
}

// tuneN repeats a single tuning step n times (positive = up, negative =
// down), re-deriving the band after each step, matching TuneUp/TuneDown
// applied n times rather than a single n*step jump (so per-step saturation
// at the band edge behaves identically).
func tuneN(s State, n int) State {
	if n >= 0 {
		for i := 0; i < n; i++ {
			s = tuneUp(s)
		}
	} else {
		for i := 0; i < -n; i++ {
			s = tuneDown(s)
		}
	}
	return s
}

func tuneUp(s State) State {
	s.Frequency = s.Frequency.Add(s.Step.Hz())
	s.Band = ptype.FromFrequency(s.Frequency)
	return s
}

func tuneDown(s State) State {
	s.Frequency = s.Frequency.Add(-s.Step.Hz())
	s.Band = ptype.FromFrequency(s.Frequency)
	return s
}

func setFrequency(s State, hz int64) State {
	f, ok := ptype.NewFrequency(hz)
	if !ok {
		return s
	}
	s.Frequency = f
	s.Band = ptype.FromFrequency(f)
	return s
}

// TuneUp advances by one tuning step, saturating and re-deriving the band.
func TuneUp(s State) State { return tuneUp(s) }

// TuneDown retreats by one tuning step, saturating and re-deriving the band.
func TuneDown(s State) State { return tuneDown(s) }
