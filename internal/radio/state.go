// Package radio implements the radio's control-plane state: the immutable
// RadioState snapshot and its pure event reducer, the dual-VFO manager,
// and the 100-channel memory bank.
package radio

import "github.com/kf7sdr/radiocore/internal/ptype"

// AgcMode is the radio-level AGC setting (distinct from rxchain.AgcPreset,
// which also has an Off state the radio cycles through).
type AgcMode int

const (
	AgcModeOff AgcMode = iota
	AgcModeFast
	AgcModeMedium
	AgcModeSlow
)

// Next cycles Off -> Fast -> Medium -> Slow -> Off.
func (m AgcMode) Next() AgcMode {
	switch m {
	case AgcModeOff:
		return AgcModeFast
	case AgcModeFast:
		return AgcModeMedium
	case AgcModeMedium:
		return AgcModeSlow
	default:
		return AgcModeOff
	}
}

// TxRxState is the coarse indicator the reducer sets; the TxController
// owns the authoritative fine-grained state machine.
type TxRxState int

const (
	StateRx TxRxState = iota
	StateSwitching
	StateTx
)

// State is an immutable snapshot of every radio-level setting. Every
// mutation is a pure function returning a new State; nothing here is
// ever mutated in place.
//
// Frequency and Mode always describe the selected (RX) VFO. OtherVfo
// holds the stored settings of the non-selected VFO; EvSwitchVfo,
// EvSwapVfo, EvCopyAToB and EvCopyBToA move values between the two
// without ever needing a third, separately-owned VFO manager.
type State struct {
	Frequency ptype.Frequency
	Mode      ptype.Mode
	Step      ptype.TuningStep
	Band      ptype.Band
	TxRx      TxRxState
	Power     ptype.PowerLevel
	VfoSelect VfoID
	OtherVfo  VfoSettings
	Split     bool
	RitOffset int64
	RitOn     bool
	XitOffset int64
	XitOn     bool
	AgcMode   AgcMode
	NbOn      bool
	PreampOn  bool
	AttOn     bool
}

// NewState builds an initial snapshot at the given frequency and mode. If
// the frequency is invalid, the zero-value Frequency at ptype.MinHz is used.
func NewState(hz int64, mode ptype.Mode) State {
	f, ok := ptype.NewFrequency(hz)
	if !ok {
		f, _ = ptype.NewFrequency(ptype.MinHz)
	}
	return State{
		Frequency: f,
		Mode:      mode,
		Step:      ptype.Step1kHz,
		Band:      ptype.FromFrequency(f),
		Power:     50,
		OtherVfo:  VfoSettings{Frequency: f, Mode: mode},
	}
}

// RxFrequency returns frequency+RIT offset when RIT is enabled, clamped to
// the valid band, else the plain frequency.
func (s State) RxFrequency() ptype.Frequency {
	if !s.RitOn {
		return s.Frequency
	}
	return s.Frequency.Add(s.RitOffset)
}

// TxFrequency returns the transmit frequency: the other VFO's frequency
// when Split is active, else the selected VFO's frequency, with the XIT
// offset applied when enabled.
func (s State) TxFrequency() ptype.Frequency {
	f := s.Frequency
	if s.Split {
		f = s.OtherVfo.Frequency
	}
	if !s.XitOn {
		return f
	}
	return f.Add(s.XitOffset)
}
