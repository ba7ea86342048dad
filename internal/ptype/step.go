package ptype

// TuningStep is one of the fixed tuning increments a VFO can advance by.
type TuningStep int

const (
	Step1Hz TuningStep = iota
	Step10Hz
	Step100Hz
	Step1kHz
	Step10kHz
	Step100kHz
	Step1MHz
)

var stepOrder = [...]TuningStep{Step1Hz, Step10Hz, Step100Hz, Step1kHz, Step10kHz, Step100kHz, Step1MHz}

var stepHz = [...]int64{1, 10, 100, 1_000, 10_000, 100_000, 1_000_000}

// Hz returns the step size in Hertz.
func (s TuningStep) Hz() int64 {
	if int(s) < 0 || int(s) >= len(stepHz) {
		return 1
	}
	return stepHz[s]
}

// Next cycles to the next larger step, wrapping from 1 MHz back to 1 Hz.
func (s TuningStep) Next() TuningStep {
	for i, v := range stepOrder {
		if v == s {
			return stepOrder[(i+1)%len(stepOrder)]
		}
	}
	return Step1Hz
}

// Prev cycles to the next smaller step, wrapping from 1 Hz to 1 MHz.
func (s TuningStep) Prev() TuningStep {
	for i, v := range stepOrder {
		if v == s {
			return stepOrder[(i-1+len(stepOrder))%len(stepOrder)]
		}
	}
	return Step1Hz
}

func (s TuningStep) String() string {
	switch s {
	case Step1Hz:
		return "1Hz"
	case Step10Hz:
		return "10Hz"
	case Step100Hz:
		return "100Hz"
	case Step1kHz:
		return "1kHz"
	case Step10kHz:
		return "10kHz"
	case Step100kHz:
		return "100kHz"
	case Step1MHz:
		return "1MHz"
	default:
		return "?"
	}
}
