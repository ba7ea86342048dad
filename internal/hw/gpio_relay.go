//go:build linux

package hw

import "github.com/warthog618/go-gpiocdev"

// GpioTrRelay drives a T/R relay (and, optionally, PA bias) through a
// Linux GPIO character-device line.
type GpioTrRelay struct {
	line       *gpiocdev.Line
	activeHigh bool
}

// NewGpioTrRelay requests offset on the named gpiochip as an output,
// initially de-energized.
func NewGpioTrRelay(chip string, offset int, activeHigh bool) (*GpioTrRelay, error) {
	initial := 0
	if !activeHigh {
		initial = 1
	}
	line, err := gpiocdev.RequestLine(chip, offset, gpiocdev.AsOutput(initial))
	if err != nil {
		return nil, err
	}
	return &GpioTrRelay{line: line, activeHigh: activeHigh}, nil
}

func (r *GpioTrRelay) setEnergized(on bool) error {
	v := 0
	if on == r.activeHigh {
		v = 1
	}
	return r.line.SetValue(v)
}

// EnableTr energizes the relay for transmit.
func (r *GpioTrRelay) EnableTr() error { return r.setEnergized(true) }

// DisableTr de-energizes the relay, returning to receive.
func (r *GpioTrRelay) DisableTr() error { return r.setEnergized(false) }

// Close releases the GPIO line.
func (r *GpioTrRelay) Close() error { return r.line.Close() }
