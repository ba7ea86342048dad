// Package keyer implements the CW iambic keyer state machine (straight,
// Iambic A/B, Bug, Ultimatic) and the Morse encoder used to translate
// ASCII text to element streams for macros.
package keyer

// Mode selects the keyer's paddle-interpretation behavior.
type Mode int

const (
	Straight Mode = iota
	IambicA
	IambicB
	Bug
	Ultimatic
)

// Element is one unit of key-down/key-up timing.
type Element int

const (
	ElementDit Element = iota
	ElementDah
	ElementGap
	ElementCharGap
	ElementWordGap
)

// kState is the internal state-machine phase.
type kState int

const (
	idle kState = iota
	sendingDit
	sendingDah
	elementGap
	waitNext
)

// Paddle is the instantaneous paddle contact state.
type Paddle struct {
	Dit bool
	Dah bool
}

// Keyer drives key_down from paddle input and weighted element timing,
// sample by sample, at a fixed sample rate and speed.
type Keyer struct {
	mode   Mode
	fs     float64
	wpm    float64
	weight float64 // percent, 50 = unweighted

	state        kState
	keyDown      bool
	samplesLeft  int
	ditMemory    bool
	dahMemory    bool
	squeezeAtGap bool // Iambic B: both paddles were held when the element began
	lastElement  Element
	bugToggle    bool // Bug mode's auto-dit on/off phase
}

// New builds a keyer at the given sample rate and speed (WPM), starting
// unweighted (weight 50, a 1:1 dit:gap ratio); SetWeight changes it.
func New(mode Mode, fs, wpm float64) *Keyer {
	k := &Keyer{mode: mode, fs: fs, wpm: wpm, weight: 50}
	k.reset()
	return k
}

func (k *Keyer) reset() {
	k.state = idle
	k.keyDown = false
	k.samplesLeft = 0
	k.ditMemory = false
	k.dahMemory = false
	k.squeezeAtGap = false
	k.bugToggle = false
}

// Reset returns the keyer to idle with the key up, per invariant 7's
// reset() contract.
func (k *Keyer) Reset() { k.reset() }

// SetMode changes the keyer mode without disturbing current timing.
func (k *Keyer) SetMode(m Mode) { k.mode = m }

// SetSpeed changes WPM.
func (k *Keyer) SetSpeed(wpm float64) { k.wpm = wpm }

// SetWeight changes the weighting percentage (50 = unweighted).
func (k *Keyer) SetWeight(weight float64) { k.weight = weight }

// unitSamples returns the dit-length unit in samples: unit_ms =
// 1200/wpm, samples = unit_ms * fs / 1000.
func (k *Keyer) unitSamples() float64 {
	unitMs := 1200.0 / k.wpm
	return unitMs * k.fs / 1000.0
}

// weightedSamples scales a tone element's unit count by weight/50 or a
// gap's by (100-weight)/50.
func (k *Keyer) weightedSamples(units float64, isTone bool) int {
	u := k.unitSamples()
	if isTone {
		return int(u * units * k.weight / 50.0)
	}
	return int(u * units * (100 - k.weight) / 50.0)
}

// IsIdle reports whether the keyer is in its idle state.
func (k *Keyer) IsIdle() bool { return k.state == idle }

// KeyDown reports whether the transmitted RF carrier should be keyed.
func (k *Keyer) KeyDown() bool { return k.keyDown }

// Process advances the keyer by one sample given the current paddle
// state, returning whether the carrier is keyed this sample.
func (k *Keyer) Process(p Paddle) bool {
	if k.mode == Straight {
		k.keyDown = p.Dit
		return k.keyDown
	}

	k.latchMemory(p)

	if k.samplesLeft > 0 {
		k.samplesLeft--
		return k.keyDown
	}

	k.advance(p)
	return k.keyDown
}

func (k *Keyer) latchMemory(p Paddle) {
	if p.Dit {
		k.ditMemory = true
	}
	if p.Dah {
		k.dahMemory = true
	}
}

// advance runs the state machine's next transition once samplesLeft has
// reached zero.
func (k *Keyer) advance(p Paddle) {
	switch k.state {
	case idle:
		k.startFromIdle(p)

	case sendingDit, sendingDah:
		k.keyDown = false
		k.state = elementGap
		k.samplesLeft = k.weightedSamples(1, false)

	case elementGap:
		k.enterWaitOrIdle(p)

	case waitNext:
		k.resolveWaitNext()
	}
}

func (k *Keyer) startFromIdle(p Paddle) {
	switch k.mode {
	case Bug:
		k.startBug(p)
	case Ultimatic:
		k.startUltimatic()
	default: // IambicA, IambicB
		k.squeezeAtGap = p.Dit && p.Dah
		k.startIambic()
	}
}

func (k *Keyer) startIambic() {
	switch {
	case k.ditMemory && k.dahMemory:
		// Squeeze: alternate with the element sent last.
		if k.lastElement == ElementDit {
			k.sendDah()
		} else {
			k.sendDit()
		}
	case k.dahMemory && !k.ditMemory:
		k.sendDah()
	case k.ditMemory:
		k.sendDit()
	default:
		k.state = idle
	}
}

func (k *Keyer) startUltimatic() {
	switch {
	case k.dahMemory && k.ditMemory:
		k.sendDah() // prefer dah on a genuine squeeze
	case k.dahMemory:
		k.sendDah()
	case k.ditMemory:
		k.sendDit()
	default:
		k.state = idle
	}
}

func (k *Keyer) startBug(p Paddle) {
	switch {
	case p.Dit:
		k.bugToggle = !k.bugToggle
		if k.bugToggle {
			k.sendDit()
		} else {
			k.keyDown = false
			k.state = elementGap
			k.samplesLeft = k.weightedSamples(1, false)
		}
	case p.Dah:
		k.sendDah()
	default:
		k.state = idle
		k.bugToggle = false
	}
}

func (k *Keyer) sendDit() {
	k.lastElement = ElementDit
	k.ditMemory = false
	k.keyDown = true
	k.state = sendingDit
	k.samplesLeft = k.weightedSamples(1, true)
}

func (k *Keyer) sendDah() {
	k.lastElement = ElementDah
	k.dahMemory = false
	k.keyDown = true
	k.state = sendingDah
	k.samplesLeft = k.weightedSamples(3, true)
}

// enterWaitOrIdle is reached at the end of the inter-element gap. Mode A
// goes straight back to idle and consults memories there; Mode B, on a
// squeeze at the start of the just-finished element, takes one more tick
// (waitNext) to insert the alternate element if its memory is still
// clear.
func (k *Keyer) enterWaitOrIdle(p Paddle) {
	if k.mode == IambicB && k.squeezeAtGap {
		k.state = waitNext
		k.samplesLeft = 0
		return
	}
	k.state = idle
	k.advance(p)
}

// resolveWaitNext implements Iambic B's "extra element" rule: insert the
// element opposite the one just sent if that element's own memory is
// empty (the paddle for it was not re-pressed during the gap); otherwise
// fall through to ordinary memory consultation.
func (k *Keyer) resolveWaitNext() {
	k.squeezeAtGap = false
	switch k.lastElement {
	case ElementDit:
		if !k.dahMemory {
			k.sendDah()
			return
		}
	case ElementDah:
		if !k.ditMemory {
			k.sendDit()
			return
		}
	}
	k.startIambic()
}
