package txctl

import "math"

// VoxFollower is a simple envelope follower that asserts voice-operated
// transmit demand while the audio envelope exceeds threshold, and for a
// further hangSamples afterward.
type VoxFollower struct {
	threshold float64
	hangLimit int

	envelope float64
	hang     int
	active   bool
}

const voxEnvelopeCoeff = 0.01

// NewVoxFollower builds a follower with the given linear threshold
// (0..1) and hang time expressed in samples.
func NewVoxFollower(threshold float64, hangSamples int) *VoxFollower {
	return &VoxFollower{threshold: threshold, hangLimit: hangSamples}
}

// SetThreshold updates the linear trigger threshold.
func (v *VoxFollower) SetThreshold(threshold float64) { v.threshold = threshold }

// SetHang updates the hang time in samples.
func (v *VoxFollower) SetHang(samples int) { v.hangLimit = samples }

// Process runs one audio sample through the envelope follower and
// updates the asserted/hang state.
func (v *VoxFollower) Process(x float64) {
	mag := math.Abs(x)
	v.envelope += voxEnvelopeCoeff * (mag - v.envelope)

	if v.envelope > v.threshold {
		v.active = true
		v.hang = v.hangLimit
		return
	}
	if v.hang > 0 {
		v.hang--
		v.active = true
		return
	}
	v.active = false
}

// Active reports whether VOX currently asserts transmit demand.
func (v *VoxFollower) Active() bool { return v.active }

// Reset clears the envelope and hang state.
func (v *VoxFollower) Reset() {
	v.envelope = 0
	v.hang = 0
	v.active = false
}
