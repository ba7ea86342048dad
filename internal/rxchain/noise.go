package rxchain

import "math"

// ImpulseBlanker suppresses short impulse noise spikes by comparing the
// instantaneous magnitude against a running average and substituting the
// last good sample when the spike exceeds a threshold multiple of that
// average.
type ImpulseBlanker struct {
	ThresholdMult float64
	avgCoeff      float64
	runningAvg    float64
	lastGood      float64
}

// NewImpulseBlanker builds a blanker; thresholdMult (e.g. 4.0) sets how
// many times the running average a sample must exceed to be blanked.
func NewImpulseBlanker(thresholdMult float64) *ImpulseBlanker {
	return &ImpulseBlanker{ThresholdMult: thresholdMult, avgCoeff: 0.01}
}

// Reset clears the running average and held sample.
func (b *ImpulseBlanker) Reset() {
	b.runningAvg = 0
	b.lastGood = 0
}

// Process blanks impulses above ThresholdMult times the running average.
func (b *ImpulseBlanker) Process(x float64) float64 {
	mag := math.Abs(x)
	if b.runningAvg > 1e-12 && mag > b.ThresholdMult*b.runningAvg {
		b.runningAvg += b.avgCoeff * (mag - b.runningAvg)
		return b.lastGood
	}
	b.runningAvg += b.avgCoeff * (mag - b.runningAvg)
	b.lastGood = x
	return x
}

// LMSCanceller is a 32-tap adaptive noise canceller driven by the
// plain (unnormalized) LMS update rule, with step size and weights clamped to keep
// the adaptation stable.
type LMSCanceller struct {
	weights [32]float64
	history [32]float64
	mu      float64
}

// NewLMSCanceller builds a canceller with step size mu clamped to
// [1e-4, 0.5].
func NewLMSCanceller(mu float64) *LMSCanceller {
	return &LMSCanceller{mu: clampMu(mu)}
}

func clampMu(mu float64) float64 {
	if mu < 1e-4 {
		return 1e-4
	}
	if mu > 0.5 {
		return 0.5
	}
	return mu
}

// SetMu updates the adaptation step size (clamped).
func (l *LMSCanceller) SetMu(mu float64) { l.mu = clampMu(mu) }

// Reset clears weights and history.
func (l *LMSCanceller) Reset() {
	l.weights = [32]float64{}
	l.history = [32]float64{}
}

const lmsWeightClamp = 1.0

// Process predicts x from the delay-line history, adapts weights toward
// the prediction error, and returns the error (the denoised sample).
func (l *LMSCanceller) Process(x float64) float64 {
	var predicted float64
	for i, w := range l.weights {
		predicted += w * l.history[i]
	}
	errSig := x - predicted

	for i := range l.weights {
		l.weights[i] += l.mu * errSig * l.history[i]
		if l.weights[i] > lmsWeightClamp {
			l.weights[i] = lmsWeightClamp
		} else if l.weights[i] < -lmsWeightClamp {
			l.weights[i] = -lmsWeightClamp
		}
	}

	copy(l.history[1:], l.history[:len(l.history)-1])
	l.history[0] = x

	return errSig
}

// SpectralGate is a soft-threshold noise gate that tracks a noise-floor
// estimate and attenuates samples within a dynamic threshold by
// (magnitude/threshold)^(1+2*reduction).
type SpectralGate struct {
	Reduction     float64 // 0..1
	floorEstimate float64
	floorCoeff    float64
}

// NewSpectralGate builds a gate with the given reduction strength (0..1).
func NewSpectralGate(reduction float64) *SpectralGate {
	return &SpectralGate{Reduction: reduction, floorCoeff: 0.001}
}

// Reset clears the floor estimate.
func (g *SpectralGate) Reset() { g.floorEstimate = 0 }

// Process attenuates x when its magnitude sits within the dynamic
// threshold above the tracked noise floor.
func (g *SpectralGate) Process(x float64) float64 {
	mag := math.Abs(x)

	if mag < g.floorEstimate || g.floorEstimate == 0 {
		g.floorEstimate += g.floorCoeff * (mag - g.floorEstimate)
	} else {
		g.floorEstimate += g.floorCoeff * 0.1 * (mag - g.floorEstimate)
	}

	threshold := g.floorEstimate * 3
	if threshold <= 0 || mag >= threshold {
		return x
	}

	ratio := mag / threshold
	atten := math.Pow(ratio, 1+2*g.Reduction)
	return x * atten
}

// NoiseChain runs the blanker, LMS canceller and spectral gate in
// sequence, each stage owning its own state.
type NoiseChain struct {
	Blanker *ImpulseBlanker
	LMS     *LMSCanceller
	Gate    *SpectralGate

	BlankerEnabled bool
	LMSEnabled     bool
	GateEnabled    bool
}

// NewNoiseChain builds a noise-reduction chain with default settings. All
// stages are constructed but disabled; callers opt in per-stage.
func NewNoiseChain() *NoiseChain {
	return &NoiseChain{
		Blanker: NewImpulseBlanker(4.0),
		LMS:     NewLMSCanceller(0.01),
		Gate:    NewSpectralGate(0.5),
	}
}

// Reset clears every stage's state regardless of enablement.
func (c *NoiseChain) Reset() {
	c.Blanker.Reset()
	c.LMS.Reset()
	c.Gate.Reset()
}

// Process runs x through whichever stages are enabled, in the documented
// order: blanker -> LMS -> spectral gate.
func (c *NoiseChain) Process(x float64) float64 {
	if c.BlankerEnabled {
		x = c.Blanker.Process(x)
	}
	if c.LMSEnabled {
		x = c.LMS.Process(x)
	}
	if c.GateEnabled {
		x = c.Gate.Process(x)
	}
	return x
}
