package psk31

import (
	"math"

	"github.com/kf7sdr/radiocore/internal/iq"
)

const (
	baudRate             = 31.25
	noiseFloorTimeConst  = 0.001 // noise-floor follower time constant
	signalPowerTimeConst = 0.01
)

// Receiver implements the §4.8 receive-side DSP: mix to baseband with an
// NCO, matched-filter each rail, track carrier phase/frequency with a
// Costas loop, recover symbol timing with a Gardner detector, and gate
// output characters behind a soft SNR squelch.
type Receiver struct {
	fs         float64
	baseFreqHz float64
	nco        *iq.NCO
	lpfI       *iq.FIR
	lpfQ       *iq.FIR

	loopBandwidth float64
	kp, ki        float64
	integrator    float64

	samplesPerSymbol float64
	fracPhase        float64
	prevPrev, prev   float64

	signalPower float64
	noiseFloor  float64
	squelchOpen bool
	squelchDb   float64

	lastSymbolAngle float64
	haveLast        bool

	decoder *Decoder
}

// NewReceiver builds a receiver for audio sampled at fs, initially
// centered on carrierHz with the given Costas loop bandwidth (Hz).
func NewReceiver(fs, carrierHz, loopBandwidth float64) *Receiver {
	r := &Receiver{
		fs:               fs,
		baseFreqHz:       carrierHz,
		nco:              iq.NewNCO(carrierHz, fs),
		lpfI:             iq.NewLowpassFIR(63, fs, 1.5*baudRate),
		lpfQ:             iq.NewLowpassFIR(63, fs, 1.5*baudRate),
		loopBandwidth:    loopBandwidth,
		samplesPerSymbol: fs / baudRate,
		noiseFloor:       1e-6,
		squelchDb:        6,
		decoder:          NewDecoder(),
	}
	r.setLoopGains(loopBandwidth, 0.707)
	return r
}

// setLoopGains derives proportional/integral gains from the loop
// bandwidth and damping factor using the standard second-order PLL
// design equations.
func (r *Receiver) setLoopGains(bwHz, damping float64) {
	theta := bwHz / (damping + 1/(4*damping))
	r.kp = 2 * damping * theta
	r.ki = theta * theta
}

// SetSquelchThreshold sets the SNR (dB) above which decoded characters
// are released.
func (r *Receiver) SetSquelchThreshold(db float64) { r.squelchDb = db }

// Symbol is one decoded bit with the metrics current at that instant.
type Symbol struct {
	Bit         bool
	SnrDb       float64
	ImdDb       float64
	AfcOffsetHz float64
	TimingErr   float64
	SquelchOpen bool
}

// Process runs one audio sample through the receive chain. ok reports
// whether a new symbol boundary (and therefore a decoded bit) occurred
// this sample.
func (r *Receiver) Process(x float64) (Symbol, bool) {
	lo := r.nco.NextIQ()
	i := r.lpfI.Process(x * lo.I)
	q := r.lpfQ.Process(x * -lo.Q)

	mag := math.Hypot(i, q)
	r.signalPower += signalPowerTimeConst * (mag*mag - r.signalPower)
	r.noiseFloor += noiseFloorTimeConst * (mag*mag - r.noiseFloor)
	if r.noiseFloor < 1e-12 {
		r.noiseFloor = 1e-12
	}
	snrDb := 10 * math.Log10(r.signalPower/r.noiseFloor+1e-12)
	r.squelchOpen = snrDb > r.squelchDb

	// Costas loop: BPSK phase error is I*sign(Q).
	errPhase := i * sign(q)
	r.integrator += r.ki * errPhase
	maxIntegrator := 2 * r.loopBandwidth
	if r.integrator > maxIntegrator {
		r.integrator = maxIntegrator
	} else if r.integrator < -maxIntegrator {
		r.integrator = -maxIntegrator
	}
	freqCorrection := r.kp*errPhase + r.integrator
	r.nco.SetFrequency(r.baseFreqHz + freqCorrection)

	r.fracPhase++
	atBoundary := false
	var timingErr float64
	if r.fracPhase >= r.samplesPerSymbol {
		r.fracPhase -= r.samplesPerSymbol
		timingErr = gardnerError(r.prevPrev, r.prev, i)
		r.fracPhase += timingErr * 0.01
		atBoundary = true
	}
	r.prevPrev, r.prev = r.prev, i

	sym := Symbol{
		SnrDb:       snrDb,
		ImdDb:       imdEstimate(mag, r.signalPower),
		AfcOffsetHz: r.integrator,
		TimingErr:   timingErr,
		SquelchOpen: r.squelchOpen,
	}
	if !atBoundary {
		return sym, false
	}

	bit := true
	angle := math.Atan2(q, i)
	if r.haveLast {
		bit = math.Abs(angleDiff(angle, r.lastSymbolAngle)) < math.Pi/2
	}
	r.lastSymbolAngle = angle
	r.haveLast = true
	sym.Bit = bit
	return sym, true
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

// gardnerError computes the Gardner timing-error term from the sample
// taken one symbol ago (prevPrev), half a symbol ago (midSymbol) and the
// current on-time sample.
func gardnerError(prevPrev, midSymbol, onTime float64) float64 {
	return midSymbol * (onTime - prevPrev)
}

func imdEstimate(peak, avgPower float64) float64 {
	avg := math.Sqrt(avgPower)
	if avg < 1e-12 {
		return 0
	}
	return 20 * math.Log10(peak/avg+1e-12)
}

func angleDiff(a, b float64) float64 {
	d := a - b
	for d > math.Pi {
		d -= 2 * math.Pi
	}
	for d < -math.Pi {
		d += 2 * math.Pi
	}
	return d
}

// PushBit feeds a decoded symbol bit (differentially decoded already by
// Process) into the Varicode decoder and reports the outcome.
func (r *Receiver) PushBit(bit bool) (DecodeResult, byte) {
	return r.decoder.Push(bit)
}
