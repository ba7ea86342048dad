// Command radiocore-bench is a manual bring-up harness for the DSP core
// that needs no peripherals: it drives the clock-synthesizer planner
// against a target LO, exercises the CW keyer at a given speed, and
// (optionally) feeds a synthetic tone through the sliding-DFT spectrum
// analyzer into a waterfall buffer and prints the newest row as a
// text-mode bar. Adapted from the teacher's
// atest.go / gen_tone.go host-side test-signal generators onto a single
// pflag-driven CLI, matching the teacher's kissutil.go flag style.
package main

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/kf7sdr/radiocore/internal/clockplan"
	"github.com/kf7sdr/radiocore/internal/keyer"
	"github.com/kf7sdr/radiocore/internal/rlog"
	"github.com/kf7sdr/radiocore/internal/spectrum"
)

func main() {
	var (
		xtalHz     = pflag.Float64("xtal-hz", 25_000_000, "crystal reference frequency in Hz")
		targetHz   = pflag.Float64("target-hz", 14_074_000, "target LO frequency in Hz")
		quadrature = pflag.Bool("quadrature", false, "solve a quadrature LO pair instead of a single LO")
		wpm        = pflag.Float64("wpm", 20, "CW keyer speed in words per minute")
		fs         = pflag.Float64("sample-rate", 48000, "simulated sample rate in Hz")
		spec       = pflag.Bool("spectrum", false, "feed a synthetic tone through the sliding-DFT spectrum analyzer")
		toneHz     = pflag.Float64("tone-hz", 1000, "synthetic tone frequency for --spectrum")
		verbose    = pflag.BoolP("verbose", "v", false, "enable debug logging")
	)
	pflag.Parse()

	log := rlog.For("bench")
	if *verbose {
		rlog.SetLevel(-4) // log.DebugLevel
	}

	runPlanner(log, *xtalHz, *targetHz, *quadrature)
	runKeyer(log, *wpm, *fs)
	if *spec {
		runSpectrum(log, *fs, *toneHz)
	}
}

func runPlanner(log interface {
	Infof(string, ...interface{})
	Errorf(string, ...interface{})
}, xtalHz, targetHz float64, quadrature bool) {
	if quadrature {
		plan, ok := clockplan.SolveQuadrature(xtalHz, targetHz)
		if !ok {
			log.Errorf("no feasible quadrature plan for target=%.0fHz xtal=%.0fHz", targetHz, xtalHz)
			os.Exit(1)
		}
		log.Infof("quadrature plan: pll=%+v ms=%+v vco=%.1fHz actual=%.3fHz err=%.3fHz phase_reg=%d",
			plan.Pll, plan.Ms, plan.VcoHz, plan.ActualHz, plan.ErrorHz, plan.PhaseReg)
		return
	}

	plan, ok := clockplan.Solve(xtalHz, targetHz)
	if !ok {
		log.Errorf("no feasible plan for target=%.0fHz xtal=%.0fHz", targetHz, xtalHz)
		os.Exit(1)
	}
	p1, p2, p3 := clockplan.EncodeRegisters(plan.Ms.A, plan.Ms.B, plan.Ms.C)
	regs := clockplan.MultisynthRegisterBytes(p1, p2, p3, plan.Ms.RDiv)
	log.Infof("plan: pll=%+v ms=%+v vco=%.1fHz actual=%.3fHz err=%.3fHz regs=% x",
		plan.Pll, plan.Ms, plan.VcoHz, plan.ActualHz, plan.ErrorHz, regs)
}

func runKeyer(log interface{ Infof(string, ...interface{}) }, wpm, fs float64) {
	k := keyer.New(keyer.IambicA, fs, wpm)
	unitMs := 1200 / wpm
	log.Infof("keyer: mode=IambicA wpm=%.0f unit=%.2fms dit_samples=%.0f", wpm, unitMs, unitMs*fs/1000)

	k.Process(keyer.Paddle{Dit: true})
	downSamples := 0
	for i := 0; i < int(fs); i++ {
		k.Process(keyer.Paddle{})
		if k.KeyDown() {
			downSamples++
		}
		if k.IsIdle() && downSamples > 0 {
			break
		}
	}
	log.Infof("keyer: dit held key_down for %d samples", downSamples)
}

func runSpectrum(log interface{ Infof(string, ...interface{}) }, fs, toneHz float64) {
	const n = 256
	bins := make([]float64, n/2)
	for i := range bins {
		bins[i] = float64(i) * fs / n
	}
	dft := spectrum.NewSlidingDFT(n, fs, bins)
	wf := spectrum.NewWaterfallBuffer(16, len(bins))

	for i := 0; i < n*4; i++ {
		t := float64(i) / fs
		dft.Push(math.Sin(2 * math.Pi * toneHz * t))
		if dft.Filled() && i%n == 0 {
			wf.PushRow(dft.Magnitudes())
		}
	}

	if wf.Len() == 0 {
		log.Infof("spectrum: buffer never filled")
		return
	}
	row := wf.Row(0)
	peakBin, peakMag := 0, row.Columns[0]
	for i, m := range row.Columns {
		if m > peakMag {
			peakBin, peakMag = i, m
		}
	}
	log.Infof("spectrum: tone=%.0fHz peak_bin=%d peak_hz=%.0f peak_mag=%.3f", toneHz, peakBin, bins[peakBin], peakMag)
	fmt.Println(asciiBar(row.Columns))
}

func asciiBar(mags []float64) string {
	var b strings.Builder
	max := 0.0
	for _, m := range mags {
		if m > max {
			max = m
		}
	}
	if max == 0 {
		max = 1
	}
	ramp := " .:-=+*#%@"
	step := len(mags) / 64
	if step < 1 {
		step = 1
	}
	for i := 0; i < len(mags); i += step {
		level := int(mags[i] / max * float64(len(ramp)-1))
		b.WriteByte(ramp[level])
	}
	return b.String()
}
